package obj3

import (
	"github.com/soypat/csg"
	"github.com/soypat/csg/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

// FuselageParams defines a fuselage lofted from a plan view and a side view.
// x runs from the tail at 0 to the nose at Length.
type FuselageParams struct {
	Length     float64
	Width      float64 // plan view width from WingStart forward
	Height     float64 // side view height from WingStart forward
	BackWidth  float64 // plan view width at the tail
	BackHeight float64 // side view height at the tail
	// WingStart is the station where the fuselage reaches full size.
	WingStart float64
	// NoseRadius is the x semi axis of the elliptical nose in side view.
	NoseRadius float64
	// OverLength is the extrusion length of each view. It must exceed every
	// fuselage dimension so the intersection is bounded by the outlines.
	OverLength float64
}

// DefaultFuselageParams returns a 400mm long fuselage with a 40mm square
// section tapering to 22mm at the tail.
func DefaultFuselageParams() FuselageParams {
	return FuselageParams{
		Length:     400,
		Width:      40,
		Height:     40,
		BackWidth:  22,
		BackHeight: 22,
		WingStart:  150,
		NoseRadius: 100,
		OverLength: 1000,
	}
}

func (k FuselageParams) validate() error {
	switch {
	case k.Length <= 0 || k.Width <= 0 || k.Height <= 0:
		return csg.Degeneratef("fuselage", "size (%g, %g, %g) must be positive", k.Length, k.Width, k.Height)
	case k.BackWidth <= 0 || k.BackHeight <= 0:
		return csg.Degeneratef("fuselage", "tail size (%g, %g) must be positive", k.BackWidth, k.BackHeight)
	case k.NoseRadius <= 0 || k.NoseRadius >= k.Length:
		return csg.Degeneratef("fuselage", "nose radius %g out of range (0, %g)", k.NoseRadius, k.Length)
	case k.WingStart <= 0 || k.WingStart >= k.Length-k.NoseRadius:
		return csg.Degeneratef("fuselage", "wing start %g out of range (0, %g)", k.WingStart, k.Length-k.NoseRadius)
	case k.OverLength <= k.Length || k.OverLength <= k.Width || k.OverLength <= k.Height:
		return csg.Degeneratef("fuselage", "over length %g does not cover the fuselage", k.OverLength)
	}
	return nil
}

// frontX returns the station where the nose ellipse is centered.
func (k FuselageParams) frontX() float64 { return k.Length - k.NoseRadius }

// taperOutline returns the hexagon widening from back at x=0 to full at
// WingStart and staying full until front.
func taperOutline(back, full, wingStart, front float64) *form2.PolygonBuilder {
	p := form2.NewPolygon()
	p.Add(0, back/2)
	p.Add(wingStart, full/2)
	p.Add(front, full/2)
	p.Add(front, -full/2)
	p.Add(wingStart, -full/2)
	p.Add(0, -back/2)
	p.Close()
	return p
}

// FuselagePlan returns the x-y outline of the fuselage seen from above.
func FuselagePlan(k FuselageParams) (csg.Shape2, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	return taperOutline(k.BackWidth, k.Width, k.WingStart, k.Length).Polygon()
}

// FuselageSide returns the x-z outline of the fuselage seen from the side,
// with z mapped to the outline's y. The nose is an ellipse centered at
// Length-NoseRadius.
func FuselageSide(k FuselageParams) (csg.Shape2, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	front := k.frontX()
	body, err := taperOutline(k.BackHeight, k.Height, k.WingStart, front).Polygon()
	if err != nil {
		return nil, err
	}
	nose, err := form2.Ellipse(k.NoseRadius, k.Height/2)
	if err != nil {
		return nil, err
	}
	return csg.Union2D(body, csg.Translate2D(nose, r2.Vec{X: front})), nil
}

// Fuselage returns the intersection of the plan and side outlines each
// extruded through the whole fuselage.
func Fuselage(k FuselageParams) (csg.Solid, error) {
	plan, err := FuselagePlan(k)
	if err != nil {
		return nil, err
	}
	side, err := FuselageSide(k)
	if err != nil {
		return nil, err
	}
	top := csg.LinearExtrude(plan, k.OverLength, true)
	profile := csg.LinearExtrude(side, k.OverLength, true)
	return csg.Intersect3D(top, csg.Rotate3D(profile, 90, csg.XAxis)), nil
}
