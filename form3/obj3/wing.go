// Package obj3 builds the parametric parts of a foam core RC plane: a
// tapered wing sliced into printable ribs, the fuselage and a comb hinge.
package obj3

import (
	"math"

	"github.com/soypat/csg"
	"github.com/soypat/csg/form2"
	"github.com/soypat/csg/form2/airfoil"
	"github.com/soypat/csg/form3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// CutoffSlabThickness is the z size of the end caps hulled into a cutoff box.
	CutoffSlabThickness = 0.001
	// ControlSurfaceThickness is the root thickness of the control surface wedge.
	ControlSurfaceThickness = 4.0
)

// CutoffDirection selects the chordwise half space a cutoff box fills.
type CutoffDirection int

const (
	_ CutoffDirection = iota
	// CutoffUp spans y from 0 to csg.Infinite.
	CutoffUp
	// CutoffDown spans y from -csg.Infinite to 0.
	CutoffDown
	// CutoffBoth is centered about y=0.
	CutoffBoth
)

func (d CutoffDirection) String() (str string) {
	switch d {
	case CutoffUp:
		str = "up"
	case CutoffDown:
		str = "down"
	case CutoffBoth:
		str = "both"
	default:
		str = "unknown"
	}
	return str
}

// FoamParams locates the foam core cavity inside the wing.
type FoamParams struct {
	// ShapeOffset is the 2D offset applied to the profile to get the cavity
	// outline. Must be negative.
	ShapeOffset float64
	// FrontStop is the distance from the leading edge where the cutouts start.
	FrontStop float64
	// UpperBackStop and LowerBackStop are the distances from the trailing
	// edge where the upper and lower cutouts end.
	UpperBackStop float64
	LowerBackStop float64
}

// ControlSurfaceParams locates the control surface slot at the trailing edge.
type ControlSurfaceParams struct {
	// StartRatio and EndRatio are the fractions of the wingspan where the
	// slot starts and ends.
	StartRatio float64
	EndRatio   float64
	// Width is the chordwise size of the slot.
	Width float64
}

// WingParams defines a straight tapered wing.
type WingParams struct {
	InnerLength float64 // root chord
	OuterLength float64 // tip chord
	Wingspan    float64
	SparRadius  float64 // main spar radius, carried for layout
	// ExtrudeThickness is the thickness of the thin slabs that approximate
	// a section when lofting.
	ExtrudeThickness float64
	Airfoil          airfoil.Airfoil
	Foam             FoamParams
	ControlSurface   ControlSurfaceParams
}

// DefaultFoamParams returns the foam core layout used for printed ribs.
func DefaultFoamParams() FoamParams {
	return FoamParams{ShapeOffset: -2, FrontStop: 10, UpperBackStop: 40, LowerBackStop: 35}
}

// DefaultControlSurfaceParams returns a 30mm wide slot over the outer
// half of the span.
func DefaultControlSurfaceParams() ControlSurfaceParams {
	return ControlSurfaceParams{StartRatio: 0.5, EndRatio: 0.95, Width: 30}
}

// DefaultWingParams returns the parameters of a 500mm semi span wing
// tapering from a 140mm root to a 100mm tip.
func DefaultWingParams(af airfoil.Airfoil) WingParams {
	return WingParams{
		InnerLength:      140,
		OuterLength:      100,
		Wingspan:         500,
		SparRadius:       5,
		ExtrudeThickness: 0.1,
		Airfoil:          af,
		Foam:             DefaultFoamParams(),
		ControlSurface:   DefaultControlSurfaceParams(),
	}
}

// Wing generates the solids of a tapered wing. It is immutable once built
// and safe for concurrent use.
type Wing struct {
	k WingParams
}

// NewWing validates k and returns a wing. The airfoil points are copied.
func NewWing(k WingParams) (*Wing, error) {
	minChord := math.Min(k.InnerLength, k.OuterLength)
	foam := k.Foam
	cs := k.ControlSurface
	switch {
	case k.InnerLength <= 0 || k.OuterLength <= 0:
		return nil, csg.Degeneratef("wing", "chord lengths (%g, %g) must be positive", k.InnerLength, k.OuterLength)
	case k.Wingspan <= 0:
		return nil, csg.Degeneratef("wing", "wingspan %g must be positive", k.Wingspan)
	case k.ExtrudeThickness <= 0 || 2*k.ExtrudeThickness >= k.Wingspan:
		return nil, csg.Degeneratef("wing", "extrude thickness %g out of range (0, wingspan/2)", k.ExtrudeThickness)
	case k.SparRadius < 0:
		return nil, csg.Degeneratef("wing", "negative spar radius %g", k.SparRadius)
	case foam.ShapeOffset >= 0:
		return nil, csg.Degeneratef("foam", "shape offset %g must shrink the profile", foam.ShapeOffset)
	case foam.FrontStop < 0 || foam.UpperBackStop < 0 || foam.LowerBackStop < 0:
		return nil, csg.Degeneratef("foam", "negative stop distance")
	case foam.FrontStop+math.Max(foam.UpperBackStop, foam.LowerBackStop) >= minChord:
		return nil, csg.Degeneratef("foam", "front %g and back stops (%g, %g) leave no cutout on a %g chord",
			foam.FrontStop, foam.UpperBackStop, foam.LowerBackStop, minChord)
	case cs.StartRatio < 0 || cs.StartRatio >= cs.EndRatio || cs.EndRatio > 1:
		return nil, csg.Degeneratef("control surface", "span ratios [%g, %g] out of range", cs.StartRatio, cs.EndRatio)
	case cs.Width <= 0 || cs.Width >= minChord:
		return nil, csg.Degeneratef("control surface", "width %g out of range (0, %g)", cs.Width, minChord)
	}
	if err := k.Airfoil.Validate(); err != nil {
		return nil, err
	}
	thick := k.Airfoil.Bounds()
	if 2*-foam.ShapeOffset >= (thick.Max.Y-thick.Min.Y)*minChord {
		return nil, csg.Degeneratef("foam", "shape offset %g collapses a %g chord section", foam.ShapeOffset, minChord)
	}
	k.Airfoil.Points = append([]r2.Vec(nil), k.Airfoil.Points...)
	return &Wing{k: k}, nil
}

// Params returns a copy of the wing parameters.
func (w *Wing) Params() WingParams {
	k := w.k
	k.Airfoil.Points = append([]r2.Vec(nil), k.Airfoil.Points...)
	return k
}

// BackAngle returns the trailing edge sweep in degrees. It is zero for an
// untapered wing and positive when the root chord is longer than the tip.
func (w *Wing) BackAngle() float64 {
	return csg.RtoD(math.Atan2(w.k.InnerLength-w.k.OuterLength, w.k.Wingspan))
}

func (w *Wing) innerShape() csg.Shape2 { return w.k.Airfoil.Scaled(w.k.InnerLength) }
func (w *Wing) outerShape() csg.Shape2 { return w.k.Airfoil.Scaled(w.k.OuterLength) }

// Exterior returns the outer skin of the wing: the profile lofted from the
// root chord at z=0 to the tip chord at z=Wingspan.
func (w *Wing) Exterior() (csg.Solid, error) {
	return form3.Loft(w.innerShape(), w.outerShape(), w.k.ExtrudeThickness, w.k.Wingspan)
}

// Interior returns the exterior loft of the profile offset by offset.
func (w *Wing) Interior(offset float64) (csg.Solid, error) {
	inner := csg.Offset2D(w.innerShape(), offset, true)
	outer := csg.Offset2D(w.outerShape(), offset, true)
	return form3.Loft(inner, outer, w.k.ExtrudeThickness, w.k.Wingspan)
}

// CutoffBox returns a trim solid following the wing taper. It starts at
// innerStart with chordwise size innerLength at the root and at outerStart
// with outerLength at the tip.
func (w *Wing) CutoffBox(dir CutoffDirection, innerStart, innerLength, outerStart, outerLength float64) (csg.Solid, error) {
	const ySize = csg.Infinite
	var ty float64
	switch dir {
	case CutoffUp, CutoffBoth:
	case CutoffDown:
		ty = -ySize
	default:
		return nil, csg.Degeneratef("cutoff box", "unknown direction %d", dir)
	}
	if innerLength <= 0 || outerLength <= 0 {
		return nil, csg.Degeneratef("cutoff box", "lengths (%g, %g) must be positive", innerLength, outerLength)
	}
	center := [3]bool{false, dir == CutoffBoth, false}
	root, err := form3.Cuboid(r3.Vec{X: innerLength, Y: ySize, Z: CutoffSlabThickness}, center)
	if err != nil {
		return nil, err
	}
	tip, err := form3.Cuboid(r3.Vec{X: outerLength, Y: ySize, Z: CutoffSlabThickness}, center)
	if err != nil {
		return nil, err
	}
	return csg.Hull3D(
		csg.Translate3D(root, r3.Vec{X: innerStart, Y: ty}),
		csg.Translate3D(tip, r3.Vec{X: outerStart, Y: ty, Z: w.k.Wingspan}),
	), nil
}

// ControlSurfaceCutout returns the slot removed at the trailing edge for
// the control surface. The slot ends are parallel to the trailing edge.
func (w *Wing) ControlSurfaceCutout() (csg.Solid, error) {
	cs := w.k.ControlSurface
	full, err := w.CutoffBox(CutoffBoth,
		w.k.InnerLength-cs.Width, cs.Width,
		w.k.OuterLength-cs.Width, cs.Width)
	if err != nil {
		return nil, err
	}
	length := (cs.EndRatio - cs.StartRatio) * w.k.Wingspan
	zslab, err := form3.CenteredXY(r3.Vec{X: csg.Infinite, Y: csg.Infinite, Z: length})
	if err != nil {
		return nil, err
	}
	zcut := csg.Rotate3D(
		csg.Translate3D(zslab, r3.Vec{Z: cs.StartRatio * w.k.Wingspan}),
		-w.BackAngle(), csg.YAxis,
	)
	return csg.Intersect3D(full, zcut), nil
}

// RibShape returns the full wing solid ribs are sliced from: the exterior
// trimmed by the foam core cutouts, with the cavity added back and the
// control surface slot removed.
func (w *Wing) RibShape() (csg.Solid, error) {
	foam := w.k.Foam
	exterior, err := w.Exterior()
	if err != nil {
		return nil, err
	}
	upper, err := w.CutoffBox(CutoffUp,
		foam.FrontStop, w.k.InnerLength-foam.FrontStop-foam.UpperBackStop,
		foam.FrontStop, w.k.OuterLength-foam.FrontStop-foam.UpperBackStop)
	if err != nil {
		return nil, err
	}
	lower, err := w.CutoffBox(CutoffDown,
		foam.FrontStop, w.k.InnerLength-foam.FrontStop-foam.LowerBackStop,
		foam.FrontStop, w.k.OuterLength-foam.FrontStop-foam.LowerBackStop)
	if err != nil {
		return nil, err
	}
	cavity, err := w.Interior(foam.ShapeOffset)
	if err != nil {
		return nil, err
	}
	slot, err := w.ControlSurfaceCutout()
	if err != nil {
		return nil, err
	}
	frontAndBack := csg.Difference3D(exterior, upper, lower)
	return csg.Difference3D(csg.Union3D(cavity, frontAndBack), slot), nil
}

// RibSeparation returns the spanwise distance between consecutive ribs so
// that the first rib sits at the root and the last ends at the tip.
func (w *Wing) RibSeparation(thickness float64, count int) (float64, error) {
	switch {
	case count < 1:
		return 0, csg.Degeneratef("rib", "count %d must be at least 1", count)
	case thickness <= 0 || thickness >= w.k.Wingspan:
		return 0, csg.Degeneratef("rib", "thickness %g out of range (0, %g)", thickness, w.k.Wingspan)
	}
	return (w.k.Wingspan - thickness) / float64(count), nil
}

// Rib returns the index'th of count ribs of the given thickness, moved back
// so it spans z from 0 to thickness.
func (w *Wing) Rib(index int, thickness float64, count int) (csg.Solid, error) {
	shape, err := w.RibShape()
	if err != nil {
		return nil, err
	}
	return w.rib(shape, index, thickness, count)
}

func (w *Wing) rib(shape csg.Solid, index int, thickness float64, count int) (csg.Solid, error) {
	sep, err := w.RibSeparation(thickness, count)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= count {
		return nil, csg.Degeneratef("rib", "index %d out of range [0, %d)", index, count)
	}
	offset := sep * float64(index)
	cutter, err := form3.CenteredXY(r3.Vec{X: csg.Infinite, Y: csg.Infinite, Z: thickness})
	if err != nil {
		return nil, err
	}
	slice := csg.Intersect3D(shape, csg.Translate3D(cutter, r3.Vec{Z: offset}))
	return csg.Translate3D(slice, r3.Vec{Z: -offset}), nil
}

// AllRibs returns every rib at its true spanwise position.
func (w *Wing) AllRibs(thickness float64, count int) (csg.Solid, error) {
	shape, err := w.RibShape()
	if err != nil {
		return nil, err
	}
	sep, err := w.RibSeparation(thickness, count)
	if err != nil {
		return nil, err
	}
	ribs := make([]csg.Solid, count)
	for i := range ribs {
		rib, err := w.rib(shape, i, thickness, count)
		if err != nil {
			return nil, err
		}
		ribs[i] = csg.Translate3D(rib, r3.Vec{Z: sep * float64(i)})
	}
	return csg.Union3D(ribs...), nil
}

// ControlSurface returns the wedge shaped control surface that fits the
// trailing edge slot, extruded over lengthRatio of the wingspan.
func (w *Wing) ControlSurface(lengthRatio, width float64) (csg.Solid, error) {
	const t = ControlSurfaceThickness
	if lengthRatio <= 0 || lengthRatio > 1 {
		return nil, csg.Degeneratef("control surface", "length ratio %g out of range (0, 1]", lengthRatio)
	}
	if width <= t {
		return nil, csg.Degeneratef("control surface", "width %g too small for %g thickness", width, t)
	}
	wedge, err := form2.Polygon([]r2.Vec{
		{X: 0, Y: t / 2},
		{X: width - t/2, Y: 0},
		{X: t, Y: -t / 2},
	})
	if err != nil {
		return nil, err
	}
	return csg.LinearExtrude(wedge, lengthRatio*w.k.Wingspan, false), nil
}
