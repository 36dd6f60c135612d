package obj3

import (
	"github.com/soypat/csg"
	"github.com/soypat/csg/form2"
	"github.com/soypat/csg/form3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Printed interlocking hinge.

const (
	// ToothDepth is the y difference between a tooth tip and its root
	// before halving.
	ToothDepth = 1.0
	// ToothClearance is added to the tooth height of cutouts so a hinge
	// comb slides into them.
	ToothClearance = 0.5
)

// mountBlock is the size of the hinge test mount block.
var mountBlock = r3.Vec{X: 12, Y: 8, Z: 6}

// HingeParams defines a two piece comb hinge.
type HingeParams struct {
	Teeth       int     // number of teeth on each comb
	OuterHeight float64 // tooth tip height, also the tooth pitch
	Thickness   float64 // extrusion thickness
}

// DefaultHingeParams returns the parameters of the printed test hinge.
func DefaultHingeParams() HingeParams {
	return HingeParams{Teeth: 5, OuterHeight: 3, Thickness: 4}
}

func (k HingeParams) validate() error {
	switch {
	case k.Teeth < 1:
		return csg.Degeneratef("hinge", "tooth count %d must be at least 1", k.Teeth)
	case k.OuterHeight <= ToothDepth:
		return csg.Degeneratef("hinge", "outer height %g must exceed tooth depth %g", k.OuterHeight, ToothDepth)
	case k.Thickness <= 0:
		return csg.Degeneratef("hinge", "thickness %g must be positive", k.Thickness)
	}
	return nil
}

// MidSection returns the rectangle joining the two hinge combs. It spans
// x in [0, outer/2] and y in [-mid/2, mid/2].
func MidSection(mid, outer float64) (*csg.Polygon, error) {
	if mid <= 0 || outer <= 0 {
		return nil, csg.Degeneratef("hinge mid section", "size (%g, %g) must be positive", mid, outer)
	}
	return halved([]r2.Vec{
		{X: 0, Y: mid},
		{X: outer, Y: mid},
		{X: outer, Y: -mid},
		{X: 0, Y: -mid},
	})
}

// Teeth returns a saw tooth comb with amount teeth spaced by separation.
// The upper edge steps between outer and outer-ToothDepth walking out along
// x and the lower edge mirrors it walking back, giving 4*amount vertices.
// Coordinates are halved so the comb is centered on y=0.
func Teeth(amount int, outer, separation float64) (*csg.Polygon, error) {
	switch {
	case amount < 1:
		return nil, csg.Degeneratef("teeth", "amount %d must be at least 1", amount)
	case outer <= ToothDepth:
		return nil, csg.Degeneratef("teeth", "outer size %g must exceed tooth depth %g", outer, ToothDepth)
	case separation <= 0:
		return nil, csg.Degeneratef("teeth", "separation %g must be positive", separation)
	}
	inner := outer - ToothDepth
	p := form2.NewPolygon()
	p.Add(0, outer)
	p.Add(separation, inner-outer).Rel()
	for i := 1; i < amount; i++ {
		p.Add(0, outer-inner).Rel()
		p.Add(separation, inner-outer).Rel()
	}
	p.Add(0, -2*inner).Rel()
	p.Add(-separation, inner-outer).Rel()
	for i := 1; i < amount; i++ {
		p.Add(0, outer-inner).Rel()
		p.Add(-separation, inner-outer).Rel()
	}
	p.Close()
	v, err := p.Vertices()
	if err != nil {
		return nil, err
	}
	return halved(v)
}

func halved(v []r2.Vec) (*csg.Polygon, error) {
	for i := range v {
		v[i] = r2.Scale(0.5, v[i])
	}
	return form2.Polygon(v)
}

// ToothCutout returns the socket a comb of amount teeth slides into.
func ToothCutout(amount int, outerHeight, thickness float64) (csg.Solid, error) {
	teeth, err := Teeth(amount, outerHeight+ToothClearance, outerHeight)
	if err != nil {
		return nil, err
	}
	return form3.Slab(teeth, thickness)
}

// Hinge returns both hinge combs joined by their mid section. The comb
// extending to +x is mirrored across x=0 to produce the second one.
func Hinge(k HingeParams) (csg.Solid, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	mid, err := MidSection(1, k.OuterHeight)
	if err != nil {
		return nil, err
	}
	teeth, err := Teeth(k.Teeth, k.OuterHeight, k.OuterHeight)
	if err != nil {
		return nil, err
	}
	comb := csg.Union2D(mid, csg.Translate2D(teeth, r2.Vec{X: k.OuterHeight / 2}))
	shape, err := form3.Slab(comb, k.Thickness)
	if err != nil {
		return nil, err
	}
	return csg.Union3D(shape, csg.Mirror3D(shape, csg.XAxis)), nil
}

// HingeTestMount returns a block with a tooth socket open at the top, used
// to check how a printed comb of k fits.
func HingeTestMount(k HingeParams) (csg.Solid, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	if k.Thickness >= mountBlock.Z {
		return nil, csg.Degeneratef("hinge mount", "thickness %g exceeds block height %g", k.Thickness, mountBlock.Z)
	}
	block, err := form3.Cuboid(mountBlock, [3]bool{false, true, false})
	if err != nil {
		return nil, err
	}
	socket, err := ToothCutout(k.Teeth, k.OuterHeight, k.Thickness)
	if err != nil {
		return nil, err
	}
	lift := mountBlock.Z - k.Thickness
	return csg.Difference3D(block, csg.Translate3D(socket, r3.Vec{Z: lift})), nil
}
