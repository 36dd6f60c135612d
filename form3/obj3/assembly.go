package obj3

import (
	"github.com/soypat/csg"
	"github.com/soypat/csg/form2/airfoil"
	"gonum.org/v1/gonum/spatial/r3"
)

// RibSheetSpacing is the default y distance between ribs laid out for printing.
const RibSheetSpacing = 15.0

// Plane returns both wing halves attached to the fuselage. The root
// trailing edge sits at x=0 and the leading edge at x=InnerLength. One half
// spans along -y and the other is its mirror image across y=0.
func Plane(w *Wing, k FuselageParams) (csg.Solid, error) {
	shape, err := w.RibShape()
	if err != nil {
		return nil, err
	}
	fuselage, err := Fuselage(k)
	if err != nil {
		return nil, err
	}
	half := csg.Rotate3D(
		csg.Mirror3D(
			csg.Translate3D(shape, r3.Vec{X: -w.k.InnerLength}),
			csg.XAxis,
		),
		90, csg.XAxis,
	)
	return csg.Union3D(half, csg.Mirror3D(half, csg.YAxis), fuselage), nil
}

// RibSheet lays ribs [from, to) of count side by side along y, spacing
// apart, so they can be printed in one go.
func RibSheet(w *Wing, from, to int, thickness float64, count int, spacing float64) (csg.Solid, error) {
	if from < 0 || to > count || from >= to {
		return nil, csg.Degeneratef("rib sheet", "range [%d, %d) out of [0, %d)", from, to, count)
	}
	if spacing <= 0 {
		return nil, csg.Degeneratef("rib sheet", "spacing %g must be positive", spacing)
	}
	shape, err := w.RibShape()
	if err != nil {
		return nil, err
	}
	ribs := make([]csg.Solid, 0, to-from)
	for i := from; i < to; i++ {
		rib, err := w.rib(shape, i, thickness, count)
		if err != nil {
			return nil, err
		}
		ribs = append(ribs, csg.Translate3D(rib, r3.Vec{Y: spacing * float64(i)}))
	}
	return csg.Union3D(ribs...), nil
}

// AirfoilSlab extrudes the profile scaled to length up to height. It is
// useful to check a profile file before building a wing from it.
func AirfoilSlab(af airfoil.Airfoil, length, height float64) (csg.Solid, error) {
	if length <= 0 || height <= 0 {
		return nil, csg.Degeneratef("airfoil slab", "size (%g, %g) must be positive", length, height)
	}
	if err := af.Validate(); err != nil {
		return nil, err
	}
	return csg.LinearExtrude(af.Scaled(length), height, false), nil
}
