// Package form3 provides checked constructors for 3D geometry tree nodes.
package form3

import (
	"github.com/soypat/csg"
	"github.com/soypat/csg/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cuboid returns an axis aligned box with its minimum corner at the origin.
// Each axis flagged in center is centered on the origin instead.
func Cuboid(size r3.Vec, center [3]bool) (*csg.Cuboid, error) {
	if d3.LTEZero(size) {
		return nil, csg.Degeneratef("cuboid", "size %v must be positive", size)
	}
	return csg.NewCuboid(size, center), nil
}

// CenteredXY returns a cuboid centered on the origin in x and y that
// spans z from 0 to size.Z.
func CenteredXY(size r3.Vec) (*csg.Cuboid, error) {
	return Cuboid(size, [3]bool{true, true, false})
}

// Slab extrudes a 2D section to a thin solid of the given thickness
// starting at z=0.
func Slab(s csg.Shape2, thickness float64) (*csg.Extrude, error) {
	if thickness <= 0 {
		return nil, csg.Degeneratef("slab", "thickness %g must be positive", thickness)
	}
	return csg.LinearExtrude(s, thickness, false), nil
}

// SlabAt is Slab moved up to start at height z.
func SlabAt(s csg.Shape2, thickness, z float64) (csg.Solid, error) {
	slab, err := Slab(s, thickness)
	if err != nil {
		return nil, err
	}
	if z == 0 {
		return slab, nil
	}
	return csg.Translate3D(slab, r3.Vec{Z: z}), nil
}

// Loft blends section bottom at z=0 into section top at z=height by taking
// the hull of two thin slabs. The top slab ends exactly at height.
func Loft(bottom, top csg.Shape2, thickness, height float64) (*csg.Boolean3, error) {
	if height <= thickness {
		return nil, csg.Degeneratef("loft", "height %g must exceed slab thickness %g", height, thickness)
	}
	b, err := SlabAt(bottom, thickness, 0)
	if err != nil {
		return nil, err
	}
	t, err := SlabAt(top, thickness, height-thickness)
	if err != nil {
		return nil, err
	}
	return csg.Hull3D(b, t), nil
}
