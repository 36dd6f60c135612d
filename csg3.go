package csg

import (
	"github.com/soypat/csg/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is a node of a 3D geometry tree. Like Shape2 nodes, solids are
// immutable and composition is plain tree construction.
type Solid interface {
	// Bounds returns the bounding box that completely contains the solid.
	Bounds() r3.Box
	solid()
}

// Cuboid is an axis aligned box with its minimum corner at the origin.
// Axes flagged in Center are centered on the origin instead.
type Cuboid struct {
	Size   r3.Vec
	Center [3]bool
}

// Extrude linearly extrudes a 2D shape along +z from z=0 to z=Height,
// or from -Height/2 to Height/2 when Center is set.
type Extrude struct {
	Height float64
	Center bool
	Child  Shape2
}

// Transform3 applies a single transformation to a 3D child.
//
//	TransformTranslate: translate by V.
//	TransformScale:     scale each axis by V.
//	TransformRotate:    rotate by Angle degrees about axis V (right hand rule).
//	TransformMirror:    mirror across the plane through the origin with normal V.
type Transform3 struct {
	Kind  TransformKind
	V     r3.Vec
	Angle float64
	Child Solid
}

// Boolean3 combines 3D children with Op.
type Boolean3 struct {
	Op       BoolOp
	Children []Solid
}

func (*Cuboid) solid()     {}
func (*Extrude) solid()    {}
func (*Transform3) solid() {}
func (*Boolean3) solid()   {}

// NewCuboid returns a cuboid of the given size. center selects per axis
// whether the cuboid is centered on the origin.
func NewCuboid(size r3.Vec, center [3]bool) *Cuboid {
	return &Cuboid{Size: size, Center: center}
}

// LinearExtrude extrudes s to height.
func LinearExtrude(s Shape2, height float64, center bool) *Extrude {
	return &Extrude{Height: height, Center: center, Child: s}
}

// Translate3D moves s by v.
func Translate3D(s Solid, v r3.Vec) *Transform3 {
	return &Transform3{Kind: TransformTranslate, V: v, Child: s}
}

// Scale3D scales s independently along each axis.
func Scale3D(s Solid, v r3.Vec) *Transform3 {
	return &Transform3{Kind: TransformScale, V: v, Child: s}
}

// Rotate3D rotates s by degrees about axis.
func Rotate3D(s Solid, degrees float64, axis r3.Vec) *Transform3 {
	return &Transform3{Kind: TransformRotate, V: axis, Angle: degrees, Child: s}
}

// Mirror3D mirrors s across the plane through the origin with normal n.
func Mirror3D(s Solid, n r3.Vec) *Transform3 {
	return &Transform3{Kind: TransformMirror, V: n, Child: s}
}

// Union3D returns the union of solids.
func Union3D(solids ...Solid) *Boolean3 {
	return newBoolean3(OpUnion, solids)
}

// Difference3D subtracts every following solid from the first.
func Difference3D(s Solid, subtract ...Solid) *Boolean3 {
	return newBoolean3(OpDifference, append([]Solid{s}, subtract...))
}

// Intersect3D returns the intersection of solids.
func Intersect3D(solids ...Solid) *Boolean3 {
	return newBoolean3(OpIntersection, solids)
}

// Hull3D returns the convex hull of solids. Hulling two thin slabs at
// different heights lofts between their cross sections.
func Hull3D(solids ...Solid) *Boolean3 {
	return newBoolean3(OpHull, solids)
}

func newBoolean3(op BoolOp, solids []Solid) *Boolean3 {
	return &Boolean3{Op: op, Children: append([]Solid(nil), solids...)}
}

// Offset returns the translation that places the cuboid's minimum corner
// according to its centering flags.
func (s *Cuboid) Offset() r3.Vec {
	var ofs r3.Vec
	if s.Center[0] {
		ofs.X = -s.Size.X / 2
	}
	if s.Center[1] {
		ofs.Y = -s.Size.Y / 2
	}
	if s.Center[2] {
		ofs.Z = -s.Size.Z / 2
	}
	return ofs
}

// Bounds returns the cuboid extent.
func (s *Cuboid) Bounds() r3.Box {
	min := s.Offset()
	return r3.Box{Min: min, Max: r3.Add(min, s.Size)}
}

// ZRange returns the heights between which the extrusion spans.
func (s *Extrude) ZRange() (z0, z1 float64) {
	if s.Center {
		return -s.Height / 2, s.Height / 2
	}
	return 0, s.Height
}

// Bounds returns the 2D child bounds swept over the extrusion height.
func (s *Extrude) Bounds() r3.Box {
	z0, z1 := s.ZRange()
	return r3.Box(d3.FromR2(s.Child.Bounds(), z0, z1))
}

// Bounds returns the bounding box of the transformed child.
func (s *Transform3) Bounds() r3.Box {
	bb := d3.Box(s.Child.Bounds())
	switch s.Kind {
	case TransformTranslate:
		bb = bb.Translate(s.V)
	case TransformScale:
		bb = bb.Map(func(v r3.Vec) r3.Vec { return d3.MulElem(v, s.V) })
	case TransformRotate:
		if r3.Norm2(s.V) != 0 {
			rot := r3.NewRotation(DtoR(s.Angle), r3.Unit(s.V))
			bb = bb.Map(rot.Rotate)
		}
	case TransformMirror:
		if r3.Norm2(s.V) != 0 {
			bb = bb.Map(func(v r3.Vec) r3.Vec { return d3.Reflect(v, s.V) })
		}
	}
	return r3.Box(bb)
}

// Bounds returns the bounding box of the boolean operation. Differences
// are bounded by their first child.
func (s *Boolean3) Bounds() r3.Box {
	if len(s.Children) == 0 {
		return r3.Box{}
	}
	bb := d3.Box(s.Children[0].Bounds())
	for _, c := range s.Children[1:] {
		switch s.Op {
		case OpUnion, OpHull:
			bb = bb.Extend(d3.Box(c.Bounds()))
		case OpIntersection:
			bb = bb.Intersect(d3.Box(c.Bounds()))
		}
	}
	return r3.Box(bb)
}
