// Package csg describes 2D and 3D geometry as immutable constructive
// solid geometry trees. Trees are plain data: they are validated and
// bounded here and evaluated by a kernel elsewhere.
package csg

import (
	"math"

	"github.com/soypat/csg/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Shape2 is a node of a 2D geometry tree. Nodes are immutable once built:
// every constructor returns a fresh node and never keeps references to
// caller owned slices.
type Shape2 interface {
	// Bounds returns the bounding box that completely contains the shape.
	Bounds() r2.Box
	shape2()
}

// Polygon is a closed 2D polygon. The last point connects back to the first.
type Polygon struct {
	Points []r2.Vec
}

// Circle is a circle of Radius centered at the origin.
type Circle struct {
	Radius float64
}

// Transform2 applies a single transformation to a 2D child.
//
//	TransformTranslate: translate by V.
//	TransformScale:     scale each axis by V.
//	TransformRotate:    rotate by Angle degrees about the origin.
//	TransformMirror:    mirror across the line through the origin with normal V.
//	TransformOffset:    offset outline by Delta (negative shrinks). Chamfer cuts
//	                    sharp corners instead of extending them.
type Transform2 struct {
	Kind    TransformKind
	V       r2.Vec
	Angle   float64
	Delta   float64
	Chamfer bool
	Child   Shape2
}

// Boolean2 combines 2D children with Op.
type Boolean2 struct {
	Op       BoolOp
	Children []Shape2
}

func (*Polygon) shape2()    {}
func (*Circle) shape2()     {}
func (*Transform2) shape2() {}
func (*Boolean2) shape2()   {}

// NewPolygon returns a polygon node with a copy of points.
func NewPolygon(points []r2.Vec) *Polygon {
	return &Polygon{Points: append([]r2.Vec(nil), points...)}
}

// NewCircle returns a circle of radius r centered at the origin.
func NewCircle(r float64) *Circle {
	return &Circle{Radius: r}
}

// Translate2D moves s by v.
func Translate2D(s Shape2, v r2.Vec) *Transform2 {
	return &Transform2{Kind: TransformTranslate, V: v, Child: s}
}

// Scale2D scales s independently along x and y.
func Scale2D(s Shape2, v r2.Vec) *Transform2 {
	return &Transform2{Kind: TransformScale, V: v, Child: s}
}

// Rotate2D rotates s counter clockwise by degrees about the origin.
func Rotate2D(s Shape2, degrees float64) *Transform2 {
	return &Transform2{Kind: TransformRotate, Angle: degrees, Child: s}
}

// Mirror2D mirrors s across the line through the origin with normal n.
func Mirror2D(s Shape2, n r2.Vec) *Transform2 {
	return &Transform2{Kind: TransformMirror, V: n, Child: s}
}

// Offset2D grows (delta > 0) or shrinks (delta < 0) the outline of s.
func Offset2D(s Shape2, delta float64, chamfer bool) *Transform2 {
	return &Transform2{Kind: TransformOffset, Delta: delta, Chamfer: chamfer, Child: s}
}

// Union2D returns the union of shapes.
func Union2D(shapes ...Shape2) *Boolean2 {
	return newBoolean2(OpUnion, shapes)
}

// Difference2D subtracts every following shape from the first.
func Difference2D(s Shape2, subtract ...Shape2) *Boolean2 {
	return newBoolean2(OpDifference, append([]Shape2{s}, subtract...))
}

// Intersect2D returns the intersection of shapes.
func Intersect2D(shapes ...Shape2) *Boolean2 {
	return newBoolean2(OpIntersection, shapes)
}

// Hull2D returns the convex hull of shapes.
func Hull2D(shapes ...Shape2) *Boolean2 {
	return newBoolean2(OpHull, shapes)
}

func newBoolean2(op BoolOp, shapes []Shape2) *Boolean2 {
	return &Boolean2{Op: op, Children: append([]Shape2(nil), shapes...)}
}

// Bounds returns the extent of the polygon vertices.
func (s *Polygon) Bounds() r2.Box {
	if len(s.Points) == 0 {
		return r2.Box{}
	}
	set := d2.Set(s.Points)
	return r2.Box{Min: set.Min(), Max: set.Max()}
}

// Bounds returns the square enclosing the circle.
func (s *Circle) Bounds() r2.Box {
	r := math.Abs(s.Radius)
	return r2.Box{Min: d2.Elem(-r), Max: d2.Elem(r)}
}

// Bounds returns the bounding box of the transformed child.
func (s *Transform2) Bounds() r2.Box {
	bb := d2.Box(s.Child.Bounds())
	switch s.Kind {
	case TransformTranslate:
		bb = bb.Translate(s.V)
	case TransformScale:
		bb = bb.Map(func(v r2.Vec) r2.Vec { return d2.MulElem(v, s.V) })
	case TransformRotate:
		theta := DtoR(s.Angle)
		bb = bb.Map(func(v r2.Vec) r2.Vec { return d2.Rotate(v, theta) })
	case TransformMirror:
		if r2.Norm2(s.V) != 0 {
			bb = bb.Map(func(v r2.Vec) r2.Vec { return d2.Reflect(v, s.V) })
		}
	case TransformOffset:
		bb = bb.Grow(s.Delta)
	}
	return r2.Box(bb)
}

// Bounds returns the bounding box of the boolean operation. Differences
// are bounded by their first child.
func (s *Boolean2) Bounds() r2.Box {
	if len(s.Children) == 0 {
		return r2.Box{}
	}
	bb := d2.Box(s.Children[0].Bounds())
	for _, c := range s.Children[1:] {
		switch s.Op {
		case OpUnion, OpHull:
			bb = bb.Extend(d2.Box(c.Bounds()))
		case OpIntersection:
			bb = bb.Intersect(d2.Box(c.Bounds()))
		}
	}
	return r2.Box(bb)
}
