package csg

import (
	"fmt"

	"github.com/soypat/csg/internal/d2"
	"github.com/soypat/csg/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Validate3 walks the tree rooted at s and returns the first degenerate
// node found. Kernels and serializers call it before consuming a tree.
func Validate3(s Solid) error {
	switch n := s.(type) {
	case nil:
		return Degeneratef("solid", "nil node")
	case *Cuboid:
		if d3.LTEZero(n.Size) {
			return Degeneratef("cuboid", "non-positive size %v", n.Size)
		}
	case *Extrude:
		if n.Height <= 0 {
			return Degeneratef("linear_extrude", "non-positive height %g", n.Height)
		}
		return Validate2(n.Child)
	case *Transform3:
		if err := validateTransform(n.Kind, true, r3.Norm2(n.V) == 0, d3.AnyZero(n.V)); err != nil {
			return err
		}
		return Validate3(n.Child)
	case *Boolean3:
		if len(n.Children) == 0 {
			return Degeneratef(n.Op.String(), "no children")
		}
		for _, c := range n.Children {
			if err := Validate3(c); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("csg: unknown solid type %T", s)
	}
	return nil
}

// Validate2 walks the 2D tree rooted at s and returns the first degenerate
// node found.
func Validate2(s Shape2) error {
	switch n := s.(type) {
	case nil:
		return Degeneratef("shape", "nil node")
	case *Polygon:
		if len(n.Points) < 3 {
			return Degeneratef("polygon", "%d points, need at least 3", len(n.Points))
		}
		if d2.Set(n.Points).Area() == 0 {
			return Degeneratef("polygon", "zero area")
		}
	case *Circle:
		if n.Radius <= 0 {
			return Degeneratef("circle", "non-positive radius %g", n.Radius)
		}
	case *Transform2:
		zeroAxis := r2.Norm2(n.V) == 0
		anyZero := n.V.X == 0 || n.V.Y == 0
		if err := validateTransform(n.Kind, false, zeroAxis, anyZero); err != nil {
			return err
		}
		return Validate2(n.Child)
	case *Boolean2:
		if len(n.Children) == 0 {
			return Degeneratef(n.Op.String(), "no children")
		}
		for _, c := range n.Children {
			if err := Validate2(c); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("csg: unknown shape type %T", s)
	}
	return nil
}

func validateTransform(kind TransformKind, is3D, zeroAxis, anyZero bool) error {
	switch kind {
	case TransformRotate:
		if is3D && zeroAxis {
			return Degeneratef("rotate", "zero rotation axis")
		}
	case TransformScale:
		if anyZero {
			return Degeneratef("scale", "zero scale factor flattens shape")
		}
	case TransformMirror:
		if zeroAxis {
			return Degeneratef("mirror", "zero normal")
		}
	}
	return nil
}
