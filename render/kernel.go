package render

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/csg"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnsupported is returned for trees the SDF kernel cannot represent.
var ErrUnsupported = errors.New("unsupported by sdf kernel")

// SDF2 validates s and compiles it into an sdfx 2D signed distance function.
func SDF2(s csg.Shape2) (sdf.SDF2, error) {
	if err := csg.Validate2(s); err != nil {
		return nil, err
	}
	return compile2(s)
}

// SDF3 validates s and compiles it into an sdfx 3D signed distance function.
// Hulls are only supported over solids that are z stacked slabs (extrusions
// and cuboids, optionally translated). They are compiled into lofts between
// consecutive slab sections.
func SDF3(s csg.Solid) (sdf.SDF3, error) {
	if err := csg.Validate3(s); err != nil {
		return nil, err
	}
	return compile3(s)
}

func compile2(s csg.Shape2) (sdf.SDF2, error) {
	switch n := s.(type) {
	case *csg.Polygon:
		vertex := make([]v2.Vec, len(n.Points))
		for i, p := range n.Points {
			vertex[i] = v2.Vec{X: p.X, Y: p.Y}
		}
		return sdf.Polygon2D(vertex)
	case *csg.Circle:
		return sdf.Circle2D(n.Radius)
	case *csg.Transform2:
		child, err := compile2(n.Child)
		if err != nil {
			return nil, err
		}
		return transform2(child, n)
	case *csg.Boolean2:
		children := make([]sdf.SDF2, len(n.Children))
		for i, c := range n.Children {
			var err error
			children[i], err = compile2(c)
			if err != nil {
				return nil, err
			}
		}
		switch n.Op {
		case csg.OpUnion:
			return sdf.Union2D(children...), nil
		case csg.OpDifference:
			if len(children) == 1 {
				return children[0], nil
			}
			return sdf.Difference2D(children[0], sdf.Union2D(children[1:]...)), nil
		case csg.OpIntersection:
			result := children[0]
			for _, c := range children[1:] {
				result = sdf.Intersect2D(result, c)
			}
			return result, nil
		}
		return nil, fmt.Errorf("2D %s: %w", n.Op, ErrUnsupported)
	}
	return nil, fmt.Errorf("shape %T: %w", s, ErrUnsupported)
}

func transform2(child sdf.SDF2, n *csg.Transform2) (sdf.SDF2, error) {
	var m sdf.M33
	switch n.Kind {
	case csg.TransformTranslate:
		m = sdf.Translate2d(v2.Vec{X: n.V.X, Y: n.V.Y})
	case csg.TransformScale:
		if n.V.X == n.V.Y {
			return scaleUniform2(child, n.V.X), nil
		}
		// Non uniform scaling keeps the sign of the field but not distances.
		m = sdf.Scale2d(v2.Vec{X: n.V.X, Y: n.V.Y})
	case csg.TransformRotate:
		m = sdf.Rotate2d(csg.DtoR(n.Angle))
	case csg.TransformMirror:
		// Rotate the normal onto x, flip x and rotate back.
		theta := math.Atan2(n.V.Y, n.V.X)
		m = sdf.Rotate2d(theta).Mul(sdf.Scale2d(v2.Vec{X: -1, Y: 1})).Mul(sdf.Rotate2d(-theta))
	case csg.TransformOffset:
		return sdf.Offset2D(child, n.Delta), nil
	default:
		return nil, fmt.Errorf("2D %s: %w", n.Kind, ErrUnsupported)
	}
	return sdf.Transform2D(child, m), nil
}

func compile3(s csg.Solid) (sdf.SDF3, error) {
	switch n := s.(type) {
	case *csg.Cuboid:
		box, err := sdf.Box3D(toV3(n.Size), 0)
		if err != nil {
			return nil, err
		}
		center := r3.Add(n.Offset(), r3.Scale(0.5, n.Size))
		return sdf.Transform3D(box, sdf.Translate3d(toV3(center))), nil
	case *csg.Extrude:
		child, err := compile2(n.Child)
		if err != nil {
			return nil, err
		}
		// sdfx extrusions are centered on z=0.
		ext := sdf.Extrude3D(child, n.Height)
		if n.Center {
			return ext, nil
		}
		return sdf.Transform3D(ext, sdf.Translate3d(v3.Vec{Z: n.Height / 2})), nil
	case *csg.Transform3:
		child, err := compile3(n.Child)
		if err != nil {
			return nil, err
		}
		return transform3(child, n)
	case *csg.Boolean3:
		if n.Op == csg.OpHull {
			return loftSlabs(n.Children)
		}
		children := make([]sdf.SDF3, len(n.Children))
		for i, c := range n.Children {
			var err error
			children[i], err = compile3(c)
			if err != nil {
				return nil, err
			}
		}
		switch n.Op {
		case csg.OpUnion:
			return sdf.Union3D(children...), nil
		case csg.OpDifference:
			if len(children) == 1 {
				return children[0], nil
			}
			return sdf.Difference3D(children[0], sdf.Union3D(children[1:]...)), nil
		case csg.OpIntersection:
			result := children[0]
			for _, c := range children[1:] {
				result = sdf.Intersect3D(result, c)
			}
			return result, nil
		}
		return nil, fmt.Errorf("3D %s: %w", n.Op, ErrUnsupported)
	}
	return nil, fmt.Errorf("solid %T: %w", s, ErrUnsupported)
}

func transform3(child sdf.SDF3, n *csg.Transform3) (sdf.SDF3, error) {
	var m sdf.M44
	switch n.Kind {
	case csg.TransformTranslate:
		m = sdf.Translate3d(toV3(n.V))
	case csg.TransformScale:
		if n.V.X == n.V.Y && n.V.Y == n.V.Z {
			return scaleUniform3(child, n.V.X), nil
		}
		m = sdf.Scale3d(toV3(n.V))
	case csg.TransformRotate:
		m = sdf.Rotate3d(toV3(r3.Unit(n.V)), csg.DtoR(n.Angle))
	case csg.TransformMirror:
		m = mirror3(r3.Unit(n.V))
	default:
		return nil, fmt.Errorf("3D %s: %w", n.Kind, ErrUnsupported)
	}
	return sdf.Transform3D(child, m), nil
}

// scaleUniform2 scales child by k preserving distances. Negative k is a
// point reflection followed by the scale.
func scaleUniform2(child sdf.SDF2, k float64) sdf.SDF2 {
	if k < 0 {
		child = sdf.Transform2D(child, sdf.Scale2d(v2.Vec{X: -1, Y: -1}))
		k = -k
	}
	return sdf.ScaleUniform2D(child, k)
}

func scaleUniform3(child sdf.SDF3, k float64) sdf.SDF3 {
	if k < 0 {
		child = sdf.Transform3D(child, sdf.Scale3d(v3.Vec{X: -1, Y: -1, Z: -1}))
		k = -k
	}
	return sdf.ScaleUniform3D(child, k)
}

// mirror3 returns the reflection across the plane through the origin with
// unit normal n.
func mirror3(n r3.Vec) sdf.M44 {
	const tol = 1e-12
	switch {
	case math.Abs(n.Y) < tol && math.Abs(n.Z) < tol:
		return sdf.Scale3d(v3.Vec{X: -1, Y: 1, Z: 1})
	case math.Abs(n.X) < tol && math.Abs(n.Z) < tol:
		return sdf.Scale3d(v3.Vec{X: 1, Y: -1, Z: 1})
	case math.Abs(n.X) < tol && math.Abs(n.Y) < tol:
		return sdf.Scale3d(v3.Vec{X: 1, Y: 1, Z: -1})
	}
	x := v3.Vec{X: 1}
	toX := sdf.RotateToVector(toV3(n), x)
	fromX := sdf.RotateToVector(x, toV3(n))
	return fromX.Mul(sdf.Scale3d(v3.Vec{X: -1, Y: 1, Z: 1})).Mul(toX)
}

// slab is a 2D section extruded between heights z0 and z1.
type slab struct {
	section csg.Shape2
	z0, z1  float64
}

func slabOf(s csg.Solid) (slab, error) {
	switch n := s.(type) {
	case *csg.Extrude:
		z0, z1 := n.ZRange()
		return slab{section: n.Child, z0: z0, z1: z1}, nil
	case *csg.Cuboid:
		bb := n.Bounds()
		rect := csg.NewPolygon([]r2.Vec{
			{X: bb.Min.X, Y: bb.Min.Y},
			{X: bb.Max.X, Y: bb.Min.Y},
			{X: bb.Max.X, Y: bb.Max.Y},
			{X: bb.Min.X, Y: bb.Max.Y},
		})
		return slab{section: rect, z0: bb.Min.Z, z1: bb.Max.Z}, nil
	case *csg.Transform3:
		if n.Kind != csg.TransformTranslate {
			break
		}
		sl, err := slabOf(n.Child)
		if err != nil {
			return slab{}, err
		}
		if n.V.X != 0 || n.V.Y != 0 {
			sl.section = csg.Translate2D(sl.section, r2.Vec{X: n.V.X, Y: n.V.Y})
		}
		sl.z0 += n.V.Z
		sl.z1 += n.V.Z
		return sl, nil
	}
	return slab{}, fmt.Errorf("hull of %T: %w", s, ErrUnsupported)
}

// loftSlabs approximates the hull of z stacked slabs by lofting from the
// bottom of each slab to the top of the next one. Consecutive sections that
// are scaled copies of the same outline are interpolated exactly, others are
// blended by sdfx.
func loftSlabs(solids []csg.Solid) (sdf.SDF3, error) {
	slabs := make([]slab, len(solids))
	for i, s := range solids {
		var err error
		slabs[i], err = slabOf(s)
		if err != nil {
			return nil, err
		}
	}
	if len(slabs) == 1 {
		return compile3(solids[0])
	}
	sort.SliceStable(slabs, func(i, j int) bool { return slabs[i].z0 < slabs[j].z0 })
	lofts := make([]sdf.SDF3, 0, len(slabs)-1)
	for i := 0; i < len(slabs)-1; i++ {
		bottom, top := slabs[i], slabs[i+1]
		if top.z0 <= bottom.z0 {
			return nil, fmt.Errorf("hull of slabs sharing height %g: %w", bottom.z0, ErrUnsupported)
		}
		loft, err := loftPair(bottom, top)
		if err != nil {
			return nil, err
		}
		lofts = append(lofts, loft)
	}
	if len(lofts) == 1 {
		return lofts[0], nil
	}
	return sdf.Union3D(lofts...), nil
}

func loftPair(bottom, top slab) (sdf.SDF3, error) {
	sec0, sec1 := sectionOf(bottom.section), sectionOf(top.section)
	if sec0.similar(sec1) {
		base, err := compile2(sec0.base)
		if err != nil {
			return nil, err
		}
		return newTaperedLoft(base, sec0, sec1, bottom, top), nil
	}
	height := math.Max(top.z1, bottom.z1) - bottom.z0
	s0, err := compile2(bottom.section)
	if err != nil {
		return nil, err
	}
	s1, err := compile2(top.section)
	if err != nil {
		return nil, err
	}
	loft, err := sdf.Loft3D(s0, s1, height, 0)
	if err != nil {
		return nil, err
	}
	// sdfx lofts are centered on z=0.
	return sdf.Transform3D(loft, sdf.Translate3d(v3.Vec{Z: bottom.z0 + height/2})), nil
}

func toV3(v r3.Vec) v3.Vec { return v3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func fromV3(v v3.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }
