package render

import (
	"math"
	"reflect"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/csg"
	"gonum.org/v1/gonum/spatial/r2"
)

// section is a loft cross section written as base scaled by k about the
// origin, offset by delta and translated by t.
type section struct {
	base  csg.Shape2
	k     float64
	delta float64
	t     r2.Vec
}

// sectionOf peels an outer translation, offset and positive uniform scale
// off s, in that order. Missing operations are left as identities.
func sectionOf(s csg.Shape2) section {
	sec := section{base: s, k: 1}
	if n, ok := sec.base.(*csg.Transform2); ok && n.Kind == csg.TransformTranslate {
		sec.t = n.V
		sec.base = n.Child
	}
	if n, ok := sec.base.(*csg.Transform2); ok && n.Kind == csg.TransformOffset {
		sec.delta = n.Delta
		sec.base = n.Child
	}
	if n, ok := sec.base.(*csg.Transform2); ok && n.Kind == csg.TransformScale && n.V.X == n.V.Y && n.V.X > 0 {
		sec.k = n.V.X
		sec.base = n.Child
	}
	return sec
}

// similar reports whether a and b share their base outline and offset so
// they can be interpolated by scale and translation alone.
func (a section) similar(b section) bool {
	return a.delta == b.delta && reflect.DeepEqual(a.base, b.base)
}

var _ sdf.SDF3 = (*taperedLoft)(nil)

// taperedLoft is a solid whose cross section goes linearly from sec0 at the
// top of the bottom slab to sec1 at the bottom of the top slab. The zero
// level set at every height is the exact interpolated outline.
type taperedLoft struct {
	base       sdf.SDF2
	sec0, sec1 section
	// Heights where interpolation starts and ends.
	zs0, zs1 float64
	z0, z1   float64
	bb       sdf.Box3
}

func newTaperedLoft(base sdf.SDF2, sec0, sec1 section, bottom, top slab) *taperedLoft {
	s := &taperedLoft{
		base: base,
		sec0: sec0,
		sec1: sec1,
		z0:   bottom.z0,
		z1:   math.Max(bottom.z1, top.z1),
		zs0:  bottom.z1,
		zs1:  top.z0,
	}
	// Overlapping slabs interpolate between their bottom faces.
	if s.zs1 <= s.zs0 {
		s.zs0 = bottom.z0
	}
	bb := base.BoundingBox()
	b0, b1 := s.sectionBox(bb, sec0), s.sectionBox(bb, sec1)
	s.bb = sdf.Box3{
		Min: v3.Vec{X: math.Min(b0.Min.X, b1.Min.X), Y: math.Min(b0.Min.Y, b1.Min.Y), Z: s.z0},
		Max: v3.Vec{X: math.Max(b0.Max.X, b1.Max.X), Y: math.Max(b0.Max.Y, b1.Max.Y), Z: s.z1},
	}
	return s
}

func (s *taperedLoft) sectionBox(bb sdf.Box2, sec section) sdf.Box2 {
	grow := math.Max(sec.delta, 0)
	return sdf.Box2{
		Min: v2.Vec{X: sec.k*bb.Min.X - grow + sec.t.X, Y: sec.k*bb.Min.Y - grow + sec.t.Y},
		Max: v2.Vec{X: sec.k*bb.Max.X + grow + sec.t.X, Y: sec.k*bb.Max.Y + grow + sec.t.Y},
	}
}

// Evaluate returns the distance from p to the loft. Distances are exact in
// the section plane and approximate across the taper.
func (s *taperedLoft) Evaluate(p v3.Vec) float64 {
	u := (p.Z - s.zs0) / (s.zs1 - s.zs0)
	u = math.Max(0, math.Min(1, u))
	k := s.sec0.k + u*(s.sec1.k-s.sec0.k)
	tx := s.sec0.t.X + u*(s.sec1.t.X-s.sec0.t.X)
	ty := s.sec0.t.Y + u*(s.sec1.t.Y-s.sec0.t.Y)
	q := v2.Vec{X: (p.X - tx) / k, Y: (p.Y - ty) / k}
	d := k*s.base.Evaluate(q) - s.sec0.delta
	mid := (s.z0 + s.z1) / 2
	return math.Max(d, math.Abs(p.Z-mid)-(s.z1-s.z0)/2)
}

// BoundingBox returns the box enclosing both end sections.
func (s *taperedLoft) BoundingBox() sdf.Box3 { return s.bb }
