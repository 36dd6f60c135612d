package render

import (
	"errors"
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/csg"
	"github.com/soypat/csg/form2/airfoil"
	"github.com/soypat/csg/form3/obj3"
	"github.com/soypat/csg/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var square = []r2.Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestCompileBoundsMatch(t *testing.T) {
	sq := csg.NewPolygon(square)
	cube := csg.NewCuboid(r3.Vec{2, 4, 6}, [3]bool{false, true, false})
	for _, test := range []struct {
		name string
		s    csg.Solid
	}{
		{"cuboid", cube},
		{"extrude", csg.LinearExtrude(csg.Scale2D(sq, r2.Vec{3, 2}), 5, false)},
		{"centered extrude", csg.LinearExtrude(sq, 5, true)},
		{"translate", csg.Translate3D(cube, r3.Vec{1, 2, 3})},
		{"mirror", csg.Mirror3D(cube, csg.XAxis)},
		{"rotate", csg.Rotate3D(cube, 90, csg.ZAxis)},
		{"union", csg.Union3D(cube, csg.Translate3D(cube, r3.Vec{Z: 10}))},
	} {
		s, err := SDF3(test.s)
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		bb := s.BoundingBox()
		got := d3.Box{Min: fromV3(bb.Min), Max: fromV3(bb.Max)}
		want := d3.Box(test.s.Bounds())
		if !got.Equals(want, 1e-6) {
			t.Errorf("%s: got %v. want %v", test.name, got, want)
		}
	}
}

func TestLoftSlabs(t *testing.T) {
	sq := csg.NewPolygon(square)
	big := csg.Scale2D(sq, r2.Vec{3, 3})
	hull := csg.Hull3D(
		csg.LinearExtrude(sq, 0.1, false),
		csg.Translate3D(csg.LinearExtrude(big, 0.1, false), r3.Vec{Z: 9.9}),
	)
	s, err := SDF3(hull)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p      v3.Vec
		inside bool
	}{
		{v3.Vec{X: 0.5, Y: 0.5, Z: 0.05}, true},
		{v3.Vec{X: 2.5, Y: 2.5, Z: 0.05}, false},
		{v3.Vec{X: 2.5, Y: 2.5, Z: 9.95}, true},
		{v3.Vec{X: 0.5, Y: 0.5, Z: 10.5}, false},
		{v3.Vec{X: 0.5, Y: 0.5, Z: -0.5}, false},
	} {
		d := s.Evaluate(test.p)
		if (d < 0) != test.inside {
			t.Errorf("point %v: got distance %g. want inside=%v", test.p, d, test.inside)
		}
	}
}

func TestCompileUnsupported(t *testing.T) {
	sq := csg.NewPolygon(square)
	cube := csg.NewCuboid(r3.Vec{1, 1, 1}, [3]bool{})
	for _, test := range []struct {
		name string
		s    csg.Solid
	}{
		{"hull 2d", csg.LinearExtrude(csg.Hull2D(sq, csg.NewCircle(1)), 1, false)},
		{"hull rotated", csg.Hull3D(cube, csg.Rotate3D(cube, 10, csg.XAxis))},
		{"hull same height", csg.Hull3D(cube, csg.Translate3D(cube, r3.Vec{X: 5}))},
	} {
		_, err := SDF3(test.s)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: got %v. want %v", test.name, err, ErrUnsupported)
		}
	}
}

func TestCompileRejectsDegenerate(t *testing.T) {
	_, err := SDF3(csg.NewCuboid(r3.Vec{1, 0, 1}, [3]bool{}))
	if !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
	_, err = SDF2(csg.NewPolygon(square[:2]))
	if !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
}

func TestMirrorOblique(t *testing.T) {
	n := r3.Unit(r3.Vec{1, 1, 0})
	m := mirror3(n)
	p := r3.Vec{1, 0, 0}
	got := fromV3(m.MulPosition(toV3(p)))
	want := d3.Reflect(p, n)
	if !d3.EqualWithin(got, want, 1e-12) {
		t.Errorf("got %v. want %v", got, want)
	}
}

func TestCompileRib(t *testing.T) {
	af, err := airfoil.Load("../form2/airfoil/testdata/naca2412.dat")
	if err != nil {
		t.Fatal(err)
	}
	w, err := obj3.NewWing(obj3.DefaultWingParams(af))
	if err != nil {
		t.Fatal(err)
	}
	rib, err := w.Rib(0, 5, 8)
	if err != nil {
		t.Fatal(err)
	}
	s, err := SDF3(rib)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p      v3.Vec
		inside bool
	}{
		{v3.Vec{X: 5, Y: 1, Z: 2.5}, true},    // leading edge, ahead of the front stop
		{v3.Vec{X: 60, Y: 1, Z: 2.5}, true},   // foam cavity
		{v3.Vec{X: 60, Y: 50, Z: 2.5}, false}, // above the section
		{v3.Vec{X: 60, Y: 1, Z: 7}, false},    // past the rib thickness
	} {
		d := s.Evaluate(test.p)
		if (d < 0) != test.inside {
			t.Errorf("point %v: got distance %g. want inside=%v", test.p, d, test.inside)
		}
	}
}

func TestScaleUniformKeepsDistance(t *testing.T) {
	af, err := airfoil.Load("../form2/airfoil/testdata/naca2412.dat")
	if err != nil {
		t.Fatal(err)
	}
	unit, err := SDF2(af.Shape())
	if err != nil {
		t.Fatal(err)
	}
	cavity, err := SDF2(csg.Offset2D(af.Scaled(140), -2, true))
	if err != nil {
		t.Fatal(err)
	}
	p := v2.Vec{X: 60, Y: 1}
	want := 140*unit.Evaluate(v2.Vec{X: p.X / 140, Y: p.Y / 140}) + 2
	got := cavity.Evaluate(p)
	if want >= 0 {
		t.Fatalf("test point outside cavity: %g", want)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got distance %g. want %g", got, want)
	}

	cube := csg.NewCuboid(r3.Vec{1, 1, 1}, [3]bool{})
	for _, test := range []struct {
		name string
		s    csg.Solid
		p    v3.Vec
		want float64
	}{
		{"scale up", csg.Scale3D(cube, d3.Elem(2)), v3.Vec{X: 3, Y: 1, Z: 1}, 1},
		{"scale down", csg.Scale3D(cube, d3.Elem(0.5)), v3.Vec{X: 0.25, Y: 0.25, Z: 1.5}, 1},
		{"point reflection", csg.Scale3D(cube, d3.Elem(-1)), v3.Vec{X: -2, Y: -0.5, Z: -0.5}, 1},
	} {
		s, err := SDF3(test.s)
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if got := s.Evaluate(test.p); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%s: got distance %g. want %g", test.name, got, test.want)
		}
	}
}

// upperSurface returns the height of the outline's upper surface at x by
// bisecting the field between an inside point at y=lo and outside at y=hi.
func upperSurface(eval func(y float64) float64, lo, hi float64) float64 {
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if eval(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func TestLoftSectionsInterpolate(t *testing.T) {
	const xRatio = 0.3
	af, err := airfoil.Load("../form2/airfoil/testdata/naca2412.dat")
	if err != nil {
		t.Fatal(err)
	}
	k := obj3.DefaultWingParams(af)
	w, err := obj3.NewWing(k)
	if err != nil {
		t.Fatal(err)
	}
	// Chord at z varies linearly between the inner faces of the end slabs.
	chordAt := func(z float64) float64 {
		u := (z - k.ExtrudeThickness) / (k.Wingspan - 2*k.ExtrudeThickness)
		u = math.Max(0, math.Min(1, u))
		return k.InnerLength + (k.OuterLength-k.InnerLength)*u
	}
	exterior, err := w.Exterior()
	if err != nil {
		t.Fatal(err)
	}
	interior, err := w.Interior(k.Foam.ShapeOffset)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name   string
		s      csg.Solid
		offset float64
	}{
		{"exterior", exterior, 0},
		{"interior", interior, k.Foam.ShapeOffset},
	} {
		s, err := SDF3(test.s)
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		for _, z := range []float64{k.ExtrudeThickness / 2, k.Wingspan / 2, k.Wingspan - k.ExtrudeThickness/2} {
			chord := chordAt(z)
			x := xRatio * chord
			section, err := SDF2(csg.Offset2D(af.Scaled(chord), test.offset, true))
			if err != nil {
				t.Fatal(err)
			}
			want := upperSurface(func(y float64) float64 {
				return section.Evaluate(v2.Vec{X: x, Y: y})
			}, 0, chord)
			got := upperSurface(func(y float64) float64 {
				return s.Evaluate(v3.Vec{X: x, Y: y, Z: z})
			}, 0, chord)
			if math.Abs(got-want) > 1e-3*chord {
				t.Errorf("%s z=%g: got upper surface %g. want %g", test.name, z, got, want)
			}
		}
	}
	// Sections keep the profile's thickness ratio along the span.
	unit, err := SDF2(af.Shape())
	if err != nil {
		t.Fatal(err)
	}
	s, err := SDF3(exterior)
	if err != nil {
		t.Fatal(err)
	}
	want := upperSurface(func(y float64) float64 {
		return unit.Evaluate(v2.Vec{X: xRatio, Y: y})
	}, 0, xRatio)
	for _, z := range []float64{k.ExtrudeThickness / 2, k.Wingspan / 2, k.Wingspan - k.ExtrudeThickness/2} {
		chord := chordAt(z)
		got := upperSurface(func(y float64) float64 {
			return s.Evaluate(v3.Vec{X: xRatio * chord, Y: y, Z: z})
		}, 0, chord) / chord
		if math.Abs(got-want) > 5e-4 {
			t.Errorf("z=%g: got thickness ratio %g. want %g", z, got, want)
		}
	}
}
