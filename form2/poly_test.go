package form2

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/csg"
	"github.com/soypat/csg/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestPolygonBuilderRelative(t *testing.T) {
	p := NewPolygon()
	p.Add(0, 0)
	p.Add(10, 0).Rel()
	p.Add(0, 5).Rel()
	p.Add(-10, 0).Rel()
	p.Close()
	got, err := p.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Vec{{0, 0}, {10, 0}, {10, 5}, {0, 5}}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices. want %d", len(got), len(want))
	}
	for i := range want {
		if !d2.EqualWithin(got[i], want[i], 1e-12) {
			t.Errorf("vertex %d: got %v. want %v", i, got[i], want[i])
		}
	}
	// Resolving must not consume the builder.
	again, _ := p.Vertices()
	if !d2.EqualWithin(again[2], want[2], 1e-12) {
		t.Errorf("second resolve got %v. want %v", again[2], want[2])
	}
}

func TestPolygonBuilderReverse(t *testing.T) {
	p := NewPolygon()
	p.Add(0, 0)
	p.Add(1, 0)
	p.Add(1, 1)
	p.Reverse()
	got, err := p.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != (r2.Vec{1, 1}) || got[2] != (r2.Vec{0, 0}) {
		t.Errorf("got %v. want reversed order", got)
	}
}

func TestPolygonBuilderChamfer(t *testing.T) {
	p := NewPolygon()
	p.Add(0, 0)
	p.Add(10, 0).Chamfer(2)
	p.Add(10, 10)
	p.Add(0, 10)
	p.Close()
	got, err := p.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("chamfer got %d vertices. want 5", len(got))
	}
	for _, v := range got {
		if v == (r2.Vec{10, 0}) {
			t.Errorf("chamfered corner %v still present", v)
		}
	}
}

func TestPolygonBuilderSmooth(t *testing.T) {
	const radius = 2
	p := NewPolygon()
	p.Add(0, 0)
	p.Add(10, 0)
	p.Add(10, 10).Smooth(radius, 4)
	p.Add(0, 10)
	p.Close()
	got, err := p.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 8 {
		t.Fatalf("got %d vertices. want 8", len(got))
	}
	center := r2.Vec{10 - radius, 10 - radius}
	for _, v := range got[2:7] {
		if d := r2.Norm(r2.Sub(v, center)); math.Abs(d-radius) > 1e-9 {
			t.Errorf("fillet vertex %v at %g from center. want %g", v, d, radius)
		}
	}
}

func TestPolygonBuilderErrors(t *testing.T) {
	if _, err := NewPolygon().Vertices(); err == nil {
		t.Error("expected error for empty builder")
	}
	p := NewPolygon()
	p.Add(1, 1).Rel()
	if _, err := p.Vertices(); !errors.Is(err, errRelativeStart) {
		t.Errorf("got %v. want %v", err, errRelativeStart)
	}
	line := NewPolygon()
	line.Add(0, 0)
	line.Add(1, 1)
	line.Add(2, 2)
	if _, err := line.Polygon(); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("collinear polygon got %v. want degenerate error", err)
	}
}

func TestRect(t *testing.T) {
	for _, test := range []struct {
		size   r2.Vec
		center bool
		want   r2.Box
	}{
		{size: r2.Vec{4, 2}, want: r2.Box{Max: r2.Vec{4, 2}}},
		{size: r2.Vec{4, 2}, center: true, want: r2.Box{Min: r2.Vec{-2, -1}, Max: r2.Vec{2, 1}}},
	} {
		r, err := Rect(test.size, test.center)
		if err != nil {
			t.Fatal(err)
		}
		if got := r.Bounds(); got != test.want {
			t.Errorf("got %v. want %v", got, test.want)
		}
	}
	if _, err := Rect(r2.Vec{0, 1}, false); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("zero width rect got %v. want degenerate error", err)
	}
}

func TestEllipseBounds(t *testing.T) {
	e, err := Ellipse(100, 20)
	if err != nil {
		t.Fatal(err)
	}
	want := r2.Box{Min: r2.Vec{-100, -20}, Max: r2.Vec{100, 20}}
	if got := e.Bounds(); !d2.Box(got).Equals(d2.Box(want), 1e-9) {
		t.Errorf("got %v. want %v", got, want)
	}
	if _, err := Ellipse(1, -1); err == nil {
		t.Error("expected error for negative semi axis")
	}
}
