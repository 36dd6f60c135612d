package form3

import (
	"errors"
	"testing"

	"github.com/soypat/csg"
	"github.com/soypat/csg/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCuboidCentering(t *testing.T) {
	for _, test := range []struct {
		center [3]bool
		want   r3.Box
	}{
		{want: r3.Box{Max: r3.Vec{2, 4, 6}}},
		{center: [3]bool{false, true, false}, want: r3.Box{Min: r3.Vec{0, -2, 0}, Max: r3.Vec{2, 2, 6}}},
		{center: [3]bool{true, true, true}, want: r3.Box{Min: r3.Vec{-1, -2, -3}, Max: r3.Vec{1, 2, 3}}},
	} {
		c, err := Cuboid(r3.Vec{2, 4, 6}, test.center)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Bounds(); got != test.want {
			t.Errorf("center %v: got %v. want %v", test.center, got, test.want)
		}
	}
	if _, err := Cuboid(r3.Vec{1, 0, 1}, [3]bool{}); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
}

func TestLoftPlacement(t *testing.T) {
	sq := csg.NewPolygon([]r2.Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	big := csg.Scale2D(sq, r2.Vec{3, 3})
	loft, err := Loft(sq, big, 0.1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if loft.Op != csg.OpHull || len(loft.Children) != 2 {
		t.Fatalf("got %v with %d children. want hull of 2", loft.Op, len(loft.Children))
	}
	root := loft.Children[0].Bounds()
	if root.Min.Z != 0 || root.Max.Z != 0.1 {
		t.Errorf("root slab z got [%g, %g]. want [0, 0.1]", root.Min.Z, root.Max.Z)
	}
	tip := d3.Box(loft.Children[1].Bounds())
	want := d3.Box{Min: r3.Vec{0, 0, 9.9}, Max: r3.Vec{3, 3, 10}}
	if !tip.Equals(want, 1e-12) {
		t.Errorf("tip slab got %v. want %v", tip, want)
	}
	if _, err := Loft(sq, big, 1, 1); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
	if _, err := Slab(sq, 0); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
}
