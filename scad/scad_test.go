package scad

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/csg"
	"github.com/soypat/csg/form3/obj3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWriteTo(t *testing.T) {
	square := csg.NewPolygon([]r2.Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	for _, test := range []struct {
		name   string
		detail int
		solid  csg.Solid
		want   string
	}{
		{
			name:  "cube",
			solid: csg.NewCuboid(r3.Vec{X: 1, Y: 2, Z: 3}, [3]bool{}),
			want:  "$fn=25;\ncube([1, 2, 3]);\n",
		},
		{
			name:   "centered y",
			detail: 60,
			solid:  csg.NewCuboid(r3.Vec{X: 1, Y: 2, Z: 3}, [3]bool{false, true, false}),
			want:   "$fn=60;\ntranslate([0, -1, 0]) {\n\tcube([1, 2, 3]);\n}\n",
		},
		{
			name:  "extrude offset",
			solid: csg.LinearExtrude(csg.Offset2D(square, -0.5, true), 2, false),
			want: "$fn=25;\nlinear_extrude(height=2, center=false) {\n" +
				"\toffset(delta=-0.5, chamfer=true) {\n" +
				"\t\tpolygon(points=[[0, 0], [1, 0], [1, 1], [0, 1]]);\n\t}\n}\n",
		},
		{
			name: "rotate mirror hull",
			solid: csg.Rotate3D(csg.Mirror3D(csg.Hull3D(
				csg.LinearExtrude(csg.NewCircle(2), 1, true),
			), csg.XAxis), 90, csg.XAxis),
			want: "$fn=25;\nrotate(a=90, v=[1, 0, 0]) {\n\tmirror([1, 0, 0]) {\n\t\thull() {\n" +
				"\t\t\tlinear_extrude(height=1, center=true) {\n\t\t\t\tcircle(r=2);\n\t\t\t}\n\t\t}\n\t}\n}\n",
		},
	} {
		f := File{Detail: test.detail}
		f.Add(test.solid)
		var b bytes.Buffer
		n, err := f.WriteTo(&b)
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if n != int64(b.Len()) {
			t.Errorf("%s: got n=%d. want %d", test.name, n, b.Len())
		}
		if got := b.String(); got != test.want {
			t.Errorf("%s: got\n%s\nwant\n%s", test.name, got, test.want)
		}
	}
}

func TestWriteToDegenerate(t *testing.T) {
	var f File
	f.Add(csg.NewCuboid(r3.Vec{X: 1, Y: 1, Z: 1}, [3]bool{}))
	f.Add(csg.NewCuboid(r3.Vec{X: 1, Y: 0, Z: 1}, [3]bool{}))
	var b bytes.Buffer
	_, err := f.WriteTo(&b)
	if !errors.Is(err, csg.ErrDegenerate) {
		t.Fatalf("got %v. want degenerate error", err)
	}
	if b.Len() != 0 {
		t.Errorf("wrote %d bytes for rejected file", b.Len())
	}
}

func TestCreateParts(t *testing.T) {
	hinge, err := obj3.Hinge(obj3.DefaultHingeParams())
	if err != nil {
		t.Fatal(err)
	}
	fuselage, err := obj3.Fuselage(obj3.DefaultFuselageParams())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.scad")
	f := File{Detail: 25}
	f.Add(hinge, fuselage)
	if err := f.Create(path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	if !strings.HasPrefix(got, "$fn=25;\n") {
		t.Errorf("missing detail header: %q", got[:min(len(got), 20)])
	}
	if strings.Count(got, "{") != strings.Count(got, "}") {
		t.Error("unbalanced braces")
	}
	for _, want := range []string{"mirror([1, 0, 0])", "intersection()", "polygon(points="} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
