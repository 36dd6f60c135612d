package airfoil

import (
	"errors"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/soypat/csg"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestParseRoundTrip(t *testing.T) {
	af, err := Parse(strings.NewReader("TEST\n1.0 0.0\n0.0 0.1\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Vec{{1, 0}, {0, 0.1}}
	if len(af.Points) != len(want) {
		t.Fatalf("got %d points. want %d", len(af.Points), len(want))
	}
	for i := range want {
		if af.Points[i] != want[i] {
			t.Errorf("point %d: got %v. want %v", i, af.Points[i], want[i])
		}
	}
	if af.Name != "TEST" {
		t.Errorf("got name %q. want %q", af.Name, "TEST")
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		line  int
		want  error
	}{
		{input: "", line: 1, want: ErrMissingHeader},
		{input: "H\n1.0\n", line: 2, want: ErrMissingToken},
		{input: "H\n0 0\n1.0 abc\n", line: 3, want: strconv.ErrSyntax},
		{input: "H\nx 0\n", line: 2, want: strconv.ErrSyntax},
		{input: "H\n0 0\nNaN 0.1\n", line: 3, want: ErrNonFinite},
		{input: "H\n0 +Inf\n", line: 2, want: ErrNonFinite},
		{input: "H\n1 0\n0.5 -inf\n", line: 3, want: ErrNonFinite},
	} {
		_, err := Parse(strings.NewReader(test.input))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("input %q: got %v. want *ParseError", test.input, err)
			continue
		}
		if perr.Line != test.line {
			t.Errorf("input %q: got line %d. want %d", test.input, perr.Line, test.line)
		}
		if !errors.Is(err, test.want) {
			t.Errorf("input %q: got %v. want %v", test.input, err, test.want)
		}
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	af, err := Parse(strings.NewReader("H\n\n0 0 extra\n  \n1 0\n0.5 0.2\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(af.Points) != 3 {
		t.Errorf("got %d points. want 3", len(af.Points))
	}
}

func TestLoad(t *testing.T) {
	af, err := Load("testdata/naca2412.dat")
	if err != nil {
		t.Fatal(err)
	}
	if af.Name != "NACA 2412" {
		t.Errorf("got name %q", af.Name)
	}
	if err := af.Validate(); err != nil {
		t.Fatal(err)
	}
	if chord := af.Chord(); math.Abs(chord-1) > 1e-3 {
		t.Errorf("got chord %g. want 1", chord)
	}
	// A 12% thick section encloses roughly 0.08 of the unit chord square.
	if area := af.Area(); area < 0.07 || area > 0.09 {
		t.Errorf("got area %g. want about 0.08", area)
	}
	bb := af.Bounds()
	if bb.Max.Y <= 0 || bb.Min.Y >= 0 {
		t.Errorf("profile should straddle the chord line, got %v", bb)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/does-not-exist.dat")
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %v. want *IOError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v. want it to wrap fs.ErrNotExist", err)
	}
}

func TestValidate(t *testing.T) {
	line := Airfoil{Name: "flat", Points: []r2.Vec{{0, 0}, {0.5, 0}, {1, 0}}}
	if err := line.Validate(); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
	nan := Airfoil{Name: "nan", Points: []r2.Vec{{0, 0}, {1, 0}, {0.5, math.NaN()}}}
	if err := nan.Validate(); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
	short := Airfoil{Points: []r2.Vec{{0, 0}, {1, 0}}}
	if err := short.Validate(); !errors.Is(err, csg.ErrDegenerate) {
		t.Errorf("got %v. want degenerate error", err)
	}
}

func TestScaledDoesNotAlias(t *testing.T) {
	af := Airfoil{Points: []r2.Vec{{0, 0}, {1, 0}, {0.5, 0.1}}}
	s := af.Scaled(140)
	af.Points[1] = r2.Vec{99, 99}
	want := r2.Box{Max: r2.Vec{140, 14}}
	got := s.Bounds()
	if math.Abs(got.Max.X-want.Max.X) > 1e-9 || math.Abs(got.Max.Y-want.Max.Y) > 1e-9 {
		t.Errorf("got %v. want %v", got, want)
	}
}
