// Package airfoil loads 2D wing section profiles from coordinate files.
//
// A profile file starts with a single label line followed by one point per
// line, x and y separated by whitespace. Points are expected at unit chord.
// This is the format of the Selig airfoil database files.
package airfoil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/soypat/csg"
	"github.com/soypat/csg/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	ErrMissingHeader = errors.New("missing header line")
	ErrMissingToken  = errors.New("line needs two numeric tokens")
	ErrNonFinite     = errors.New("coordinate is not finite")
)

// Airfoil is a wing section profile at unit chord. It should not be
// modified after loading; consumers copy Points before scaling them.
type Airfoil struct {
	// Name is the header line of the profile file.
	Name   string
	Points []r2.Vec
}

// ParseError reports a malformed profile line.
type ParseError struct {
	Line    int // 1 based line number.
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("airfoil: line %d %q: %v", e.Line, e.Content, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a profile source that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("airfoil: reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Load reads the profile file at path.
func Load(path string) (Airfoil, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Airfoil{}, &IOError{Path: path, Err: err}
	}
	defer fp.Close()
	af, err := Parse(fp)
	var perr *ParseError
	if err != nil && !errors.As(err, &perr) {
		return Airfoil{}, &IOError{Path: path, Err: err}
	}
	return af, err
}

// Parse reads a profile from r. The header line is kept as the Name and
// blank lines are skipped. Tokens after the second on a line are ignored.
func Parse(r io.Reader) (Airfoil, error) {
	var af Airfoil
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Airfoil{}, err
		}
		return Airfoil{}, &ParseError{Line: 1, Err: ErrMissingHeader}
	}
	af.Name = strings.TrimSpace(scanner.Text())
	line := 1
	for scanner.Scan() {
		line++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return Airfoil{}, &ParseError{Line: line, Content: text, Err: ErrMissingToken}
		}
		var v r2.Vec
		var err error
		if v.X, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return Airfoil{}, &ParseError{Line: line, Content: text, Err: err}
		}
		if v.Y, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return Airfoil{}, &ParseError{Line: line, Content: text, Err: err}
		}
		if !finite(v) {
			return Airfoil{}, &ParseError{Line: line, Content: text, Err: ErrNonFinite}
		}
		af.Points = append(af.Points, v)
	}
	if err := scanner.Err(); err != nil {
		return Airfoil{}, err
	}
	return af, nil
}

// Shape returns the profile as a polygon node at unit chord.
func (af Airfoil) Shape() *csg.Polygon {
	return csg.NewPolygon(af.Points)
}

// Scaled returns the profile scaled to chord length.
func (af Airfoil) Scaled(chord float64) csg.Shape2 {
	return csg.Scale2D(af.Shape(), r2.Vec{X: chord, Y: chord})
}

// Ring returns the profile as a closed orb ring.
func (af Airfoil) Ring() orb.Ring {
	return d2.Set(af.Points).Ring()
}

// Bounds returns the extent of the profile points.
func (af Airfoil) Bounds() r2.Box {
	if len(af.Points) == 0 {
		return r2.Box{}
	}
	b := af.Ring().Bound()
	return r2.Box{
		Min: r2.Vec{X: b.Min.X(), Y: b.Min.Y()},
		Max: r2.Vec{X: b.Max.X(), Y: b.Max.Y()},
	}
}

// Area returns the unsigned area enclosed by the profile.
func (af Airfoil) Area() float64 {
	return d2.Set(af.Points).Area()
}

// Chord returns the x extent of the profile.
func (af Airfoil) Chord() float64 {
	b := af.Bounds()
	return b.Max.X - b.Min.X
}

// Validate checks the profile encloses area so it can be lofted.
func (af Airfoil) Validate() error {
	switch {
	case len(af.Points) < 3:
		return csg.Degeneratef("airfoil", "%q has %d points, need at least 3", af.Name, len(af.Points))
	case !allFinite(af.Points):
		return csg.Degeneratef("airfoil", "%q has non finite points", af.Name)
	case af.Area() == 0:
		return csg.Degeneratef("airfoil", "%q encloses no area", af.Name)
	}
	return nil
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func allFinite(pts []r2.Vec) bool {
	for _, p := range pts {
		if !finite(p) {
			return false
		}
	}
	return true
}
