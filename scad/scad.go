// Package scad writes geometry trees as OpenSCAD source files.
package scad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/csg"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultDetail is the $fn value used when File.Detail is not set.
const DefaultDetail = 25

// File is an OpenSCAD file under construction. Objects are written in the
// order they were added as top level statements.
type File struct {
	// Detail is the number of fragments OpenSCAD uses for full circles ($fn).
	Detail  int
	objects []csg.Solid
}

// Add appends solids to the file.
func (f *File) Add(solids ...csg.Solid) {
	f.objects = append(f.objects, solids...)
}

// WriteTo validates every object and writes the file contents to w.
// Nothing is written if any object is degenerate.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	for i, obj := range f.objects {
		if err := csg.Validate3(obj); err != nil {
			return 0, fmt.Errorf("object %d: %w", i, err)
		}
	}
	detail := f.Detail
	if detail <= 0 {
		detail = DefaultDetail
	}
	cw := &countWriter{w: w}
	sw := &writer{w: bufio.NewWriter(cw)}
	sw.printf("$fn=%d;\n", detail)
	for _, obj := range f.objects {
		sw.solid(obj)
	}
	if sw.err == nil {
		sw.err = sw.w.Flush()
	}
	return cw.n, sw.err
}

// Create writes the file to path, truncating it if it exists.
func (f *File) Create(path string) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if _, err = f.WriteTo(fp); err != nil {
		return err
	}
	return fp.Close()
}

// WriteSolid writes a single solid to w with the default detail.
func WriteSolid(w io.Writer, s csg.Solid) error {
	var f File
	f.Add(s)
	_, err := f.WriteTo(w)
	return err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// writer emits statements. The first write error is kept and
// later writes are dropped.
type writer struct {
	w     *bufio.Writer
	depth int
	err   error
}

func (sw *writer) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *writer) indent() {
	if sw.err != nil {
		return
	}
	_, sw.err = sw.w.WriteString(strings.Repeat("\t", sw.depth))
}

// open writes a statement header followed by an opening brace.
func (sw *writer) open(header string) {
	sw.indent()
	sw.printf("%s {\n", header)
	sw.depth++
}

func (sw *writer) close() {
	sw.depth--
	sw.indent()
	sw.printf("}\n")
}

func (sw *writer) leaf(stmt string) {
	sw.indent()
	sw.printf("%s;\n", stmt)
}

func (sw *writer) solid(s csg.Solid) {
	switch n := s.(type) {
	case *csg.Cuboid:
		cube := "cube(" + vec3(n.Size) + ")"
		ofs := n.Offset()
		if ofs == (r3.Vec{}) {
			sw.leaf(cube)
			return
		}
		sw.open("translate(" + vec3(ofs) + ")")
		sw.leaf(cube)
		sw.close()
	case *csg.Extrude:
		sw.open(fmt.Sprintf("linear_extrude(height=%s, center=%t)", num(n.Height), n.Center))
		sw.shape(n.Child)
		sw.close()
	case *csg.Transform3:
		sw.open(transform3(n))
		sw.solid(n.Child)
		sw.close()
	case *csg.Boolean3:
		sw.open(n.Op.String() + "()")
		for _, c := range n.Children {
			sw.solid(c)
		}
		sw.close()
	}
}

func (sw *writer) shape(s csg.Shape2) {
	switch n := s.(type) {
	case *csg.Polygon:
		pts := make([]string, len(n.Points))
		for i, p := range n.Points {
			pts[i] = vec2(p)
		}
		sw.leaf("polygon(points=[" + strings.Join(pts, ", ") + "])")
	case *csg.Circle:
		sw.leaf("circle(r=" + num(n.Radius) + ")")
	case *csg.Transform2:
		sw.open(transform2(n))
		sw.shape(n.Child)
		sw.close()
	case *csg.Boolean2:
		sw.open(n.Op.String() + "()")
		for _, c := range n.Children {
			sw.shape(c)
		}
		sw.close()
	}
}

func transform3(n *csg.Transform3) string {
	switch n.Kind {
	case csg.TransformRotate:
		return "rotate(a=" + num(n.Angle) + ", v=" + vec3(n.V) + ")"
	default:
		return n.Kind.String() + "(" + vec3(n.V) + ")"
	}
}

func transform2(n *csg.Transform2) string {
	switch n.Kind {
	case csg.TransformRotate:
		return "rotate(" + num(n.Angle) + ")"
	case csg.TransformOffset:
		return fmt.Sprintf("offset(delta=%s, chamfer=%t)", num(n.Delta), n.Chamfer)
	default:
		return n.Kind.String() + "(" + vec2(n.V) + ")"
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func vec2(v r2.Vec) string {
	return "[" + num(v.X) + ", " + num(v.Y) + "]"
}

func vec3(v r3.Vec) string {
	return "[" + num(v.X) + ", " + num(v.Y) + ", " + num(v.Z) + "]"
}
