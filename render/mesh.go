package render

import (
	"errors"
	"io"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/csg"
	"gonum.org/v1/gonum/spatial/r3"
)

// marchingCubes tessellates a compiled solid on first read and then serves
// the buffered triangles.
type marchingCubes struct {
	s     sdf.SDF3
	cells int
	done  bool
	buf   triangle3Buffer
}

// NewMarchingCubes compiles s and returns a Renderer that tessellates it
// with uniform marching cubes. cells is the number of cells along the
// longest side of the bounding box.
func NewMarchingCubes(s csg.Solid, cells int) (Renderer, error) {
	if cells < 2 {
		return nil, errors.New("marching cubes needs at least 2 cells")
	}
	sdf3, err := SDF3(s)
	if err != nil {
		return nil, err
	}
	return &marchingCubes{s: sdf3, cells: cells}, nil
}

// ReadTriangles reads the tessellated triangles into dst.
func (m *marchingCubes) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		return 0, errors.New("cannot read into empty triangle buffer")
	}
	if !m.done {
		m.tessellate()
	}
	n = m.buf.Read(dst)
	if m.buf.Len() == 0 {
		err = io.EOF
	}
	return n, err
}

func (m *marchingCubes) tessellate() {
	m.done = true
	tris := sdfxrender.ToTriangles(m.s, sdfxrender.NewMarchingCubesUniform(m.cells))
	converted := make([]Triangle3, 0, len(tris))
	for _, tri := range tris {
		t := Triangle3{V: [3]r3.Vec{fromV3(tri[0]), fromV3(tri[1]), fromV3(tri[2])}}
		// Drop triangles that collapse once stored as float32.
		if t.Degenerate(0) || stlTriangleFrom(t).degenerate(0) || bad3F32(to3F32(t.Normal())) {
			continue
		}
		converted = append(converted, t)
	}
	m.buf.Write(converted)
}
