// Package render compiles geometry trees into signed distance functions of
// github.com/deadsy/sdfx, tessellates them and writes the resulting meshes.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams the triangles of a tessellated solid. ReadTriangles
// returns io.EOF once all triangles have been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle with counter clockwise vertices when seen
// from outside the solid.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if any two vertices are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return r3.Norm(r3.Sub(t.V[0], t.V[1])) <= tol ||
		r3.Norm(r3.Sub(t.V[1], t.V[2])) <= tol ||
		r3.Norm(r3.Sub(t.V[2], t.V[0])) <= tol
}
