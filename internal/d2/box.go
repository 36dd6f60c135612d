package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Equals test the equality of 2d boxes.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Intersect returns the overlap of two 2d boxes. Disjoint boxes collapse
// to a zero size extent on the axis they do not overlap.
func (a Box) Intersect(b Box) Box {
	r := Box{
		Min: MaxElem(a.Min, b.Min),
		Max: MinElem(a.Max, b.Max),
	}
	r.Max = MaxElem(r.Min, r.Max)
	return r
}

// Translate translates a 2d box.
func (a Box) Translate(v r2.Vec) Box {
	return Box{r2.Add(a.Min, v), r2.Add(a.Max, v)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Grow moves every side of the box outwards by d. Negative d shrinks the
// box; a box shrunk past its center collapses onto the center.
func (a Box) Grow(d float64) Box {
	c := a.Center()
	r := Box{r2.Sub(a.Min, Elem(d)), r2.Add(a.Max, Elem(d))}
	r.Min = MinElem(r.Min, c)
	r.Max = MaxElem(r.Max, c)
	return r
}

// Vertices returns a slice of 2d box corner vertices.
func (a Box) Vertices() Set {
	v := make([]r2.Vec, 4)
	v[0] = a.Min                          // bl
	v[1] = r2.Vec{X: a.Max.X, Y: a.Min.Y} // br
	v[2] = r2.Vec{X: a.Min.X, Y: a.Max.Y} // tl
	v[3] = a.Max                          // tr
	return v
}

// Map applies f to every corner of the box and returns the axis aligned
// box enclosing the results. Exact for affine maps.
func (a Box) Map(f func(r2.Vec) r2.Vec) Box {
	v := a.Vertices()
	for i := range v {
		v[i] = f(v[i])
	}
	return Box{Min: v.Min(), Max: v.Max()}
}
