package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a 3d bounding box.
type Box r3.Box

// FromR2 extrudes a 2d box between heights z0 and z1.
func FromR2(b r2.Box, z0, z1 float64) Box {
	return Box{
		Min: r3.Vec{X: b.Min.X, Y: b.Min.Y, Z: math.Min(z0, z1)},
		Max: r3.Vec{X: b.Max.X, Y: b.Max.Y, Z: math.Max(z0, z1)},
	}
}

// Equals test the equality of 3d boxes.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Extend returns a box enclosing two 3d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Intersect returns the overlap of two 3d boxes. Boxes that do not overlap
// on an axis collapse to a zero size extent on that axis.
func (a Box) Intersect(b Box) Box {
	r := Box{
		Min: MaxElem(a.Min, b.Min),
		Max: MinElem(a.Max, b.Max),
	}
	r.Max = MaxElem(r.Min, r.Max)
	return r
}

// Include enlarges a 3d box to include a point.
func (a Box) Include(v r3.Vec) Box {
	return Box{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Translate translates a 3d box.
func (a Box) Translate(v r3.Vec) Box {
	return Box{r3.Add(a.Min, v), r3.Add(a.Max, v)}
}

// Size returns the size of a 3d box.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Vertices returns a slice of 3d box corner vertices.
func (a Box) Vertices() Set {
	v := make([]r3.Vec, 8)
	v[0] = a.Min
	v[1] = r3.Vec{X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z}
	v[2] = r3.Vec{X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z}
	v[3] = r3.Vec{X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z}
	v[4] = r3.Vec{X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z}
	v[5] = r3.Vec{X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z}
	v[6] = r3.Vec{X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z}
	v[7] = a.Max
	return v
}

// Map applies f to every corner of the box and returns the axis aligned
// box enclosing the results. Exact for affine maps.
func (a Box) Map(f func(r3.Vec) r3.Vec) Box {
	v := a.Vertices()
	for i := range v {
		v[i] = f(v[i])
	}
	return Box{Min: v.Min(), Max: v.Max()}
}
