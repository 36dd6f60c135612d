package d2

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Elem returns a vector with both components set to sides.
func Elem(sides float64) r2.Vec {
	return r2.Vec{X: sides, Y: sides}
}

// EqualWithin returns true if both components of a and b differ by at most tol.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// MulElem multiplies a and b component wise.
func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: a.X * b.X, Y: a.Y * b.Y}
}

// Reflect mirrors v across the line through the origin with normal n.
func Reflect(v, n r2.Vec) r2.Vec {
	k := 2 * r2.Dot(v, n) / r2.Norm2(n)
	return r2.Sub(v, r2.Scale(k, n))
}

// Rotate rotates v counter clockwise by theta radians about the origin.
func Rotate(v r2.Vec, theta float64) r2.Vec {
	s, c := math.Sincos(theta)
	return r2.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

// Set is a list of 2d points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Ring converts the set into a closed orb ring.
func (a Set) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(a)+1)
	for _, v := range a {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// Area returns the unsigned area enclosed by the set taken as a closed polygon.
func (a Set) Area() float64 {
	if len(a) < 3 {
		return 0
	}
	return math.Abs(planar.Area(a.Ring()))
}
