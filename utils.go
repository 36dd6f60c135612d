package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Infinite is the placeholder size used for trim solids that must span
	// past any part built here. Parts are expected to fit well inside it.
	Infinite = 1000.0

	pi = math.Pi
)

// Unit axes.
var (
	XAxis = r3.Vec{X: 1}
	YAxis = r3.Vec{Y: 1}
	ZAxis = r3.Vec{Z: 1}

	XAxis2 = r2.Vec{X: 1}
	YAxis2 = r2.Vec{Y: 1}
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}
