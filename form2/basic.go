// Package form2 provides checked constructors for 2D shapes.
package form2

import (
	"github.com/soypat/csg"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns a polygon node made from a closed set of line segments.
// Polygons with fewer than 3 vertices or no enclosed area are rejected.
func Polygon(vertex []r2.Vec) (*csg.Polygon, error) {
	p := csg.NewPolygon(vertex)
	if err := csg.Validate2(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Circle returns a circle of the given radius centered at the origin.
func Circle(radius float64) (*csg.Circle, error) {
	if radius <= 0 {
		return nil, csg.Degeneratef("circle", "radius %g must be positive", radius)
	}
	return csg.NewCircle(radius), nil
}

// Ellipse returns an ellipse with semi axes rx and ry centered at the origin.
func Ellipse(rx, ry float64) (csg.Shape2, error) {
	if rx <= 0 || ry <= 0 {
		return nil, csg.Degeneratef("ellipse", "semi axes (%g, %g) must be positive", rx, ry)
	}
	return csg.Scale2D(csg.NewCircle(1), r2.Vec{X: rx, Y: ry}), nil
}

// Rect returns a rectangle with its minimum corner at the origin, or
// centered on it if center is set.
func Rect(size r2.Vec, center bool) (*csg.Polygon, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, csg.Degeneratef("rectangle", "size %v must be positive", size)
	}
	var min r2.Vec
	if center {
		min = r2.Scale(-0.5, size)
	}
	max := r2.Add(min, size)
	return csg.NewPolygon([]r2.Vec{
		min,
		{X: max.X, Y: min.Y},
		max,
		{X: min.X, Y: max.Y},
	}), nil
}
