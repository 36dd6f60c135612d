package form2

import (
	"errors"
	"math"

	"github.com/soypat/csg"
	"github.com/soypat/csg/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// PolygonBuilder stores a set of 2d polygon vertices.
type PolygonBuilder struct {
	closed  bool            // is the polygon closed or open?
	reverse bool            // return the vertices in reverse order
	vlist   []polygonVertex // list of polygon vertices
}

// polygonVertex is a polygon vertex.
type polygonVertex struct {
	relative bool    // vertex position is relative to previous vertex
	vtype    pvType  // type of polygon vertex
	vertex   r2.Vec  // vertex coordinates
	facets   int     // number of polygon facets to create when smoothing
	radius   float64 // radius of smoothing (0 == none)
}

// pvType is the type of a polygon vertex.
type pvType int

const (
	pvNormal pvType = iota // normal vertex
	pvSmooth               // smooth the vertex
)

var errRelativeStart = errors.New("relative vertex needs an absolute reference")

// NewPolygon returns an empty polygon builder.
func NewPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Rel positions the polygon vertex relative to the prior vertex.
func (v *polygonVertex) Rel() *polygonVertex {
	v.relative = true
	return v
}

// Smooth marks the polygon vertex for smoothing.
func (v *polygonVertex) Smooth(radius float64, facets int) *polygonVertex {
	if radius != 0 && facets != 0 {
		v.radius = radius
		v.facets = facets
		v.vtype = pvSmooth
	}
	return v
}

// Chamfer marks the polygon vertex for chamfering.
func (v *polygonVertex) Chamfer(size float64) *polygonVertex {
	// A one facet smoothing. Exact for right angle corners only.
	if size != 0 {
		v.radius = size * sqrtHalf
		v.facets = 1
		v.vtype = pvSmooth
	}
	return v
}

// Close closes the polygon.
func (p *PolygonBuilder) Close() { p.closed = true }

// Reverse reverses the order the vertices are returned.
func (p *PolygonBuilder) Reverse() { p.reverse = true }

// AddV2 adds a vertex to a polygon.
func (p *PolygonBuilder) AddV2(x r2.Vec) *polygonVertex {
	p.vlist = append(p.vlist, polygonVertex{vertex: x, vtype: pvNormal})
	return &p.vlist[len(p.vlist)-1]
}

// Add an x,y vertex to a polygon.
func (p *PolygonBuilder) Add(x, y float64) *polygonVertex {
	return p.AddV2(r2.Vec{X: x, Y: y})
}

// Vertices resolves relative and smoothed vertices and returns the
// resulting vertex list. The builder is left untouched.
func (p *PolygonBuilder) Vertices() ([]r2.Vec, error) {
	if len(p.vlist) == 0 {
		return nil, errors.New("empty polygon builder")
	}
	w := PolygonBuilder{
		closed: p.closed,
		vlist:  append([]polygonVertex(nil), p.vlist...),
	}
	if err := w.fixups(); err != nil {
		return nil, err
	}
	n := len(w.vlist)
	v := make([]r2.Vec, n)
	for i, pv := range w.vlist {
		if p.reverse {
			v[n-1-i] = pv.vertex
		} else {
			v[i] = pv.vertex
		}
	}
	return v, nil
}

// Polygon returns the polygon node for the built vertices.
func (p *PolygonBuilder) Polygon() (*csg.Polygon, error) {
	v, err := p.Vertices()
	if err != nil {
		return nil, err
	}
	return Polygon(v)
}

func (p *PolygonBuilder) fixups() error {
	if err := p.relToAbs(); err != nil {
		return err
	}
	p.smoothVertices()
	return nil
}

// nextVertex returns the next vertex in the polygon.
func (p *PolygonBuilder) nextVertex(i int) *polygonVertex {
	if i == len(p.vlist)-1 {
		if p.closed {
			return &p.vlist[0]
		}
		return nil
	}
	return &p.vlist[i+1]
}

// prevVertex returns the previous vertex in the polygon.
func (p *PolygonBuilder) prevVertex(i int) *polygonVertex {
	if i == 0 {
		if p.closed {
			return &p.vlist[len(p.vlist)-1]
		}
		return nil
	}
	return &p.vlist[i-1]
}

// relToAbs converts relative vertices to absolute vertices.
func (p *PolygonBuilder) relToAbs() error {
	for i := range p.vlist {
		v := &p.vlist[i]
		if !v.relative {
			continue
		}
		if i == 0 {
			return errRelativeStart
		}
		v.vertex = r2.Add(v.vertex, p.vlist[i-1].vertex)
		v.relative = false
	}
	return nil
}

// smoothVertex smooths the i-th vertex, returns true if it was smoothed.
func (p *PolygonBuilder) smoothVertex(i int) bool {
	v := p.vlist[i]
	if v.vtype != pvSmooth {
		return false
	}
	p.vlist[i].vtype = pvNormal
	vn := p.nextVertex(i)
	vp := p.prevVertex(i)
	if vp == nil || vn == nil {
		// can't smooth the endpoints of an open polygon
		return false
	}
	v0 := r2.Unit(r2.Sub(vp.vertex, v.vertex))
	v1 := r2.Unit(r2.Sub(vn.vertex, v.vertex))
	theta := math.Acos(r2.Dot(v0, v1))
	// distance from vertex to circle tangent
	d1 := v.radius / math.Tan(theta/2.0)
	if d1 > r2.Norm(r2.Sub(vp.vertex, v.vertex)) || d1 > r2.Norm(r2.Sub(vn.vertex, v.vertex)) {
		// radius is too large
		return false
	}
	p0 := r2.Add(v.vertex, r2.Scale(d1, v0))
	d2c := v.radius / math.Sin(theta/2.0)
	c := r2.Add(v.vertex, r2.Scale(d2c, r2.Unit(r2.Add(v0, v1))))
	dtheta := sign(r2.Cross(v1, v0)) * (math.Pi - theta) / float64(v.facets)
	rv := r2.Sub(p0, c)
	points := make([]polygonVertex, v.facets+1)
	for j := range points {
		points[j] = polygonVertex{vertex: r2.Add(c, rv)}
		rv = d2.Rotate(rv, dtheta)
	}
	p.vlist = append(p.vlist[:i], append(points, p.vlist[i+1:]...)...)
	return true
}

// smoothVertices smooths the vertices of a polygon.
func (p *PolygonBuilder) smoothVertices() {
	done := false
	for !done {
		done = true
		for i := range p.vlist {
			if p.smoothVertex(i) {
				done = false
				break
			}
		}
	}
}
