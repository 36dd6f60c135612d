// Package template exports flat manufacturing templates such as rib
// outlines for cutting foam or printing on paper.
package template

import (
	"errors"
	"fmt"

	"github.com/soypat/csg"
	"github.com/soypat/csg/form2/airfoil"
	"github.com/soypat/csg/internal/d2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Outline is a named 2D polyline. Closed outlines connect the last point
// back to the first.
type Outline struct {
	Name   string
	Points []r2.Vec
	Closed bool
}

// AirfoilOutline returns the closed outline of af scaled to chord.
func AirfoilOutline(af airfoil.Airfoil, chord float64) (Outline, error) {
	if chord <= 0 {
		return Outline{}, fmt.Errorf("non-positive chord %g", chord)
	}
	if err := af.Validate(); err != nil {
		return Outline{}, err
	}
	pts := make([]r2.Vec, len(af.Points))
	for i, p := range af.Points {
		pts[i] = r2.Scale(chord, p)
	}
	return Outline{Name: fmt.Sprintf("%s %g", af.Name, chord), Points: pts, Closed: true}, nil
}

// PolygonOutline returns the closed outline of p.
func PolygonOutline(name string, p *csg.Polygon) (Outline, error) {
	if err := csg.Validate2(p); err != nil {
		return Outline{}, err
	}
	return Outline{Name: name, Points: append([]r2.Vec(nil), p.Points...), Closed: true}, nil
}

// Translate returns a copy of o moved by v.
func (o Outline) Translate(v r2.Vec) Outline {
	pts := make([]r2.Vec, len(o.Points))
	for i, p := range o.Points {
		pts[i] = r2.Add(p, v)
	}
	o.Points = pts
	return o
}

// Bounds returns the extent of the outline points.
func (o Outline) Bounds() r2.Box {
	if len(o.Points) == 0 {
		return r2.Box{}
	}
	set := d2.Set(o.Points)
	return r2.Box{Min: set.Min(), Max: set.Max()}
}

// Stack lays outlines out along y, spacing apart, in the given order.
func Stack(spacing float64, outlines ...Outline) []Outline {
	result := make([]Outline, 0, len(outlines))
	var y float64
	for i, o := range outlines {
		bb := o.Bounds()
		if i > 0 {
			y += spacing
		}
		result = append(result, o.Translate(r2.Vec{Y: y - bb.Min.Y}))
		y += bb.Max.Y - bb.Min.Y
	}
	return result
}

// WriteDXF saves outlines as lightweight polylines to a DXF file at path.
// Each outline goes on a layer named after it.
func WriteDXF(path string, outlines ...Outline) error {
	if len(outlines) == 0 {
		return errors.New("no outlines to write")
	}
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	layers := make(map[string]bool)
	for _, o := range outlines {
		if len(o.Points) < 2 {
			return fmt.Errorf("outline %q has %d points", o.Name, len(o.Points))
		}
		name := layerName(o.Name)
		if !layers[name] {
			d.AddLayer(name, color.Red, dxf.DefaultLineType, true)
			layers[name] = true
		}
		d.ChangeLayer(name)
		lwp := entity.NewLwPolyline(len(o.Points))
		for j, p := range o.Points {
			lwp.Vertices[j] = []float64{p.X, p.Y}
		}
		if o.Closed {
			lwp.Close()
		}
		d.AddEntity(lwp)
	}
	return d.SaveAs(path)
}

// SavePlot draws outlines on a single plot and saves it to path. The
// image format is chosen by the file extension (png, svg, pdf, ...).
func SavePlot(path, title string, outlines ...Outline) error {
	if len(outlines) == 0 {
		return errors.New("no outlines to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"
	p.Add(plotter.NewGrid())
	var bb r2.Box
	for i, o := range outlines {
		pts := make(plotter.XYs, 0, len(o.Points)+1)
		for _, v := range o.Points {
			pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
		}
		if o.Closed && len(o.Points) > 0 {
			pts = append(pts, plotter.XY{X: o.Points[0].X, Y: o.Points[0].Y})
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("outline %q: %w", o.Name, err)
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(o.Name, l)
		if i == 0 {
			bb = o.Bounds()
		} else {
			bb = r2.Box(d2.Box(bb).Extend(d2.Box(o.Bounds())))
		}
	}
	// Equal axis scale so templates print true to shape.
	size := r2.Sub(bb.Max, bb.Min)
	side := max(size.X, size.Y)
	p.X.Min, p.X.Max = bb.Min.X, bb.Min.X+side
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Min.Y+side
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// layerName replaces characters DXF does not accept in layer names.
func layerName(name string) string {
	if name == "" {
		return "0"
	}
	b := []byte(name)
	for i, c := range b {
		switch c {
		case ' ', '.', '<', '>', '/', '\\', '"', ':', ';', '?', '*', '|', ',', '=', '`':
			b[i] = '_'
		}
	}
	return string(b)
}
