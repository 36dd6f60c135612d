package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/soypat/csg"
	"github.com/soypat/csg/form2/airfoil"
	"github.com/soypat/csg/form3/obj3"
	"github.com/soypat/csg/helpers/matter"
	"github.com/soypat/csg/helpers/template"
	"github.com/soypat/csg/internal/config"
	"github.com/soypat/csg/render"
	"github.com/soypat/csg/scad"
)

type options struct {
	config  string
	airfoil string
}

// load returns the configuration selected by the command line flags.
func (o *options) load() (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		cfg, err = config.Load(o.config)
		if err != nil {
			return cfg, err
		}
	}
	if o.airfoil != "" {
		cfg.Airfoil = o.airfoil
	}
	return cfg, nil
}

func buildScene(opts *options, name string) (csg.Solid, config.Config, error) {
	cfg, err := opts.load()
	if err != nil {
		return nil, cfg, err
	}
	sc, err := findScene(name)
	if err != nil {
		return nil, cfg, err
	}
	s, err := sc.build(cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("building %s: %w", name, err)
	}
	return s, cfg, nil
}

func runSCAD(opts *options, name, out string, detail int) error {
	s, _, err := buildScene(opts, name)
	if err != nil {
		return err
	}
	f := scad.File{Detail: detail}
	f.Add(s)
	if err := f.Create(out); err != nil {
		return err
	}
	log.Printf("wrote %s to %s", name, out)
	return nil
}

func runSTL(opts *options, name, out string, cells int, material string) error {
	s, cfg, err := buildScene(opts, name)
	if err != nil {
		return err
	}
	if material == "" {
		material = cfg.Material
	}
	m, err := matter.Material(material)
	if err != nil {
		return err
	}
	s = m.Scale(s)
	start := time.Now()
	r, err := render.NewMarchingCubes(s, cells)
	if err != nil {
		return err
	}
	if err := render.CreateSTL(out, r); err != nil {
		return err
	}
	log.Printf("wrote %s to %s (material %s) in %s", name, out, m, time.Since(start).Round(time.Millisecond))
	return nil
}

func runTemplate(opts *options, out string) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	af, err := airfoil.Load(cfg.Airfoil)
	if err != nil {
		return err
	}
	root, err := template.AirfoilOutline(af, cfg.Wing.InnerLength)
	if err != nil {
		return err
	}
	tip, err := template.AirfoilOutline(af, cfg.Wing.OuterLength)
	if err != nil {
		return err
	}
	k := cfg.HingeParams()
	teeth, err := obj3.Teeth(k.Teeth, k.OuterHeight, k.OuterHeight)
	if err != nil {
		return err
	}
	teethOutline, err := template.PolygonOutline("hinge teeth", teeth)
	if err != nil {
		return err
	}
	socket, err := obj3.Teeth(k.Teeth, k.OuterHeight+obj3.ToothClearance, k.OuterHeight)
	if err != nil {
		return err
	}
	socketOutline, err := template.PolygonOutline("hinge socket", socket)
	if err != nil {
		return err
	}
	outlines := template.Stack(10, root, tip, teethOutline, socketOutline)
	if strings.EqualFold(filepath.Ext(out), ".dxf") {
		err = template.WriteDXF(out, outlines...)
	} else {
		err = template.SavePlot(out, af.Name+" templates", outlines...)
	}
	if err != nil {
		return err
	}
	log.Printf("wrote %d templates to %s", len(outlines), out)
	return nil
}
