package main

import (
	"fmt"
	"strings"

	"github.com/soypat/csg"
	"github.com/soypat/csg/form2/airfoil"
	"github.com/soypat/csg/form3/obj3"
	"github.com/soypat/csg/internal/config"
)

type scene struct {
	name        string
	description string
	build       func(config.Config) (csg.Solid, error)
}

var scenes = []scene{
	{"airfoil", "root profile extruded 10mm, for checking the profile file", buildAirfoil},
	{"wing", "wing with foam cavity and control surface slot", withWing((*obj3.Wing).RibShape)},
	{"exterior", "plain lofted wing", withWing((*obj3.Wing).Exterior)},
	{"ribs", "every rib laid out side by side for printing", buildRibSheet},
	{"all-ribs", "every rib in place along the span", buildAllRibs},
	{"control-surface", "control surface part", buildControlSurface},
	{"fuselage", "fuselage from plan and side outlines", buildFuselage},
	{"hinge", "comb hinge", buildHinge},
	{"hinge-mount", "hinge fit test block", buildHingeMount},
	{"plane", "both wings attached to the fuselage", buildPlane},
}

func findScene(name string) (scene, error) {
	for _, s := range scenes {
		if s.name == name {
			return s, nil
		}
	}
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.name
	}
	return scene{}, fmt.Errorf("unknown scene %q, want one of %s", name, strings.Join(names, ", "))
}

func withWing(f func(*obj3.Wing) (csg.Solid, error)) func(config.Config) (csg.Solid, error) {
	return func(cfg config.Config) (csg.Solid, error) {
		w, err := cfg.NewWing()
		if err != nil {
			return nil, err
		}
		return f(w)
	}
}

func buildAirfoil(cfg config.Config) (csg.Solid, error) {
	af, err := airfoil.Load(cfg.Airfoil)
	if err != nil {
		return nil, err
	}
	return obj3.AirfoilSlab(af, cfg.Wing.InnerLength, 10)
}

func buildRibSheet(cfg config.Config) (csg.Solid, error) {
	w, err := cfg.NewWing()
	if err != nil {
		return nil, err
	}
	r := cfg.Ribs
	return obj3.RibSheet(w, 0, r.Count, r.Thickness, r.Count, r.Spacing)
}

func buildAllRibs(cfg config.Config) (csg.Solid, error) {
	w, err := cfg.NewWing()
	if err != nil {
		return nil, err
	}
	return w.AllRibs(cfg.Ribs.Thickness, cfg.Ribs.Count)
}

func buildControlSurface(cfg config.Config) (csg.Solid, error) {
	w, err := cfg.NewWing()
	if err != nil {
		return nil, err
	}
	cs := cfg.Wing.ControlSurface
	return w.ControlSurface(cs.LengthRatio, cs.Width)
}

func buildFuselage(cfg config.Config) (csg.Solid, error) {
	return obj3.Fuselage(cfg.FuselageParams())
}

func buildHinge(cfg config.Config) (csg.Solid, error) {
	return obj3.Hinge(cfg.HingeParams())
}

func buildHingeMount(cfg config.Config) (csg.Solid, error) {
	return obj3.HingeTestMount(cfg.HingeParams())
}

func buildPlane(cfg config.Config) (csg.Solid, error) {
	w, err := cfg.NewWing()
	if err != nil {
		return nil, err
	}
	return obj3.Plane(w, cfg.FuselageParams())
}
