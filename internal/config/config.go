// Package config loads airframe parameter files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/soypat/csg/form2/airfoil"
	"github.com/soypat/csg/form3/obj3"
	"gopkg.in/yaml.v3"
)

// DefaultAirfoil is the profile path used when a file does not name one.
const DefaultAirfoil = "airfoils/naca2412.dat"

// Config holds every part parameter. Fields missing from a parameter file
// keep their default values.
type Config struct {
	Airfoil  string   `yaml:"airfoil"`
	Material string   `yaml:"material"`
	Wing     Wing     `yaml:"wing"`
	Ribs     Ribs     `yaml:"ribs"`
	Fuselage Fuselage `yaml:"fuselage"`
	Hinge    Hinge    `yaml:"hinge"`
}

type Wing struct {
	InnerLength      float64        `yaml:"inner_length"`
	OuterLength      float64        `yaml:"outer_length"`
	Wingspan         float64        `yaml:"wingspan"`
	SparRadius       float64        `yaml:"spar_radius"`
	ExtrudeThickness float64        `yaml:"extrude_thickness"`
	Foam             Foam           `yaml:"foam"`
	ControlSurface   ControlSurface `yaml:"control_surface"`
}

type Foam struct {
	ShapeOffset   float64 `yaml:"shape_offset"`
	FrontStop     float64 `yaml:"front_stop"`
	UpperBackStop float64 `yaml:"upper_back_stop"`
	LowerBackStop float64 `yaml:"lower_back_stop"`
}

type ControlSurface struct {
	StartRatio float64 `yaml:"start_ratio"`
	EndRatio   float64 `yaml:"end_ratio"`
	Width      float64 `yaml:"width"`
	// LengthRatio is the fraction of the span covered by the printed
	// control surface part.
	LengthRatio float64 `yaml:"length_ratio"`
}

// Ribs selects how the wing is sliced for printing.
type Ribs struct {
	Thickness float64 `yaml:"thickness"`
	Count     int     `yaml:"count"`
	Spacing   float64 `yaml:"spacing"`
}

type Fuselage struct {
	Length     float64 `yaml:"length"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	BackWidth  float64 `yaml:"back_width"`
	BackHeight float64 `yaml:"back_height"`
	WingStart  float64 `yaml:"wing_start"`
	NoseRadius float64 `yaml:"nose_radius"`
	OverLength float64 `yaml:"over_length"`
}

type Hinge struct {
	Teeth       int     `yaml:"teeth"`
	OuterHeight float64 `yaml:"outer_height"`
	Thickness   float64 `yaml:"thickness"`
}

// Default returns the configuration of the reference airframe.
func Default() Config {
	w := obj3.DefaultWingParams(airfoil.Airfoil{})
	f := obj3.DefaultFuselageParams()
	h := obj3.DefaultHingeParams()
	return Config{
		Airfoil: DefaultAirfoil,
		Wing: Wing{
			InnerLength:      w.InnerLength,
			OuterLength:      w.OuterLength,
			Wingspan:         w.Wingspan,
			SparRadius:       w.SparRadius,
			ExtrudeThickness: w.ExtrudeThickness,
			Foam:             Foam(w.Foam),
			ControlSurface: ControlSurface{
				StartRatio:  w.ControlSurface.StartRatio,
				EndRatio:    w.ControlSurface.EndRatio,
				Width:       w.ControlSurface.Width,
				LengthRatio: 0.45,
			},
		},
		Ribs:     Ribs{Thickness: 5, Count: 8, Spacing: obj3.RibSheetSpacing},
		Fuselage: Fuselage(f),
		Hinge:    Hinge(h),
	}
}

// Load reads a parameter file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML parameters on top of the defaults. Unknown keys are
// rejected so misspelled parameters do not silently keep their default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, nil
}

// WingParams returns the wing parameters for af.
func (c Config) WingParams(af airfoil.Airfoil) obj3.WingParams {
	return obj3.WingParams{
		InnerLength:      c.Wing.InnerLength,
		OuterLength:      c.Wing.OuterLength,
		Wingspan:         c.Wing.Wingspan,
		SparRadius:       c.Wing.SparRadius,
		ExtrudeThickness: c.Wing.ExtrudeThickness,
		Airfoil:          af,
		Foam:             obj3.FoamParams(c.Wing.Foam),
		ControlSurface: obj3.ControlSurfaceParams{
			StartRatio: c.Wing.ControlSurface.StartRatio,
			EndRatio:   c.Wing.ControlSurface.EndRatio,
			Width:      c.Wing.ControlSurface.Width,
		},
	}
}

// NewWing loads the configured airfoil and builds the wing.
func (c Config) NewWing() (*obj3.Wing, error) {
	af, err := airfoil.Load(c.Airfoil)
	if err != nil {
		return nil, err
	}
	return obj3.NewWing(c.WingParams(af))
}

func (c Config) FuselageParams() obj3.FuselageParams { return obj3.FuselageParams(c.Fuselage) }

func (c Config) HingeParams() obj3.HingeParams { return obj3.HingeParams(c.Hinge) }
