package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/csg/form3/obj3"
)

func TestDefaultMatchesParts(t *testing.T) {
	cfg := Default()
	if got, want := cfg.FuselageParams(), obj3.DefaultFuselageParams(); got != want {
		t.Errorf("got fuselage %+v. want %+v", got, want)
	}
	if got, want := cfg.HingeParams(), obj3.DefaultHingeParams(); got != want {
		t.Errorf("got hinge %+v. want %+v", got, want)
	}
	w := cfg.WingParams(testAirfoil())
	want := obj3.DefaultWingParams(testAirfoil())
	if w.Foam != want.Foam || w.ControlSurface != want.ControlSurface || w.Wingspan != want.Wingspan {
		t.Errorf("got wing %+v. want %+v", w, want)
	}
}

func TestParse(t *testing.T) {
	const doc = `
airfoil: foo.dat
material: pla
wing:
  wingspan: 400
  foam:
    front_stop: 12
hinge:
  teeth: 3
`
	cfg, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	for _, test := range []struct {
		name      string
		got, want any
	}{
		{"airfoil", cfg.Airfoil, "foo.dat"},
		{"material", cfg.Material, "pla"},
		{"wingspan", cfg.Wing.Wingspan, 400.0},
		{"front stop", cfg.Wing.Foam.FrontStop, 12.0},
		{"upper back stop", cfg.Wing.Foam.UpperBackStop, def.Wing.Foam.UpperBackStop},
		{"inner length", cfg.Wing.InnerLength, def.Wing.InnerLength},
		{"teeth", cfg.Hinge.Teeth, 3},
		{"hinge thickness", cfg.Hinge.Thickness, def.Hinge.Thickness},
		{"fuselage", cfg.Fuselage, def.Fuselage},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v. want defaults", cfg)
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("wing:\n  wingspam: 300\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.yaml")
	if err := os.WriteFile(path, []byte("ribs:\n  count: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ribs.Count != 4 || cfg.Ribs.Thickness != 5 {
		t.Errorf("got ribs %+v. want count 4 thickness 5", cfg.Ribs)
	}
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v. want not exist error", err)
	}
}

func TestNewWing(t *testing.T) {
	cfg := Default()
	cfg.Airfoil = "../../form2/airfoil/testdata/naca2412.dat"
	w, err := cfg.NewWing()
	if err != nil {
		t.Fatal(err)
	}
	if got := w.Params().InnerLength; got != 140 {
		t.Errorf("got inner length %g. want 140", got)
	}
	cfg.Airfoil = "missing.dat"
	if _, err := cfg.NewWing(); err == nil {
		t.Error("expected error for missing airfoil")
	}
}
