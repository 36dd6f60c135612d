// Package matter compensates part dimensions for the material they are
// printed in.
package matter

import (
	"fmt"
	"strings"

	"github.com/soypat/csg"
	"github.com/soypat/csg/internal/d3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{name: "pla", shrink: 0.2e-2} // 0.2% shrinkage
	// PETG shrinks slightly more than PLA once cooled.
	PETG = ViscousMaterial{name: "petg", shrink: 0.4e-2}
)

type ViscousMaterial struct {
	name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
}

// Material returns the printing material with the given name. The empty
// string and "none" return a material with no shrinkage.
func Material(name string) (ViscousMaterial, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return ViscousMaterial{name: "none"}, nil
	case PLA.name:
		return PLA, nil
	case PETG.name:
		return PETG, nil
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

func (m ViscousMaterial) String() string { return m.name }

// ScaleFactor is the uniform scale that makes a part reach its nominal
// size once it has shrunk.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}

// Scale scales s up to compensate shrinkage. Materials that do not shrink
// return s unchanged.
func (m ViscousMaterial) Scale(s csg.Solid) csg.Solid {
	if m.shrink == 0 {
		return s
	}
	return csg.Scale3D(s, d3.Elem(m.ScaleFactor()))
}
