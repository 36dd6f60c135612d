package config

import (
	"github.com/soypat/csg/form2/airfoil"
	"gonum.org/v1/gonum/spatial/r2"
)

func testAirfoil() airfoil.Airfoil {
	return airfoil.Airfoil{Name: "lens", Points: []r2.Vec{{1, 0}, {0.5, 0.1}, {0, 0}, {0.5, -0.1}}}
}
