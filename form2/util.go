package form2

import "math"

const (
	sqrtHalf = 0.7071067811865476
)

func sign(f float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Copysign(1, f)
}
