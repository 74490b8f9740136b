package gamut

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Ternary maps the first three proportions of a mixture to Cartesian
// coordinates inside the triangle with corners (0, 0) for the first pigment,
// (1, 0) for the second and (1/2, √3/2) for the third. Missing proportions
// count as zero. All zero proportions map to the origin.
func Ternary(proportions []float64) vec.Vec2 {
	var p [3]float64
	copy(p[:], proportions)
	sum := p[0] + p[1] + p[2]
	if sum == 0 {
		return vec.Vec2{}
	}
	return vec.Vec2{
		X: 0.5 * (2*p[1] + p[2]) / sum,
		Y: (math.Sqrt(3) / 2) * p[2] / sum,
	}
}
