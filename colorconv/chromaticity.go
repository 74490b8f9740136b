package colorconv

import (
	"seehuhn.de/go/geom/vec"
)

// Project returns the xy chromaticity of c. When X+Y+Z is zero the
// chromaticity is undefined and (0, 0) is returned.
func Project(c XYZ) vec.Vec2 {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return vec.Vec2{}
	}
	return vec.Vec2{X: c.X / sum, Y: c.Y / sum}
}
