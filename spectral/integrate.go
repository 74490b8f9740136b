package spectral

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/pigments/colorconv"
	"github.com/kovidgoyal/pigments/types"
)

// Curve is a spectral reflectance curve sampled on the wavelength grid of a
// Table, each value in [0,1].
type Curve []float64

// Flat returns a curve of n samples all equal to value.
func Flat(n int, value float64) Curve {
	ans := make(Curve, n)
	for i := range ans {
		ans[i] = value
	}
	return ans
}

// Integrate computes the tristimulus value of a surface with reflectance
// curve under the illuminant of the table. The integrals are Riemann sums
// over the uniform grid, normalized so that a perfect reflector (R ≡ 1) has
// Y = 1.
func Integrate(curve Curve, t *Table) (ans colorconv.XYZ, err error) {
	if len(curve) != t.Len() {
		return ans, fmt.Errorf("reflectance curve has %d samples but the table has %d: %w", len(curve), t.Len(), types.ErrShapeMismatch)
	}
	if !(t.norm > 0) || math.IsInf(t.norm, 0) {
		return ans, fmt.Errorf("illuminant Y integral is %v: %w", t.norm, types.ErrDegenerateIlluminant)
	}
	var x, y, z float64
	for i, r := range curve {
		x += r * t.wx[i]
		y += r * t.wy[i]
		z += r * t.wz[i]
	}
	return colorconv.XYZ{X: x / t.norm, Y: y / t.norm, Z: z / t.norm}, nil
}

// WhitePoint returns the tristimulus value of the perfect reflector under the
// illuminant of the table. Y is 1 by construction.
func (t *Table) WhitePoint() (colorconv.XYZ, error) {
	return Integrate(Flat(t.Len(), 1), t)
}
