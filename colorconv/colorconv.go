package colorconv

import (
	"math"

	"github.com/kovidgoyal/pigments/types"
)

// This package converts CIE XYZ tristimulus values (Y normalized so that the
// perfect white diffuser under the working illuminant has Y = 1) into display
// ready sRGB triples, and back.
//
// Notes:
//   - The encoder never fails. Out of gamut colors are clipped: the linear
//     channels are clamped to [0,1] before companding and the companded result
//     is clamped again to absorb floating point overshoot.
//   - Two transfer functions are supported, selected by types.GammaMode. The
//     piecewise sRGB curve is the default, the simple 1/2.2 power law matches
//     older reference outputs.

type Vec3 [3]float64
type Mat3 [3][3]float64

// XYZ is a CIE 1931 tristimulus value.
type XYZ struct {
	X, Y, Z float64
}

// RGB is an sRGB triple. Depending on context the channels are either linear
// light or gamma encoded, see the individual functions.
type RGB struct {
	R, G, B float64
}

// sRGB (linear) transform matrix from CIE XYZ (D65)
var srgbFromXYZ = Mat3{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

// CIE XYZ (D65) from linear sRGB
var xyzFromLinearSRGB = Mat3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// Public API

// Encode converts XYZ to gamma encoded sRGB using the specified transfer
// function. Returned components are in [0,1].
func Encode(c XYZ, mode types.GammaMode) RGB {
	return EncodeLinear(LinearRGB(c), mode)
}

// LinearRGB converts XYZ to linear sRGB. The output is not clamped and may be
// outside the [0,1] range for colors outside the sRGB gamut.
func LinearRGB(c XYZ) RGB {
	r, g, b := mulMat3Vec(srgbFromXYZ, Vec3{c.X, c.Y, c.Z})
	return RGB{r, g, b}
}

// EncodeLinear clamps linear RGB to [0,1], applies the transfer function and
// clamps the result.
func EncodeLinear(c RGB, mode types.GammaMode) RGB {
	comp := companding(mode)
	return RGB{
		clamp01(comp(clamp01(c.R))),
		clamp01(comp(clamp01(c.G))),
		clamp01(comp(clamp01(c.B))),
	}
}

// ToXYZ converts linear sRGB to XYZ.
func ToXYZ(c RGB) XYZ {
	x, y, z := mulMat3Vec(xyzFromLinearSRGB, Vec3{c.R, c.G, c.B})
	return XYZ{x, y, z}
}

// Decode converts a gamma encoded channel value back to linear light. The
// input is clamped to [0,1] first.
func Decode(c float64, mode types.GammaMode) float64 {
	c = clamp01(c)
	if mode == types.GammaSimple {
		return math.Pow(c, 2.2)
	}
	return srgbCompToLinear(c)
}

// Linear returns the linear light version of the gamma encoded color c.
func (c RGB) Linear(mode types.GammaMode) RGB {
	return RGB{Decode(c.R, mode), Decode(c.G, mode), Decode(c.B, mode)}
}

func (c RGB) InGamut() bool { return inGamut(c.R, c.G, c.B) }

// Helpers

func companding(mode types.GammaMode) func(float64) float64 {
	if mode == types.GammaSimple {
		return linearToPowerComp
	}
	return linearToSRGBComp
}

// linearToSRGBComp applies the sRGB (gamma) companding function to a linear component.
func linearToSRGBComp(c float64) float64 {
	if c <= 0 {
		return 0.0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func linearToPowerComp(c float64) float64 {
	if c <= 0 {
		return 0
	}
	return math.Pow(c, 1.0/2.2)
}

func srgbCompToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// inGamut checks whether r,g,b are all inside [0,1] (with a small epsilon)
func inGamut(r, g, b float64) bool {
	const eps = 1e-12
	return r >= -eps && g >= -eps && b >= -eps && r <= 1+eps && g <= 1+eps && b <= 1+eps
}

// clamp01 clamps value to [0,1], NaN maps to 0
func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return max(0, min(x, 1))
}

// Matrix & vector utilities

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}
