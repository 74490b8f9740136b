// Package km implements Kubelka-Munk subtractive mixing: the absorption (K)
// and scattering (S) coefficients of pigments are mixed linearly by
// proportion and the reflectance of an infinitely thick layer of the mixture
// is recovered from the K/S ratio.
package km

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/pigments/spectral"
	"github.com/kovidgoyal/pigments/types"
)

var _ = fmt.Print

// Normalize returns proportions scaled to sum to one. The proportions must be
// finite and non-negative with a positive sum.
func Normalize(proportions []float64) ([]float64, error) {
	if len(proportions) == 0 {
		return nil, fmt.Errorf("no proportions: %w", types.ErrInvalidInput)
	}
	total := 0.0
	for _, p := range proportions {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("proportion %v is not a finite non-negative number: %w", p, types.ErrInvalidInput)
		}
		total += p
	}
	if total == 0 {
		return nil, fmt.Errorf("degenerate proportions, they sum to zero: %w", types.ErrInvalidInput)
	}
	ans := make([]float64, len(proportions))
	for i, p := range proportions {
		ans[i] = p / total
	}
	return ans, nil
}

// ReflectanceFromRatio applies the Kubelka-Munk inversion for an infinitely
// thick layer:
//
//	R = 1 + r - sqrt(r(r+2))
//
// where r is the K/S ratio. Negative ratios are clamped to zero, an infinite
// or NaN ratio gives zero reflectance and the result is clamped to [0,1].
func ReflectanceFromRatio(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 1) {
		return 0
	}
	r = max(0, r)
	q := math.Sqrt(r * (r + 2))
	// (1 + r - q)(1 + r + q) == 1, the reciprocal form does not cancel
	// catastrophically for large r
	return clamp01(1 / (1 + r + q))
}

// Ratio returns K/S. Where the scattering is zero the ratio is +Inf, so
// that the pigment reflects nothing at that wavelength, regardless of K.
func Ratio(k, s float64) float64 {
	if s == 0 {
		return math.Inf(1)
	}
	return k / s
}

// Mix computes the reflectance curve of a mixture of pigments in the given
// proportions, which are normalized by their sum. All pigments must be
// sampled on the same grid.
func Mix(pigments []*spectral.Pigment, proportions []float64) (spectral.Curve, error) {
	if len(pigments) == 0 || len(pigments) != len(proportions) {
		return nil, fmt.Errorf("cannot mix %d pigments with %d proportions: %w", len(pigments), len(proportions), types.ErrInvalidInput)
	}
	weights, err := Normalize(proportions)
	if err != nil {
		return nil, err
	}
	n := len(pigments[0].K)
	for _, p := range pigments {
		if len(p.K) != n || len(p.S) != n {
			return nil, fmt.Errorf("pigment %q has %d/%d K/S samples, expected %d: %w", p.Key, len(p.K), len(p.S), n, types.ErrShapeMismatch)
		}
	}
	ans := make(spectral.Curve, n)
	for i := range ans {
		var k, s float64
		for j, p := range pigments {
			k += weights[j] * p.K[i]
			s += weights[j] * p.S[i]
		}
		ans[i] = ReflectanceFromRatio(Ratio(k, s))
	}
	return ans, nil
}

// Reflectance is the reflectance curve of a single unmixed pigment.
func Reflectance(p *spectral.Pigment) (spectral.Curve, error) {
	return Mix([]*spectral.Pigment{p}, []float64{1})
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}
