package km

import (
	"fmt"

	"github.com/kovidgoyal/pigments/spectral"
	"github.com/kovidgoyal/pigments/types"
)

// Saunderson is the surface reflection correction applied to a Kubelka-Munk
// reflectance curve:
//
//	R' = (1-K1)(1-K2)R / (1-K2 R)
//
// K1 is the fraction of incident light lost to external specular reflection
// and K2 the fraction of light internally reflected back at the surface.
type Saunderson struct {
	K1, K2 float64
}

func (s Saunderson) String() string {
	return fmt.Sprintf("Saunderson{k1: %v k2: %v}", s.K1, s.K2)
}

// Validate checks that both coefficients are in [0,1).
func (s Saunderson) Validate() error {
	if !(s.K1 >= 0 && s.K1 < 1) || !(s.K2 >= 0 && s.K2 < 1) {
		return fmt.Errorf("%s coefficients must be in [0,1): %w", s, types.ErrInvalidInput)
	}
	return nil
}

func (s Saunderson) Correct(r float64) float64 {
	return clamp01((1 - s.K1) * (1 - s.K2) * r / (1 - s.K2*r))
}

// Apply returns a corrected copy of curve.
func (s Saunderson) Apply(curve spectral.Curve) (spectral.Curve, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ans := make(spectral.Curve, len(curve))
	for i, r := range curve {
		ans[i] = s.Correct(r)
	}
	return ans, nil
}
