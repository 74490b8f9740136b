package colorconv

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/pigments/types"
)

// MixAdditive mixes gamma encoded colors the way light mixes: each color is
// decoded to linear light, averaged with the normalized weights and encoded
// again. This is what naive RGB blending of paint swatches gives and is
// useful as a contrast to Kubelka-Munk mixing.
func MixAdditive(colors []RGB, weights []float64, mode types.GammaMode) (ans RGB, err error) {
	if len(colors) == 0 || len(colors) != len(weights) {
		return ans, fmt.Errorf("cannot mix %d colors with %d weights: %w", len(colors), len(weights), types.ErrInvalidInput)
	}
	total := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return ans, fmt.Errorf("weight %v is not a finite non-negative number: %w", w, types.ErrInvalidInput)
		}
		total += w
	}
	if total == 0 {
		return ans, fmt.Errorf("weights sum to zero: %w", types.ErrInvalidInput)
	}
	var lin RGB
	for i, c := range colors {
		w := weights[i] / total
		l := c.Linear(mode)
		lin.R += w * l.R
		lin.G += w * l.G
		lin.B += w * l.B
	}
	return EncodeLinear(lin, mode), nil
}
