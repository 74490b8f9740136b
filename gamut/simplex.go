package gamut

import (
	"fmt"

	"github.com/kovidgoyal/pigments/types"
)

var _ = fmt.Print

// Count returns the number of points Proportions generates.
func Count(num_pigments, resolution int) int {
	r := resolution
	switch num_pigments {
	case 2:
		return r
	case 3:
		return r * (r + 1) / 2
	case 4:
		return r * (r + 1) * (r + 2) / 6
	}
	return 0
}

func check(num_pigments, resolution int) error {
	if num_pigments < 2 || num_pigments > 4 {
		return fmt.Errorf("gamut of %d pigments: %w", num_pigments, types.ErrUnsupportedArity)
	}
	if resolution < 2 {
		return fmt.Errorf("gamut resolution must be at least 2, not %d: %w", resolution, types.ErrInvalidInput)
	}
	return nil
}

// Proportions enumerates the mixing proportions of a discretized simplex in
// a fixed order. The grid has resolution steps along each edge, that is every
// proportion is a multiple of 1/(resolution-1).
//
// For two pigments the first proportion sweeps from 0 to 1. For three
// pigments the points are (i, j, k)/(resolution-1) with i+j+k ==
// resolution-1, i in the outer loop and j in the inner loop. For four
// pigments the first three proportions each step over the grid, i outermost,
// points with a sum above one are skipped and the fourth proportion takes up
// the remainder.
func Proportions(num_pigments, resolution int) ([][]float64, error) {
	if err := check(num_pigments, resolution); err != nil {
		return nil, err
	}
	steps := resolution - 1
	d := float64(steps)
	ans := make([][]float64, 0, Count(num_pigments, resolution))
	switch num_pigments {
	case 2:
		for i := range resolution {
			ans = append(ans, []float64{float64(i) / d, float64(steps-i) / d})
		}
	case 3:
		for i := range resolution {
			for j := range resolution - i {
				k := steps - i - j
				ans = append(ans, []float64{float64(i) / d, float64(j) / d, float64(k) / d})
			}
		}
	case 4:
		for i := range resolution {
			for j := range resolution {
				for k := range resolution {
					if i+j+k > steps {
						continue
					}
					l := steps - i - j - k
					ans = append(ans, []float64{float64(i) / d, float64(j) / d, float64(k) / d, float64(l) / d})
				}
			}
		}
	}
	return ans, nil
}
