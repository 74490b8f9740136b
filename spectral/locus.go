package spectral

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/pigments/colorconv"
	"github.com/kovidgoyal/pigments/types"
	"seehuhn.de/go/geom/vec"
)

// sampled_value linearly interpolates vals, sampled on the uniform grid of t,
// at wavelength wl. Outside the grid the value is zero.
func (t *Table) sampled_value(vals []float64, wl float64) float64 {
	idx := (wl - t.wavelengths[0]) / t.step
	last := float64(len(vals) - 1)
	if idx < -1e-9 || idx > last+1e-9 || math.IsNaN(idx) {
		return 0
	}
	idx = max(0, min(idx, last))
	lof := math.Floor(idx)
	lo := int(lof)
	if lof == idx || lo+1 >= len(vals) {
		return vals[lo]
	}
	p := idx - lof
	return vals[lo] + p*(vals[lo+1]-vals[lo])
}

// Locus returns the chromaticities of n monochromatic stimuli evenly spaced
// over the wavelength range of the table, weighted by its illuminant. These
// trace the boundary of the chromaticity diagram for plotting.
func Locus(t *Table, n int) ([]vec.Vec2, error) {
	if n < 2 {
		return nil, fmt.Errorf("locus needs at least two points, got %d: %w", n, types.ErrInvalidInput)
	}
	first, last := t.wavelengths[0], t.wavelengths[len(t.wavelengths)-1]
	ans := make([]vec.Vec2, n)
	for i := range ans {
		wl := first + (last-first)*float64(i)/float64(n-1)
		p := t.sampled_value(t.power, wl)
		ans[i] = colorconv.Project(colorconv.XYZ{
			X: p * t.sampled_value(t.xbar, wl),
			Y: p * t.sampled_value(t.ybar, wl),
			Z: p * t.sampled_value(t.zbar, wl),
		})
	}
	return ans, nil
}
