package colorconv

import (
	"sync"

	"github.com/kovidgoyal/pigments/types"
)

func build_8bit_to_linear(decode func(float64) float64) (ans [256]float64) {
	for i := range ans {
		ans[i] = decode(float64(i) / 255)
	}
	return
}

var srgb8_to_linear = sync.OnceValue(func() [256]float64 {
	return build_8bit_to_linear(func(c float64) float64 { return Decode(c, types.GammaSRGB) })
})
var simple8_to_linear = sync.OnceValue(func() [256]float64 {
	return build_8bit_to_linear(func(c float64) float64 { return Decode(c, types.GammaSimple) })
})

// Linear decodes the swatch to linear light using a look-up table.
func (c Swatch) Linear(mode types.GammaMode) RGB {
	var lut [256]float64
	if mode == types.GammaSimple {
		lut = simple8_to_linear()
	} else {
		lut = srgb8_to_linear()
	}
	return RGB{lut[c.R], lut[c.G], lut[c.B]}
}
