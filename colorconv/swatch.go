package colorconv

import (
	"fmt"
	"image/color"
	"math"
)

var _ = fmt.Print

// Swatch is an 8-bit per channel gamma encoded sRGB color, suitable for use
// in images and as a CSS style #RRGGBB string.
type Swatch struct {
	R, G, B uint8
}

var _ color.Color = Swatch{}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// NewSwatch rounds the encoded color c to 8 bits per channel.
func NewSwatch(c RGB) Swatch {
	return Swatch{to8(c.R), to8(c.G), to8(c.B)}
}

func (c Swatch) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Swatch) String() string {
	return fmt.Sprintf("Swatch{%02X %02X %02X}", c.R, c.G, c.B)
}

// RGB returns the swatch as an encoded RGB triple in [0,1].
func (c Swatch) RGB() RGB {
	return RGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func (c Swatch) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 65535 // (255 << 8 | 255)
	return
}
