package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/kettek/apng"
	"github.com/kovidgoyal/pigments/types"
)

var _ = fmt.Print

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// converts a time.Duration to a numerator and denominator of type uint16.
// It finds the best rational approximation of the duration in seconds.
func as_fraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}
	val := d.Seconds()
	// continued fraction convergents, stopping once either term overflows
	best_num, best_den := uint16(0), uint16(1)
	best_err := math.Abs(val)
	var h, k [3]int64
	h[0], k[0] = 0, 1
	h[1], k[1] = 1, 0
	f := val
	for range 100 {
		a := int64(f)
		h[2] = a*h[1] + h[0]
		k[2] = a*k[1] + k[0]
		if h[2] > math.MaxUint16 || k[2] > math.MaxUint16 {
			break
		}
		cn, cd := uint16(h[2]), uint16(k[2])
		if e := math.Abs(val - float64(cn)/float64(cd)); e < best_err {
			best_err, best_num, best_den = e, cn, cd
		}
		if f == float64(a) {
			break
		}
		f = 1.0 / (f - float64(a))
		h[0], h[1] = h[1], h[2]
		k[0], k[1] = k[1], k[2]
	}
	return best_num, best_den
}

func (m *Movie) as_apng() (ans apng.APNG) {
	ans.LoopCount = m.LoopCount
	num, den := as_fraction(m.Delay)
	for _, f := range m.Frames {
		// every frame covers the whole canvas so no compositing is needed
		ans.Frames = append(ans.Frames, apng.Frame{
			Image: f, DisposeOp: apng.DISPOSE_OP_BACKGROUND, BlendOp: apng.BLEND_OP_SOURCE,
			DelayNumerator: num, DelayDenominator: den,
		})
	}
	return
}

// EncodeAPNG writes the movie as an animated PNG. A movie with a single frame
// is written as a plain PNG.
func EncodeAPNG(w io.Writer, m *Movie) error {
	switch len(m.Frames) {
	case 0:
		return fmt.Errorf("cannot encode an animation with no frames: %w", types.ErrInvalidInput)
	case 1:
		return EncodePNG(w, m.Frames[0])
	}
	b := m.Frames[0].Bounds()
	for i, f := range m.Frames[1:] {
		if f.Bounds() != b {
			return fmt.Errorf("frame %d has bounds %v, expected %v: %w", i+2, f.Bounds(), b, types.ErrShapeMismatch)
		}
	}
	return apng.Encode(w, m.as_apng())
}
