package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/kettek/apng"
	"github.com/kovidgoyal/pigments/colorconv"
	"github.com/kovidgoyal/pigments/gamut"
	"github.com/kovidgoyal/pigments/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

var (
	red   = colorconv.Swatch{R: 0xff}
	green = colorconv.Swatch{G: 0xff}
	blue  = colorconv.Swatch{B: 0xff}
)

func point(i int, c colorconv.Swatch, proportions ...float64) gamut.Point {
	return gamut.Point{Index: i, Proportions: proportions, RGB: c.RGB()}
}

func TestStrip(t *testing.T) {
	failed := point(1, green, 0.5, 0.5)
	failed.Err = types.ErrShapeMismatch
	img, err := Strip([]gamut.Point{point(0, red, 0, 1), failed, point(2, blue, 1, 0)}, 2)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 6, 2), img.Bounds())
	for y := range 2 {
		assert.Equal(t, red, img.SwatchAt(1, y))
		assert.Equal(t, Background, img.SwatchAt(2, y))
		assert.Equal(t, Background, img.SwatchAt(3, y))
		assert.Equal(t, blue, img.SwatchAt(4, y))
		assert.Equal(t, blue, img.SwatchAt(5, y))
	}
	_, err = Strip(nil, 2)
	require.ErrorIs(t, err, types.ErrInvalidInput)
	_, err = Strip([]gamut.Point{failed}, 0)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestTernary(t *testing.T) {
	points := []gamut.Point{point(0, red, 1, 0, 0), point(1, green, 0, 1, 0), point(2, blue, 0, 0, 1)}
	img, err := Ternary(points, 101, 3)
	require.NoError(t, err)
	tri, err := new_triangle(101, 3)
	require.NoError(t, err)
	require.Equal(t, tri.bounds, img.Bounds())
	require.Equal(t, 101, img.Bounds().Dx())
	for _, pt := range points {
		x, y := tri.position(gamut.Ternary(pt.Proportions))
		assert.Equal(t, pt.Swatch(), img.SwatchAt(int(x), int(y)), "%v", pt.Proportions)
	}
	// the bottom corners are at the left and right edges, the apex at the top
	x, y := tri.position(gamut.Ternary([]float64{0, 0, 1}))
	assert.InDelta(t, 50.5, x, 1e-9)
	assert.InDelta(t, 3, y, 1e-9)
	assert.Equal(t, Background, img.SwatchAt(0, 0))
	assert.Equal(t, Background, img.SwatchAt(50, 40))

	_, err = Ternary(points, 6, 3)
	require.ErrorIs(t, err, types.ErrInvalidInput)
	_, err = Ternary(points, 100, 0)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestAnimation(t *testing.T) {
	proportions, err := gamut.Proportions(4, 3)
	require.NoError(t, err)
	colors := []colorconv.Swatch{red, green, blue}
	points := make([]gamut.Point, len(proportions))
	for i, p := range proportions {
		// color by level of the fourth pigment
		points[i] = point(i, colors[int(p[3]*2)], p...)
	}
	m, err := Animation(points, 3, 61, 2, 100*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, m.Frames, 3)
	tri, err := new_triangle(61, 2)
	require.NoError(t, err)
	for _, f := range m.Frames {
		require.Equal(t, tri.bounds, f.Bounds())
	}
	x, y := tri.position(gamut.Ternary([]float64{0, 1, 0}))
	assert.Equal(t, red, m.Frames[0].SwatchAt(int(x), int(y)))
	// (0, 0.5, 0, 0.5) renormalizes to the same corner
	assert.Equal(t, green, m.Frames[1].SwatchAt(int(x), int(y)))
	x, y = tri.position(gamut.Ternary([]float64{1, 1, 0}))
	assert.Equal(t, red, m.Frames[0].SwatchAt(int(x), int(y)))
	assert.Equal(t, Background, m.Frames[1].SwatchAt(int(x), int(y)))
	x, y = tri.position(gamut.Ternary([]float64{1, 1, 1}))
	assert.Equal(t, blue, m.Frames[2].SwatchAt(int(x), int(y)))

	_, err = Animation([]gamut.Point{point(0, red, 1, 0, 0)}, 3, 61, 2, time.Second)
	require.ErrorIs(t, err, types.ErrUnsupportedArity)
	_, err = Animation(points, 1, 61, 2, time.Second)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestScale(t *testing.T) {
	img := NewNRGB(image.Rect(0, 0, 2, 1))
	img.SetSwatch(0, 0, red)
	img.Set(1, 0, blue)
	big, err := Scale(img, 3)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 6, 3), big.Bounds())
	for y := range 3 {
		for x := range 6 {
			want := red
			if x >= 3 {
				want = blue
			}
			require.Equal(t, want, big.SwatchAt(x, y), "(%d, %d)", x, y)
		}
	}
	_, err = Scale(img, 0)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestAsFraction(t *testing.T) {
	for _, tc := range []struct {
		d        time.Duration
		num, den uint16
	}{
		{0, 0, 1},
		{-time.Second, 0, 1},
		{100 * time.Millisecond, 1, 10},
		{1500 * time.Millisecond, 3, 2},
		{2 * time.Second, 2, 1},
	} {
		num, den := as_fraction(tc.d)
		assert.Equal(t, [2]uint16{tc.num, tc.den}, [2]uint16{num, den}, "%s", tc.d)
	}
}

func TestEncode(t *testing.T) {
	img := NewNRGB(image.Rect(0, 0, 4, 3))
	img.Fill(img.Rect, green)
	img.SetSwatch(1, 2, red)
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
	assert.Equal(t, red, SwatchModel.Convert(decoded.At(1, 2)))
	assert.Equal(t, green, SwatchModel.Convert(decoded.At(3, 0)))

	other := NewNRGB(img.Rect)
	other.Fill(other.Rect, blue)
	buf.Reset()
	m := &Movie{Frames: []*NRGB{img, other, img}, Delay: 250 * time.Millisecond}
	require.NoError(t, EncodeAPNG(&buf, m))
	a, err := apng.DecodeAll(&buf)
	require.NoError(t, err)
	frames := 0
	for _, f := range a.Frames {
		if f.IsDefault {
			continue
		}
		frames++
		assert.InDelta(t, 0.25, f.GetDelay(), 1e-9)
	}
	require.Equal(t, 3, frames)

	require.ErrorIs(t, EncodeAPNG(&buf, &Movie{}), types.ErrInvalidInput)
	m.Frames[1] = NewNRGB(image.Rect(0, 0, 1, 1))
	require.ErrorIs(t, EncodeAPNG(&buf, m), types.ErrShapeMismatch)
}
