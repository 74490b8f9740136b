// Package render draws sampled gamuts as images: a strip for two pigments, a
// ternary plot for three and an animated sequence of ternary plots for four,
// one frame per proportion of the fourth pigment.
package render

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/kovidgoyal/pigments/colorconv"
	"github.com/kovidgoyal/pigments/gamut"
	"github.com/kovidgoyal/pigments/types"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/vec"
)

var _ = fmt.Print

// Background is the color of canvas pixels not covered by any sample.
var Background = colorconv.Swatch{R: 0xff, G: 0xff, B: 0xff}

var half_sqrt3 = math.Sqrt(3) / 2

// Strip paints each sample as a cell×cell square, left to right in sample
// order. Failed samples are left as Background.
func Strip(points []gamut.Point, cell int) (*NRGB, error) {
	if cell < 1 || len(points) == 0 {
		return nil, fmt.Errorf("cannot draw a strip of %d samples with cell size %d: %w", len(points), cell, types.ErrInvalidInput)
	}
	img := NewNRGB(image.Rect(0, 0, cell*len(points), cell))
	img.Fill(img.Rect, Background)
	for i, pt := range points {
		if pt.Err == nil {
			img.Fill(image.Rect(i*cell, 0, (i+1)*cell, cell), pt.Swatch())
		}
	}
	return img, nil
}

type triangle struct {
	pad, side float64
	bounds    image.Rectangle
}

func new_triangle(size, dot int) (ans triangle, err error) {
	if dot < 1 || size <= 2*dot {
		return ans, fmt.Errorf("a canvas of width %d cannot hold dots of radius %d: %w", size, dot, types.ErrInvalidInput)
	}
	ans.pad = float64(dot)
	ans.side = float64(size - 2*dot)
	ans.bounds = image.Rect(0, 0, size, int(math.Ceil(ans.side*half_sqrt3))+2*dot)
	return
}

// position of v in image coordinates, the first pigment is bottom left and
// the third is at the top
func (t triangle) position(v vec.Vec2) (x, y float64) {
	return t.pad + v.X*t.side, t.pad + (half_sqrt3-v.Y)*t.side
}

func (t triangle) plot(points []gamut.Point, dot int, proportions func(gamut.Point) []float64) *NRGB {
	img := NewNRGB(t.bounds)
	img.Fill(img.Rect, Background)
	for _, pt := range points {
		if pt.Err != nil {
			continue
		}
		x, y := t.position(gamut.Ternary(proportions(pt)))
		img.Disc(x, y, float64(dot), pt.Swatch())
	}
	return img
}

// Ternary plots each sample as a disc of radius dot at the ternary position of
// its first three proportions. The canvas is size pixels wide and tall enough
// to hold the equilateral triangle.
func Ternary(points []gamut.Point, size, dot int) (*NRGB, error) {
	t, err := new_triangle(size, dot)
	if err != nil {
		return nil, err
	}
	return t.plot(points, dot, func(p gamut.Point) []float64 { return p.Proportions }), nil
}

// Movie is a sequence of equally sized frames shown in order.
type Movie struct {
	Frames    []*NRGB
	Delay     time.Duration
	LoopCount uint // 0 means loop forever, 1 means loop once, ...
}

// Animation draws the samples of a four pigment gamut sampled at resolution
// as one ternary plot per level of the fourth proportion, starting with the
// level where the fourth pigment is absent. Within a frame the first three
// proportions are renormalized. The frame where the fourth pigment is pure has
// a single sample which is drawn at the centroid.
func Animation(points []gamut.Point, resolution, size, dot int, delay time.Duration) (*Movie, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("resolution %d is less than two: %w", resolution, types.ErrInvalidInput)
	}
	t, err := new_triangle(size, dot)
	if err != nil {
		return nil, err
	}
	levels := make([][]gamut.Point, resolution)
	steps := float64(resolution - 1)
	for _, pt := range points {
		if len(pt.Proportions) != 4 {
			return nil, fmt.Errorf("sample %d has %d proportions, animations need four: %w", pt.Index, len(pt.Proportions), types.ErrUnsupportedArity)
		}
		l := int(math.Round(pt.Proportions[3] * steps))
		if l < 0 || l >= resolution {
			return nil, fmt.Errorf("sample %d has proportion %v outside [0,1]: %w", pt.Index, pt.Proportions[3], types.ErrInvalidInput)
		}
		levels[l] = append(levels[l], pt)
	}
	centroid := []float64{1, 1, 1}
	first_three := func(p gamut.Point) []float64 {
		if p.Proportions[0]+p.Proportions[1]+p.Proportions[2] == 0 {
			return centroid
		}
		return p.Proportions[:3]
	}
	ans := Movie{Delay: delay, Frames: make([]*NRGB, resolution)}
	for i, level := range levels {
		ans.Frames[i] = t.plot(level, dot, first_three)
	}
	return &ans, nil
}

// Scale enlarges img by an integer factor using nearest neighbor sampling so
// that swatch edges stay sharp.
func Scale(img image.Image, factor int) (*NRGB, error) {
	if factor < 1 {
		return nil, fmt.Errorf("scale factor %d is less than one: %w", factor, types.ErrInvalidInput)
	}
	b := img.Bounds()
	ans := NewNRGB(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(ans, ans.Rect, img, b, draw.Src, nil)
	return ans, nil
}
