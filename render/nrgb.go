package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kovidgoyal/pigments/colorconv"
)

var _ = fmt.Print

// NRGB is an opaque in-memory image whose At method returns colorconv.Swatch
// values. Mixed pigment colors are always opaque so there is no alpha channel.
type NRGB struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

func swatch_model(c color.Color) color.Color {
	if _, ok := c.(colorconv.Swatch); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
		return colorconv.Swatch{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	case 0:
		return colorconv.Swatch{}
	default:
		// un-premultiply
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
		return colorconv.Swatch{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	}
}

var SwatchModel color.Model = color.ModelFunc(swatch_model)

func (p *NRGB) ColorModel() color.Model { return SwatchModel }

func (p *NRGB) Bounds() image.Rectangle { return p.Rect }

func (p *NRGB) At(x, y int) color.Color {
	return p.SwatchAt(x, y)
}

func (p *NRGB) SwatchAt(x, y int) colorconv.Swatch {
	if !(image.Point{x, y}.In(p.Rect)) {
		return colorconv.Swatch{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small cap improves performance, see https://golang.org/issue/27857
	return colorconv.Swatch{R: s[0], G: s[1], B: s[2]}
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *NRGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *NRGB) Set(x, y int, c color.Color) {
	p.SetSwatch(x, y, SwatchModel.Convert(c).(colorconv.Swatch))
}

func (p *NRGB) SetSwatch(x, y int, c colorconv.Swatch) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small cap improves performance, see https://golang.org/issue/27857
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// Fill paints every pixel of r that lies inside the image with c.
func (p *NRGB) Fill(r image.Rectangle, c colorconv.Swatch) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.Pix[p.PixOffset(r.Min.X, y):p.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 3 {
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
	}
}

// Disc paints the pixels whose centers lie within radius of (cx, cy).
func (p *NRGB) Disc(cx, cy, radius float64, c colorconv.Swatch) {
	r := image.Rect(int(cx-radius)-1, int(cy-radius)-1, int(cx+radius)+2, int(cy+radius)+2).Intersect(p.Rect)
	r2 := radius * radius
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				p.SetSwatch(x, y, c)
			}
		}
	}
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *NRGB) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	// If r1 and r2 are Rectangles, r1.Intersect(r2) is not guaranteed to be inside
	// either r1 or r2 if the intersection is empty. Without explicitly checking for
	// this, the Pix[i:] expression below can panic.
	if r.Empty() {
		return &NRGB{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &NRGB{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

func (p *NRGB) Opaque() bool { return true }

func NewNRGB(r image.Rectangle) *NRGB {
	return &NRGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}
