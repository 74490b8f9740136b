// Package pipeline turns pigments and mixing proportions into colors: the
// Kubelka-Munk reflectance of the mixture is integrated against the color
// matching functions and illuminant of a spectral table and encoded as sRGB.
package pipeline

import (
	"fmt"
	"runtime"

	"github.com/kovidgoyal/pigments/colorconv"
	"github.com/kovidgoyal/pigments/km"
	"github.com/kovidgoyal/pigments/spectral"
	"github.com/kovidgoyal/pigments/types"
	"seehuhn.de/go/geom/vec"
)

var _ = fmt.Print

type config struct {
	gamma      types.GammaMode
	saunderson *km.Saunderson
	workers    int
}

// Option sets an optional parameter for New.
type Option func(*config)

// Gamma returns an Option that sets the transfer function used to encode
// colors. Defaults to types.GammaSRGB.
func Gamma(mode types.GammaMode) Option {
	return func(c *config) {
		c.gamma = mode
	}
}

// Saunderson returns an Option that enables the Saunderson surface
// correction with the specified coefficients. By default no correction is
// applied.
func Saunderson(k1, k2 float64) Option {
	return func(c *config) {
		c.saunderson = &km.Saunderson{K1: k1, K2: k2}
	}
}

// Workers returns an Option that sets the number of goroutines used for
// sweeps over many mixtures. Zero or less means the number of CPUs.
func Workers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Pipeline is immutable and safe for concurrent use.
type Pipeline struct {
	table *spectral.Table
	cfg   config
}

// Result is the color of a single mixture.
type Result struct {
	Reflectance  spectral.Curve
	XYZ          colorconv.XYZ
	Chromaticity vec.Vec2
	RGB          colorconv.RGB
}

func (r Result) Swatch() colorconv.Swatch { return colorconv.NewSwatch(r.RGB) }

func (r Result) String() string {
	return fmt.Sprintf("Result{%s XYZ: %.4f %.4f %.4f xy: %.4f %.4f}", r.Swatch().Hex(), r.XYZ.X, r.XYZ.Y, r.XYZ.Z, r.Chromaticity.X, r.Chromaticity.Y)
}

func New(t *spectral.Table, opts ...Option) (*Pipeline, error) {
	if t == nil {
		return nil, fmt.Errorf("no spectral table: %w", types.ErrInvalidInput)
	}
	p := Pipeline{table: t}
	for _, o := range opts {
		o(&p.cfg)
	}
	if p.cfg.saunderson != nil {
		if err := p.cfg.saunderson.Validate(); err != nil {
			return nil, err
		}
	}
	if p.cfg.workers <= 0 {
		p.cfg.workers = runtime.GOMAXPROCS(0)
	}
	return &p, nil
}

func (p *Pipeline) Table() *spectral.Table     { return p.table }
func (p *Pipeline) Gamma() types.GammaMode     { return p.cfg.gamma }
func (p *Pipeline) Workers() int               { return p.cfg.workers }
func (p *Pipeline) Saunderson() *km.Saunderson { return p.cfg.saunderson }

// Mix computes the color of pigments mixed in the specified proportions.
func (p *Pipeline) Mix(pigments []*spectral.Pigment, proportions []float64) (ans Result, err error) {
	if ans.Reflectance, err = km.Mix(pigments, proportions); err != nil {
		return
	}
	if s := p.cfg.saunderson; s != nil {
		if ans.Reflectance, err = s.Apply(ans.Reflectance); err != nil {
			return
		}
	}
	if ans.XYZ, err = spectral.Integrate(ans.Reflectance, p.table); err != nil {
		return
	}
	ans.Chromaticity = colorconv.Project(ans.XYZ)
	ans.RGB = colorconv.Encode(ans.XYZ, p.cfg.gamma)
	return
}

// MixNamed is like Mix but looks up pigments in the table by name.
func (p *Pipeline) MixNamed(names []string, proportions []float64) (ans Result, err error) {
	pigments, err := p.table.PigmentsNamed(names...)
	if err != nil {
		return ans, err
	}
	return p.Mix(pigments, proportions)
}

// Additive mixes the colors of the unmixed pigments as light would mix, for
// comparison with Mix.
func (p *Pipeline) Additive(pigments []*spectral.Pigment, proportions []float64) (colorconv.RGB, error) {
	colors := make([]colorconv.RGB, len(pigments))
	for i, pig := range pigments {
		r, err := p.Mix([]*spectral.Pigment{pig}, []float64{1})
		if err != nil {
			return colorconv.RGB{}, err
		}
		colors[i] = r.RGB
	}
	return colorconv.MixAdditive(colors, proportions, p.cfg.gamma)
}
