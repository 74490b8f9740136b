// Package gamut enumerates the colors reachable by mixing two to four
// pigments, by sampling a discretized simplex of mixing proportions.
package gamut

import (
	"context"
	"fmt"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/pigments/colorconv"
	"github.com/kovidgoyal/pigments/pipeline"
	"github.com/kovidgoyal/pigments/spectral"
	"seehuhn.de/go/geom/vec"
)

var _ = fmt.Print

// Point is a single mixture in a gamut. If computing its color failed Err is
// set and the color fields are zero.
type Point struct {
	Index        int
	Proportions  []float64
	XYZ          colorconv.XYZ
	RGB          colorconv.RGB
	Chromaticity vec.Vec2
	Err          error
}

func (p Point) Swatch() colorconv.Swatch { return colorconv.NewSwatch(p.RGB) }

// Sample computes the color of every mixture enumerated by Proportions for
// the specified pigments. Points are computed concurrently using the worker
// count of the pipeline, the result is in enumeration order. A failure of an
// individual point is recorded in that point and does not stop the others.
// The returned error is non-nil only for an unsupported number of pigments,
// an invalid resolution or a cancelled context.
func Sample(ctx context.Context, p *pipeline.Pipeline, pigments []*spectral.Pigment, resolution int) ([]Point, error) {
	props, err := Proportions(len(pigments), resolution)
	if err != nil {
		return nil, err
	}
	ans := make([]Point, len(props))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			if ctx.Err() != nil {
				return
			}
			pt := &ans[i]
			pt.Index, pt.Proportions = i, props[i]
			r, err := p.Mix(pigments, props[i])
			if err != nil {
				pt.Err = err
				continue
			}
			pt.XYZ, pt.RGB, pt.Chromaticity = r.XYZ, r.RGB, r.Chromaticity
		}
	}
	if err = parallel.Run_in_parallel_over_range(p.Workers(), f, 0, len(props)); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return ans, nil
}

// SampleNamed is like Sample but looks up the pigments by name in the table
// of the pipeline.
func SampleNamed(ctx context.Context, p *pipeline.Pipeline, names []string, resolution int) ([]Point, error) {
	pigments, err := p.Table().PigmentsNamed(names...)
	if err != nil {
		return nil, err
	}
	return Sample(ctx, p, pigments, resolution)
}

// Failed returns the points whose computation failed.
func Failed(points []Point) (ans []Point) {
	for _, p := range points {
		if p.Err != nil {
			ans = append(ans, p)
		}
	}
	return
}
