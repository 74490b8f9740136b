package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kovidgoyal/pigments/pipeline"
	"github.com/kovidgoyal/pigments/spectral"
	"github.com/kovidgoyal/pigments/types"
)

var _ = fmt.Print

type globals struct {
	table, illuminant, gamma, saunderson string
	workers                              int
	verbose                              bool

	stdout, stderr io.Writer
	start          time.Time
}

func (g *globals) flags() *flag.FlagSet {
	fs := flag.NewFlagSet("kmix", flag.ContinueOnError)
	fs.SetOutput(g.stderr)
	fs.StringVar(&g.table, "table", "", "CSV or JSON spectral table with wavelength, color matching function, illuminant and k/s pigment columns")
	fs.StringVar(&g.illuminant, "illuminant", spectral.PowerColumn, "name of the table column holding the illuminant power distribution")
	fs.StringVar(&g.gamma, "gamma", "srgb", "transfer function used to encode colors: srgb or simple")
	fs.StringVar(&g.saunderson, "saunderson", "", "apply the Saunderson surface correction with the coefficients k1,k2")
	fs.IntVar(&g.workers, "workers", 0, "number of goroutines used to sample gamuts, defaults to the number of CPUs")
	fs.BoolVar(&g.verbose, "v", false, "report progress on stderr")
	return fs
}

// step reports progress on stderr when running verbosely
func (g *globals) step(format string, args ...any) {
	if !g.verbose {
		return
	}
	if g.start.IsZero() {
		g.start = time.Now()
	}
	fmt.Fprintf(g.stderr, "[%8s] %s\n", time.Since(g.start).Round(time.Millisecond), fmt.Sprintf(format, args...))
}

func parse_floats(list string) (ans []float64, err error) {
	for _, x := range strings.Split(list, ",") {
		if x = strings.TrimSpace(x); x == "" {
			continue
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", x, types.ErrInvalidInput)
		}
		ans = append(ans, f)
	}
	return
}

func parse_names(list string) (ans []string) {
	for _, x := range strings.Split(list, ",") {
		if x = strings.TrimSpace(x); x != "" {
			ans = append(ans, x)
		}
	}
	return
}

func (g *globals) pipeline() (*pipeline.Pipeline, error) {
	if g.table == "" {
		return nil, fmt.Errorf("no spectral table specified, use -table: %w", types.ErrInvalidInput)
	}
	gamma, err := types.ParseGammaMode(g.gamma)
	if err != nil {
		return nil, err
	}
	opts := []pipeline.Option{pipeline.Gamma(gamma), pipeline.Workers(g.workers)}
	if g.saunderson != "" {
		k, err := parse_floats(g.saunderson)
		if err != nil {
			return nil, err
		}
		if len(k) != 2 {
			return nil, fmt.Errorf("the Saunderson correction needs exactly two coefficients, not %q: %w", g.saunderson, types.ErrInvalidInput)
		}
		opts = append(opts, pipeline.Saunderson(k[0], k[1]))
	}
	g.step("loading %s", g.table)
	t, err := spectral.LoadTable(g.table, spectral.Illuminant(g.illuminant))
	if err != nil {
		return nil, err
	}
	g.step("loaded %d samples of %d pigments at %g nm intervals", t.Len(), len(t.Pigments()), t.Step())
	return pipeline.New(t, opts...)
}
