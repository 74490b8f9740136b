package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/kovidgoyal/pigments/colorconv"
	"github.com/kovidgoyal/pigments/gamut"
	"github.com/kovidgoyal/pigments/render"
	"github.com/kovidgoyal/pigments/spectral"
	"github.com/kovidgoyal/pigments/types"
)

var _ = fmt.Print

func subcommand(g *globals, name, args_usage string) *flag.FlagSet {
	fs := flag.NewFlagSet("kmix "+name, flag.ContinueOnError)
	fs.SetOutput(g.stderr)
	fs.Usage = func() {
		fmt.Fprintf(g.stderr, "usage: kmix [global options] %s [options] %s\n", name, args_usage)
		fs.PrintDefaults()
	}
	return fs
}

func create(output_file string) (*os.File, error) {
	return os.OpenFile(output_file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
}

func save_png(g *globals, img image.Image, scale int, output_file string) (err error) {
	if scale > 1 {
		if img, err = render.Scale(img, scale); err != nil {
			return err
		}
	}
	out, err := create(output_file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err = render.EncodePNG(out, img); err == nil {
		g.step("PNG saved to: %s", output_file)
	}
	return
}

func run_swatch(ctx context.Context, g *globals, args []string) (err error) {
	fs := subcommand(g, "swatch", "[pigment names...]")
	output_file := fs.String("o", "", "also save the swatches as a PNG strip to this file")
	cell := fs.Int("cell", 64, "size in pixels of each swatch in the PNG strip")
	if err = fs.Parse(args); err != nil {
		return err
	}
	p, err := g.pipeline()
	if err != nil {
		return err
	}
	pigments := p.Table().Pigments()
	if fs.NArg() > 0 {
		if pigments, err = p.Table().PigmentsNamed(fs.Args()...); err != nil {
			return err
		}
	}
	points := make([]gamut.Point, len(pigments))
	for i, pig := range pigments {
		r, err := p.Mix(pigments[i:i+1], []float64{1})
		if err != nil {
			return fmt.Errorf("%s: %w", pig.Name, err)
		}
		points[i] = gamut.Point{Index: i, Proportions: []float64{1}, XYZ: r.XYZ, RGB: r.RGB, Chromaticity: r.Chromaticity}
		fmt.Fprintf(g.stdout, "%-24s %s  x=%.4f y=%.4f Y=%.4f\n", pig.Name, r.Swatch().Hex(), r.Chromaticity.X, r.Chromaticity.Y, r.XYZ.Y)
	}
	if *output_file == "" {
		return nil
	}
	img, err := render.Strip(points, *cell)
	if err != nil {
		return err
	}
	return save_png(g, img, 1, *output_file)
}

func run_mix(ctx context.Context, g *globals, args []string) (err error) {
	fs := subcommand(g, "mix", "")
	names := fs.String("names", "", "comma separated names of the pigments to mix")
	ratios := fs.String("ratios", "", "comma separated proportions of the pigments, defaults to equal proportions")
	if err = fs.Parse(args); err != nil {
		return err
	}
	pigment_names := parse_names(*names)
	if len(pigment_names) == 0 {
		return fmt.Errorf("no pigments specified, use -names: %w", types.ErrInvalidInput)
	}
	proportions, err := parse_floats(*ratios)
	if err != nil {
		return err
	}
	if len(proportions) == 0 {
		proportions = spectral.Flat(len(pigment_names), 1)
	}
	if len(proportions) != len(pigment_names) {
		return fmt.Errorf("%d ratios specified for %d pigments: %w", len(proportions), len(pigment_names), types.ErrInvalidInput)
	}
	p, err := g.pipeline()
	if err != nil {
		return err
	}
	pigments, err := p.Table().PigmentsNamed(pigment_names...)
	if err != nil {
		return err
	}
	r, err := p.Mix(pigments, proportions)
	if err != nil {
		return err
	}
	additive, err := p.Additive(pigments, proportions)
	if err != nil {
		return err
	}
	parts := make([]string, len(pigments))
	for i, pig := range pigments {
		parts[i] = fmt.Sprintf("%g %s", proportions[i], pig.Name)
	}
	w := g.stdout
	fmt.Fprintln(w, "Mixture:", strings.Join(parts, " + "))
	fmt.Fprintf(w, "Color:    %s\n", r.Swatch().Hex())
	fmt.Fprintf(w, "RGB:      %.4f %.4f %.4f\n", r.RGB.R, r.RGB.G, r.RGB.B)
	fmt.Fprintf(w, "XYZ:      %.4f %.4f %.4f\n", r.XYZ.X, r.XYZ.Y, r.XYZ.Z)
	fmt.Fprintf(w, "xy:       %.4f %.4f\n", r.Chromaticity.X, r.Chromaticity.Y)
	fmt.Fprintf(w, "Additive: %s\n", colorconv.NewSwatch(additive).Hex())
	return nil
}

func run_gamut(ctx context.Context, g *globals, args []string) (err error) {
	fs := subcommand(g, "gamut", "")
	names := fs.String("names", "", "comma separated names of the 2 to 4 pigments to mix")
	resolution := fs.Int("resolution", 21, "number of proportion levels per pigment, including 0 and 1")
	output_file := fs.String("o", "gamut.png", "PNG file to save the gamut to, animated for four pigments")
	size := fs.Int("size", 512, "width in pixels of ternary plots")
	dot := fs.Int("dot", 0, "radius in pixels of each sample in ternary plots, zero picks one from the size and resolution")
	cell := fs.Int("cell", 16, "size in pixels of each sample in the strip drawn for two pigments")
	scale := fs.Int("scale", 1, "enlarge the image by this integer factor")
	delay := fs.Duration("delay", 250*time.Millisecond, "delay between the frames of animated gamuts")
	if err = fs.Parse(args); err != nil {
		return err
	}
	pigment_names := parse_names(*names)
	if *dot <= 0 {
		*dot = max(1, *size/(4*max(1, *resolution)))
	}
	p, err := g.pipeline()
	if err != nil {
		return err
	}
	g.step("sampling %d mixtures of %s using %d workers", gamut.Count(len(pigment_names), *resolution), strings.Join(pigment_names, ", "), p.Workers())
	points, err := gamut.SampleNamed(ctx, p, pigment_names, *resolution)
	if err != nil {
		return err
	}
	if failed := gamut.Failed(points); len(failed) > 0 {
		fmt.Fprintf(g.stderr, "%d of %d mixtures failed, the first with error: %s\n", len(failed), len(points), failed[0].Err)
	}
	g.step("sampled %d mixtures", len(points))
	switch len(pigment_names) {
	case 2:
		img, err := render.Strip(points, *cell)
		if err != nil {
			return err
		}
		return save_png(g, img, *scale, *output_file)
	case 3:
		img, err := render.Ternary(points, *size, *dot)
		if err != nil {
			return err
		}
		return save_png(g, img, *scale, *output_file)
	}
	m, err := render.Animation(points, *resolution, *size, *dot, *delay)
	if err != nil {
		return err
	}
	if *scale > 1 {
		for i, f := range m.Frames {
			if m.Frames[i], err = render.Scale(f, *scale); err != nil {
				return err
			}
		}
	}
	out, err := create(*output_file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err = render.EncodeAPNG(out, m); err == nil {
		g.step("APNG with %d frames saved to: %s", len(m.Frames), *output_file)
	}
	return
}

func run_locus(ctx context.Context, g *globals, args []string) (err error) {
	fs := subcommand(g, "locus", "")
	n := fs.Int("n", 0, "number of points, defaults to one per table sample")
	if err = fs.Parse(args); err != nil {
		return err
	}
	p, err := g.pipeline()
	if err != nil {
		return err
	}
	if *n <= 0 {
		*n = p.Table().Len()
	}
	points, err := spectral.Locus(p.Table(), *n)
	if err != nil {
		return err
	}
	for _, v := range points {
		fmt.Fprintf(g.stdout, "%.6f %.6f\n", v.X, v.Y)
	}
	return nil
}
