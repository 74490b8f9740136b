package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
)

var _ = fmt.Print

const usage = `usage: kmix [global options] command [command options] [args]

Commands:
  swatch   print the color of each pure pigment, optionally as an image
  mix      mix pigments in the given ratios
  gamut    sample every mixture of 2 to 4 pigments and draw the gamut
  locus    print the chromaticity of the spectral locus

Global options:
`

type command struct {
	name string
	run  func(ctx context.Context, g *globals, args []string) error
}

var commands = []command{
	{"swatch", run_swatch},
	{"mix", run_mix},
	{"gamut", run_gamut},
	{"locus", run_locus},
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	g := globals{stdout: stdout, stderr: stderr}
	fs := g.flags()
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no command specified")
	}
	name := fs.Arg(0)
	for _, c := range commands {
		if c.name == name {
			return c.run(ctx, &g, fs.Args()[1:])
		}
	}
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	return fmt.Errorf("unknown command %q, must be one of: %s", name, strings.Join(names, ", "))
}

func main() {
	var err error
	defer func() {
		if err != nil && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
