package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kovidgoyal/pigments/spectral"
)

var _ = fmt.Print

func run(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output_file := fs.String("o", "prepared.csv", "file to save the merged table to")
	json_file := fs.String("json", "", "also save the merged table as JSON to this file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: prepare [options] file.csv[=suffix] ...")
		fmt.Fprintln(stderr, "\nMerges tables on their wavelength column, keeping only wavelengths present in every table.")
		fmt.Fprintln(stderr, "A suffix is appended to the column names of its table, to tell apart columns with the same name.")
		fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}
	if err = fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no input files specified")
	}
	frames := make([]*spectral.Frame, 0, fs.NArg())
	for _, arg := range fs.Args() {
		name, suffix, _ := strings.Cut(arg, "=")
		f, err := spectral.LoadFrame(name)
		if err != nil {
			return err
		}
		if suffix != "" {
			f = f.WithSuffix(suffix)
		}
		frames = append(frames, f)
	}
	merged, err := spectral.Merge(frames...)
	if err != nil {
		return err
	}
	for _, output := range []string{*output_file, *json_file} {
		if output == "" {
			continue
		}
		if err = spectral.SaveFrame(merged, output); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Table with %d wavelengths and %d columns saved to: %s\n", len(merged.Rows), len(merged.Columns), output)
	}
	return nil
}

func main() {
	var err error
	defer func() {
		if err != nil && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	err = run(os.Args[1:], os.Stdout, os.Stderr)
}
