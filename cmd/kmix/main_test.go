package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kettek/apng"
	"github.com/kovidgoyal/pigments/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

const table_csv = `wavelength,x_bar,y_bar,z_bar,power,k white,s white,k cobalt b,s cobalt b,k red,s red,k yellow,s yellow
400,0.2,0.1,0.9,1,0.01,1,0.5,0.5,2,0.5,3,0.6
500,0.1,0.5,0.2,1,0.01,1,0.8,0.4,1.5,0.5,0.5,0.6
600,0.9,0.6,0.0,1,0.01,1,1.2,0.3,0.1,0.5,0.05,0.6
700,0.1,0.05,0,1,0.01,1,2.0,0.2,0.05,0.5,0.05,0.6
`

type harness struct {
	dir, table     string
	stdout, stderr bytes.Buffer
}

func new_harness(t *testing.T) *harness {
	h := harness{dir: t.TempDir()}
	h.table = filepath.Join(h.dir, "table.csv")
	require.NoError(t, os.WriteFile(h.table, []byte(table_csv), 0o644))
	return &h
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	return run(context.Background(), append([]string{"-table", h.table}, args...), &h.stdout, &h.stderr)
}

func TestSwatch(t *testing.T) {
	h := new_harness(t)
	require.NoError(t, h.run("swatch"))
	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "White "), lines[0])
	assert.Contains(t, lines[1], "Cobalt Blue")

	out := filepath.Join(h.dir, "swatch.png")
	require.NoError(t, h.run("-v", "swatch", "-o", out, "-cell", "8", "White", "red"))
	require.Len(t, strings.Split(strings.TrimSpace(h.stdout.String()), "\n"), 2)
	assert.Contains(t, h.stderr.String(), "PNG saved to:")
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	require.ErrorIs(t, h.run("swatch", "Mauve"), types.ErrUnknownPigment)
}

func TestMix(t *testing.T) {
	h := new_harness(t)
	require.NoError(t, h.run("-gamma", "simple", "-saunderson", "0.04,0.6", "mix", "-names", "White, Cobalt Blue", "-ratios", "1,3"))
	out := h.stdout.String()
	assert.Contains(t, out, "Mixture: 1 White + 3 Cobalt Blue")
	for _, label := range []string{"Color:    #", "XYZ:", "xy:", "Additive: #"} {
		assert.Contains(t, out, label)
	}

	require.ErrorIs(t, h.run("mix"), types.ErrInvalidInput)
	require.ErrorIs(t, h.run("mix", "-names", "White,red", "-ratios", "1"), types.ErrInvalidInput)
	require.ErrorIs(t, h.run("mix", "-names", "White", "-ratios", "x"), types.ErrInvalidInput)
	require.ErrorIs(t, h.run("-gamma", "log", "mix", "-names", "White"), types.ErrInvalidInput)
	require.ErrorIs(t, h.run("-saunderson", "0.1", "mix", "-names", "White"), types.ErrInvalidInput)
	require.ErrorIs(t, h.run("-saunderson", "1,0", "mix", "-names", "White"), types.ErrInvalidInput)
	require.ErrorIs(t, h.run("-illuminant", "sun", "mix", "-names", "White"), types.ErrInvalidInput)
}

func TestGamut(t *testing.T) {
	h := new_harness(t)
	for _, tc := range []struct {
		names  string
		frames int
	}{
		{"White,red", 1},
		{"White,red,yellow", 1},
		{"White,red,yellow,cobalt b", 5},
	} {
		t.Run(tc.names, func(t *testing.T) {
			out := filepath.Join(h.dir, fmt.Sprintf("gamut%d.png", tc.frames))
			require.NoError(t, h.run("-workers", "2", "gamut", "-names", tc.names, "-resolution", "5", "-size", "64", "-o", out))
			data, err := os.ReadFile(out)
			require.NoError(t, err)
			if tc.frames == 1 {
				_, err = png.Decode(bytes.NewReader(data))
				require.NoError(t, err)
				return
			}
			a, err := apng.DecodeAll(bytes.NewReader(data))
			require.NoError(t, err)
			frames := 0
			for _, f := range a.Frames {
				if !f.IsDefault {
					frames++
				}
			}
			require.Equal(t, tc.frames, frames)
		})
	}
	require.ErrorIs(t, h.run("gamut", "-names", "White"), types.ErrUnsupportedArity)
	require.ErrorIs(t, h.run("gamut", "-names", "White,red", "-resolution", "1"), types.ErrInvalidInput)
}

func TestLocus(t *testing.T) {
	h := new_harness(t)
	require.NoError(t, h.run("locus", "-n", "7"))
	require.Len(t, strings.Split(strings.TrimSpace(h.stdout.String()), "\n"), 7)
	require.NoError(t, h.run("locus"))
	require.Len(t, strings.Split(strings.TrimSpace(h.stdout.String()), "\n"), 4)
}

func TestUsage(t *testing.T) {
	h := new_harness(t)
	require.Error(t, h.run())
	assert.Contains(t, h.stderr.String(), "Commands:")
	err := h.run("paint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	require.True(t, errors.Is(h.run("mix", "-h"), flag.ErrHelp))
	err = run(context.Background(), []string{"mix", "-names", "White"}, &h.stdout, &h.stderr)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}
