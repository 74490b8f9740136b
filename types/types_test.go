package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGammaMode(t *testing.T) {
	for name, want := range map[string]GammaMode{"srgb": GammaSRGB, "SRGB": GammaSRGB, "simple": GammaSimple, "2.2": GammaSimple} {
		g, err := ParseGammaMode(name)
		require.NoError(t, err, name)
		require.Equal(t, want, g, name)
	}
	_, err := ParseGammaMode("linear")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, "sRGB", GammaSRGB.String())
	require.Equal(t, "GammaMode(7)", GammaMode(7).String())
}
