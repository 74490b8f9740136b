package types

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// GammaMode selects the transfer function used to encode linear RGB for display.
type GammaMode int

// Gamma modes. GammaSRGB is the zero value and therefore the default.
const (
	GammaSRGB GammaMode = iota
	GammaSimple
)

var GammaModeNames = map[string]GammaMode{
	"srgb":      GammaSRGB,
	"sRGB":      GammaSRGB,
	"piecewise": GammaSRGB,
	"simple":    GammaSimple,
	"2.2":       GammaSimple,
	"power":     GammaSimple,
}

var gammaNames = map[GammaMode]string{
	GammaSRGB:   "sRGB",
	GammaSimple: "simple",
}

func (g GammaMode) String() string {
	if ans, ok := gammaNames[g]; ok {
		return ans
	}
	return fmt.Sprintf("GammaMode(%d)", int(g))
}

// ParseGammaMode maps a user supplied name such as "srgb" or "simple" to a GammaMode.
func ParseGammaMode(name string) (GammaMode, error) {
	if g, ok := GammaModeNames[name]; ok {
		return g, nil
	}
	if g, ok := GammaModeNames[strings.ToLower(name)]; ok {
		return g, nil
	}
	return GammaSRGB, fmt.Errorf("unknown gamma mode %q: %w", name, ErrInvalidInput)
}
