/*
Package pigments predicts the colors of paint mixtures with the Kubelka-Munk
model.

Pigments are described by their absorption (K) and scattering (S) spectra in
a spectral table that also holds the CIE color matching functions and an
illuminant. The subpackages mix the spectra of pigments (km), integrate the
resulting reflectance into tristimulus values (spectral), encode those as sRGB
(colorconv), sample every mixture of two to four pigments in parallel (gamut)
and draw the results (render). The pipeline package ties these together.
*/
package pigments

import "fmt"

type PigmentsVersion struct {
	Major, Minor, Patch uint
}

func (v PigmentsVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v PigmentsVersion) Equal(o PigmentsVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v PigmentsVersion) After(o PigmentsVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v PigmentsVersion) Before(o PigmentsVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = PigmentsVersion{0, 1, 0}
