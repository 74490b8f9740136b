package colorconv

import (
	"math"
	"testing"

	"github.com/kovidgoyal/pigments/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var tableCases = []struct {
	name string
	xyz  XYZ
}{
	{"black", XYZ{0, 0, 0}},
	{"D65 white", XYZ{0.95047, 1.00000, 1.08883}},
	{"mid gray", XYZ{0.95047 * 0.2, 0.2, 1.08883 * 0.2}},
	{"saturated red", XYZ{0.4124, 0.2126, 0.0193}},
	{"out of gamut green", XYZ{0.1, 0.6, 0.05}},
	{"out of gamut violet", XYZ{0.3, 0.05, 1.2}},
	{"overexposed", XYZ{2, 2, 2}},
}

func TestEncodeRange_TableDriven(t *testing.T) {
	for _, mode := range []types.GammaMode{types.GammaSRGB, types.GammaSimple} {
		for _, tc := range tableCases {
			t.Run(mode.String()+"/"+tc.name, func(t *testing.T) {
				c := Encode(tc.xyz, mode)
				if !c.InGamut() {
					t.Fatalf("Encode produced out of range RGB for %s: (%.12f,%.12f,%.12f)", tc.name, c.R, c.G, c.B)
				}
			})
		}
	}
}

func TestEncodeIdempotentUnderReclamp(t *testing.T) {
	for _, mode := range []types.GammaMode{types.GammaSRGB, types.GammaSimple} {
		for _, tc := range tableCases {
			t.Run(mode.String()+"/"+tc.name, func(t *testing.T) {
				lin := LinearRGB(tc.xyz)
				clamped := RGB{clamp01(lin.R), clamp01(lin.G), clamp01(lin.B)}
				require.Equal(t, Encode(tc.xyz, mode), EncodeLinear(clamped, mode))
				require.Equal(t, EncodeLinear(clamped, mode), EncodeLinear(RGB{clamp01(clamped.R), clamp01(clamped.G), clamp01(clamped.B)}, mode))
			})
		}
	}
}

func TestWhiteIsNearOne(t *testing.T) {
	c := Encode(XYZ{0.95047, 1.00000, 1.08883}, types.GammaSRGB)
	if !(c.R > 0.99 && c.G > 0.99 && c.B > 0.99) {
		t.Fatalf("D65 white not near 1: got (%.6f, %.6f, %.6f)", c.R, c.G, c.B)
	}
	require.Equal(t, RGB{}, Encode(XYZ{}, types.GammaSimple))
}

func TestGammaModes(t *testing.T) {
	lin := RGB{0.5, 0.002, 1}
	s := EncodeLinear(lin, types.GammaSRGB)
	assert.InDelta(t, 1.055*math.Pow(0.5, 1/2.4)-0.055, s.R, 1e-12)
	assert.InDelta(t, 12.92*0.002, s.G, 1e-12)
	assert.InDelta(t, 1, s.B, 1e-12)
	p := EncodeLinear(lin, types.GammaSimple)
	assert.InDelta(t, math.Pow(0.5, 1/2.2), p.R, 1e-12)
	assert.InDelta(t, math.Pow(0.002, 1/2.2), p.G, 1e-12)
	assert.NotEqual(t, s.R, p.R)
}

func TestDecodeRoundtrip(t *testing.T) {
	const eps = 1e-9
	for _, mode := range []types.GammaMode{types.GammaSRGB, types.GammaSimple} {
		for _, x := range []float64{0, 0.001, 0.01, 0.2, 0.5, 0.9, 1} {
			enc := companding(mode)(x)
			if got := Decode(enc, mode); !nearlyEqual(x, got, eps) {
				t.Fatalf("%s roundtrip of %v gave %v", mode, x, got)
			}
		}
	}
	assert.Equal(t, 0.0, Decode(-3, types.GammaSRGB))
	assert.Equal(t, 1.0, Decode(7, types.GammaSRGB))
}

func TestMatricesAreInverses(t *testing.T) {
	p := mulMat3(xyzFromLinearSRGB, srgbFromXYZ)
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, p[i][j], 1e-3, "element %d,%d", i, j)
		}
	}
	c := RGB{0.25, 0.5, 0.75}
	back := LinearRGB(ToXYZ(c))
	assert.InDeltaSlice(t, []float64{c.R, c.G, c.B}, []float64{back.R, back.G, back.B}, 1e-3)
}

func TestProject(t *testing.T) {
	require.Equal(t, vec.Vec2{}, Project(XYZ{}))
	p := Project(XYZ{1, 1, 1})
	assert.InDelta(t, 1.0/3, p.X, 1e-15)
	assert.InDelta(t, 1.0/3, p.Y, 1e-15)
	p = Project(XYZ{0.95047, 1, 1.08883})
	assert.InDelta(t, 0.3127, p.X, 1e-4)
	assert.InDelta(t, 0.3290, p.Y, 1e-4)
}

func TestMixAdditive(t *testing.T) {
	c := RGB{0.2, 0.6, 0.9}
	m, err := MixAdditive([]RGB{c, c}, []float64{1, 3}, types.GammaSRGB)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{c.R, c.G, c.B}, []float64{m.R, m.G, m.B}, 1e-9)

	m, err = MixAdditive([]RGB{{0, 0, 0}, {1, 1, 1}}, []float64{1, 1}, types.GammaSRGB)
	require.NoError(t, err)
	assert.InDelta(t, linearToSRGBComp(0.5), m.R, 1e-12)

	_, err = MixAdditive([]RGB{c}, []float64{0}, types.GammaSRGB)
	require.ErrorIs(t, err, types.ErrInvalidInput)
	_, err = MixAdditive([]RGB{c}, []float64{1, 2}, types.GammaSRGB)
	require.ErrorIs(t, err, types.ErrInvalidInput)
	_, err = MixAdditive([]RGB{c}, []float64{-1}, types.GammaSRGB)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestSwatch(t *testing.T) {
	s := NewSwatch(RGB{1, 0.5, 0})
	require.Equal(t, Swatch{255, 128, 0}, s)
	require.Equal(t, "#FF8000", s.Hex())
	r, g, b, a := s.RGBA()
	require.Equal(t, []uint32{0xffff, 0x8080, 0, 0xffff}, []uint32{r, g, b, a})
	require.Equal(t, Swatch{0, 0, 255}, NewSwatch(RGB{-1, math.NaN(), 3}))
}

func TestSwatchLinear(t *testing.T) {
	for _, mode := range []types.GammaMode{types.GammaSRGB, types.GammaSimple} {
		for v := range 256 {
			s := Swatch{uint8(v), 0, 255}
			want := s.RGB().Linear(mode)
			got := s.Linear(mode)
			require.Equal(t, want, got, "%s %d", mode, v)
		}
		require.Equal(t, RGB{0, 0, 1}, Swatch{0, 0, 255}.Linear(mode))
	}
}
