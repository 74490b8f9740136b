package spectral

import (
	"fmt"
	"math"
	"strings"

	"github.com/kovidgoyal/pigments/types"
)

var _ = fmt.Print

// Column names of the color matching functions and the default illuminant.
const (
	XBarColumn       = "x_bar"
	YBarColumn       = "y_bar"
	ZBarColumn       = "z_bar"
	PowerColumn      = "power"
	AbsorptionPrefix = "k "
	ScatterPrefix    = "s "
)

// DefaultPigmentNames maps the display names of the reference pigments to
// the keys used in their "k <key>" and "s <key>" table columns.
var DefaultPigmentNames = map[string]string{
	"White":                      "white",
	"Black":                      "black",
	"Cobalt Blue":                "cobalt b",
	"Quinacridone Magenta":       "quinacridone Magenta",
	"Phthalo Blue (Green Shade)": "phthalo blue (green shade)",
	"Hansa Yellow":               "hansa Yellow",
	"Phthalo Green":              "phthalo Green",
	"Pyrrole Red":                "pyrrole Red",
	"Ultramarine Blue":           "ultramarine Blue",
	"Dioxazine Purple":           "dioxazine Purple",
	"Pyrrole Orange":             "pyrrole Orange",
}

// Pigment holds the absorption (K) and scattering (S) coefficients of a
// single pigment sampled on the wavelength grid of its table.
type Pigment struct {
	Name string // display name, the key if no display name is known
	Key  string
	K, S []float64
}

func (p *Pigment) String() string {
	return fmt.Sprintf("Pigment{%s}", p.Name)
}

// Table is an aligned spectral table: one row per wavelength sample holding
// the color matching functions, the illuminant power and the K/S
// coefficients of every pigment. Tables are immutable after construction and
// safe for concurrent use. The slices returned by its methods must not be
// modified.
type Table struct {
	wavelengths, xbar, ybar, zbar, power []float64
	step                                 float64

	// illuminant weighted color matching functions and the Y normalization
	wx, wy, wz []float64
	norm       float64

	pigments []*Pigment
	by_key   map[string]*Pigment
	names    map[string]string
}

type tableConfig struct {
	illuminant string
	names      map[string]string
}

// TableOption sets an optional parameter for NewTable and LoadTable.
type TableOption func(*tableConfig)

// Illuminant returns a TableOption that selects the column holding the
// illuminant spectral power. Defaults to "power".
func Illuminant(column string) TableOption {
	return func(c *tableConfig) {
		c.illuminant = column
	}
}

// PigmentNames returns a TableOption that sets the display name to column key
// lookup used to name pigments. Defaults to DefaultPigmentNames.
func PigmentNames(names map[string]string) TableOption {
	return func(c *tableConfig) {
		c.names = names
	}
}

func make_config(opts []TableOption) tableConfig {
	cfg := tableConfig{illuminant: PowerColumn, names: DefaultPigmentNames}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// NewTable builds a Table from a frame with the columns wavelength, x_bar,
// y_bar, z_bar, the illuminant column and any number of "k <key>"/"s <key>"
// pigment column pairs.
func NewTable(f *Frame, opts ...TableOption) (*Table, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	cfg := make_config(opts)
	cols := make([][]float64, 0, 5)
	for _, name := range []string{WavelengthColumn, XBarColumn, YBarColumn, ZBarColumn, cfg.illuminant} {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	key_for_display := make(map[string]string, len(cfg.names))
	for display, key := range cfg.names {
		key_for_display[key] = display
	}
	var pigments []*Pigment
	for _, c := range f.Columns {
		key, is_k := strings.CutPrefix(c, AbsorptionPrefix)
		if !is_k {
			if key, is_s := strings.CutPrefix(c, ScatterPrefix); is_s && f.Index(AbsorptionPrefix+key) < 0 {
				return nil, fmt.Errorf("scattering column %q has no matching absorption column: %w", c, types.ErrInvalidInput)
			}
			continue
		}
		p := Pigment{Key: key, Name: key}
		if display, found := key_for_display[key]; found {
			p.Name = display
		}
		p.K, _ = f.Column(c)
		var err error
		if p.S, err = f.Column(ScatterPrefix + key); err != nil {
			return nil, fmt.Errorf("absorption column %q has no matching scattering column: %w", c, types.ErrInvalidInput)
		}
		pigments = append(pigments, &p)
	}
	t, err := New(cols[0], cols[1], cols[2], cols[3], cols[4], pigments...)
	if err != nil {
		return nil, err
	}
	t.names = cfg.names
	return t, nil
}

func check_finite(name string, vals []float64) error {
	for i, x := range vals {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s has non-finite value at row %d: %w", name, i, types.ErrInvalidInput)
		}
	}
	return nil
}

// New builds a Table directly from its columns. The wavelengths must be
// strictly increasing with a uniform step and every other column, including
// the K and S coefficients of the pigments, must have the same length.
func New(wavelengths, xbar, ybar, zbar, power []float64, pigments ...*Pigment) (*Table, error) {
	n := len(wavelengths)
	if n < 2 {
		return nil, fmt.Errorf("spectral table needs at least two wavelength samples, got %d: %w", n, types.ErrInvalidInput)
	}
	for _, c := range []struct {
		name string
		vals []float64
	}{{WavelengthColumn, wavelengths}, {XBarColumn, xbar}, {YBarColumn, ybar}, {ZBarColumn, zbar}, {PowerColumn, power}} {
		if len(c.vals) != n {
			return nil, fmt.Errorf("%s has %d samples, expected %d: %w", c.name, len(c.vals), n, types.ErrShapeMismatch)
		}
		if err := check_finite(c.name, c.vals); err != nil {
			return nil, err
		}
	}
	step := wavelengths[1] - wavelengths[0]
	if !(step > 0) {
		return nil, fmt.Errorf("wavelengths must be strictly increasing: %w", types.ErrInvalidInput)
	}
	tolerance := 1e-6 * step
	for i := 2; i < n; i++ {
		if d := wavelengths[i] - wavelengths[i-1]; math.Abs(d-step) > tolerance {
			return nil, fmt.Errorf("wavelength step %v at %v nm differs from %v: %w", d, wavelengths[i-1], step, types.ErrInvalidInput)
		}
	}
	t := Table{
		wavelengths: wavelengths, xbar: xbar, ybar: ybar, zbar: zbar, power: power, step: step,
		wx: make([]float64, n), wy: make([]float64, n), wz: make([]float64, n),
		by_key: make(map[string]*Pigment, len(pigments)),
		names:  DefaultPigmentNames,
	}
	for i, p := range power {
		t.wx[i] = p * xbar[i] * step
		t.wy[i] = p * ybar[i] * step
		t.wz[i] = p * zbar[i] * step
		t.norm += t.wy[i]
	}
	for _, p := range pigments {
		if len(p.K) != n || len(p.S) != n {
			return nil, fmt.Errorf("pigment %q has %d/%d K/S samples, expected %d: %w", p.Key, len(p.K), len(p.S), n, types.ErrShapeMismatch)
		}
		if _, dup := t.by_key[p.Key]; dup {
			return nil, fmt.Errorf("pigment %q defined more than once: %w", p.Key, types.ErrInvalidInput)
		}
		t.by_key[p.Key] = p
		t.pigments = append(t.pigments, p)
	}
	return &t, nil
}

func (t *Table) Len() int { return len(t.wavelengths) }

// Step returns the wavelength step Δλ in nm.
func (t *Table) Step() float64 { return t.step }

func (t *Table) Wavelengths() []float64 { return t.wavelengths }
func (t *Table) XBar() []float64        { return t.xbar }
func (t *Table) YBar() []float64        { return t.ybar }
func (t *Table) ZBar() []float64        { return t.zbar }
func (t *Table) Power() []float64       { return t.power }

// Pigments returns the pigments of the table in column order.
func (t *Table) Pigments() []*Pigment {
	return append([]*Pigment(nil), t.pigments...)
}

// Pigment looks up a pigment by display name or column key. An exact match is
// preferred, after which names are compared case insensitively.
func (t *Table) Pigment(name string) (*Pigment, error) {
	if key, found := t.names[name]; found {
		if p := t.by_key[key]; p != nil {
			return p, nil
		}
	}
	if p := t.by_key[name]; p != nil {
		return p, nil
	}
	for _, p := range t.pigments {
		if strings.EqualFold(p.Key, name) || strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, types.ErrUnknownPigment)
}

// PigmentsNamed resolves several pigments at once, see Pigment.
func (t *Table) PigmentsNamed(names ...string) ([]*Pigment, error) {
	ans := make([]*Pigment, len(names))
	for i, name := range names {
		p, err := t.Pigment(name)
		if err != nil {
			return nil, err
		}
		ans[i] = p
	}
	return ans, nil
}
