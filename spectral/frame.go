package spectral

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/kovidgoyal/pigments/types"
)

var _ = fmt.Print

// WavelengthColumn is the key column shared by every reference table.
const WavelengthColumn = "wavelength"

// Frame is raw tabular data: named float columns, one row per wavelength
// sample. It is what reference CSV/JSON files decode into and what Merge
// operates on. Missing values are stored as NaN.
type Frame struct {
	Columns []string
	Rows    [][]float64
}

// Index returns the position of the named column or -1.
func (f *Frame) Index(name string) int {
	return slices.Index(f.Columns, name)
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	idx := f.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("no column named %q: %w", name, types.ErrInvalidInput)
	}
	ans := make([]float64, len(f.Rows))
	for i, row := range f.Rows {
		ans[i] = row[idx]
	}
	return ans, nil
}

// WithSuffix returns a copy of the frame with " suffix" appended to every
// column name except the wavelength column. Use it to tell apart tables that
// share column names, for instance several illuminants all named "power".
func (f *Frame) WithSuffix(suffix string) *Frame {
	ans := Frame{Columns: make([]string, len(f.Columns)), Rows: f.Rows}
	for i, c := range f.Columns {
		if c == WavelengthColumn || suffix == "" {
			ans.Columns[i] = c
		} else {
			ans.Columns[i] = c + " " + suffix
		}
	}
	return &ans
}

func (f *Frame) validate() error {
	if f.Index(WavelengthColumn) < 0 {
		return fmt.Errorf("table has no %q column: %w", WavelengthColumn, types.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(f.Columns))
	for _, c := range f.Columns {
		if seen[c] {
			return fmt.Errorf("duplicate column %q: %w", c, types.ErrInvalidInput)
		}
		seen[c] = true
	}
	for i, row := range f.Rows {
		if len(row) != len(f.Columns) {
			return fmt.Errorf("row %d has %d values, expected %d: %w", i, len(row), len(f.Columns), types.ErrInvalidInput)
		}
	}
	return nil
}

func parse_cell(x string) (float64, error) {
	x = strings.TrimSpace(x)
	if x == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(x, 64)
}

func format_cell(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// ReadCSV reads a frame from CSV data with a header row.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty CSV data: %w", types.ErrInvalidInput)
		}
		return nil, err
	}
	f := Frame{Columns: make([]string, len(header))}
	for i, h := range header {
		f.Columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(record))
		for i, cell := range record {
			if row[i], err = parse_cell(cell); err != nil {
				line, _ := cr.FieldPos(i)
				return nil, fmt.Errorf("line %d column %q: %w", line, f.Columns[i], types.ErrInvalidInput)
			}
		}
		f.Rows = append(f.Rows, row)
	}
	if err = f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// WriteCSV writes the frame as CSV with a header row. NaN values are written
// as empty cells.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Columns); err != nil {
		return err
	}
	record := make([]string, len(f.Columns))
	for _, row := range f.Rows {
		for i, x := range row {
			record[i] = format_cell(x)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the frame as an indented JSON array of records, one object
// per row with keys in column order. NaN values are written as null.
func (f *Frame) WriteJSON(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	keys := make([][]byte, len(f.Columns))
	for i, c := range f.Columns {
		if keys[i], err = json.Marshal(c); err != nil {
			return err
		}
	}
	bw.WriteString("[")
	for r, row := range f.Rows {
		if r > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n    {")
		for i, x := range row {
			if i > 0 {
				bw.WriteString(",")
			}
			bw.WriteString("\n        ")
			bw.Write(keys[i])
			bw.WriteString(": ")
			if math.IsNaN(x) || math.IsInf(x, 0) {
				bw.WriteString("null")
			} else {
				bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			}
		}
		bw.WriteString("\n    }")
	}
	if len(f.Rows) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

func expect_delim(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if got, ok := tok.(json.Delim); !ok || got != d {
		return fmt.Errorf("expected %v in JSON table but got %v: %w", d, tok, types.ErrInvalidInput)
	}
	return nil
}

// ReadJSON reads a frame from a JSON array of records, as written by
// WriteJSON. Column order is taken from the first record. Missing keys and
// null values become NaN.
func ReadJSON(r io.Reader) (*Frame, error) {
	dec := json.NewDecoder(r)
	if err := expect_delim(dec, '['); err != nil {
		return nil, err
	}
	f := Frame{}
	col_index := map[string]int{}
	for dec.More() {
		if err := expect_delim(dec, '{'); err != nil {
			return nil, err
		}
		first := len(f.Rows) == 0
		var row []float64
		if !first {
			row = make([]float64, len(f.Columns))
			for i := range row {
				row[i] = math.NaN()
			}
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("expected key in JSON table record but got %v: %w", tok, types.ErrInvalidInput)
			}
			if tok, err = dec.Token(); err != nil {
				return nil, err
			}
			val := math.NaN()
			switch v := tok.(type) {
			case float64:
				val = v
			case nil:
			default:
				return nil, fmt.Errorf("value of %q is not a number: %w", key, types.ErrInvalidInput)
			}
			if first {
				col_index[key] = len(f.Columns)
				f.Columns = append(f.Columns, key)
				row = append(row, val)
				continue
			}
			idx, found := col_index[key]
			if !found {
				return nil, fmt.Errorf("record %d has unknown column %q: %w", len(f.Rows), key, types.ErrInvalidInput)
			}
			row[idx] = val
		}
		if err := expect_delim(dec, '}'); err != nil {
			return nil, err
		}
		f.Rows = append(f.Rows, row)
	}
	if err := expect_delim(dec, ']'); err != nil {
		return nil, err
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("empty JSON table: %w", types.ErrInvalidInput)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Merge joins frames on their wavelength column keeping only wavelengths
// present in every frame (an inner join). Rows of the result are sorted by
// ascending wavelength. Column names other than wavelength must be unique
// across the frames, see WithSuffix.
func Merge(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("nothing to merge: %w", types.ErrInvalidInput)
	}
	ans := Frame{Columns: []string{WavelengthColumn}}
	lookups := make([]map[float64][]float64, len(frames))
	for i, f := range frames {
		if err := f.validate(); err != nil {
			return nil, err
		}
		widx := f.Index(WavelengthColumn)
		for _, c := range f.Columns {
			if c == WavelengthColumn {
				continue
			}
			if ans.Index(c) > -1 {
				return nil, fmt.Errorf("column %q occurs in more than one table: %w", c, types.ErrInvalidInput)
			}
			ans.Columns = append(ans.Columns, c)
		}
		m := make(map[float64][]float64, len(f.Rows))
		for _, row := range f.Rows {
			w := row[widx]
			if math.IsNaN(w) {
				continue
			}
			if _, dup := m[w]; dup {
				return nil, fmt.Errorf("wavelength %v occurs more than once in table %d: %w", w, i, types.ErrInvalidInput)
			}
			m[w] = row
		}
		lookups[i] = m
	}
	var common []float64
	for w := range lookups[0] {
		found := true
		for _, m := range lookups[1:] {
			if _, found = m[w]; !found {
				break
			}
		}
		if found {
			common = append(common, w)
		}
	}
	slices.Sort(common)
	ans.Rows = make([][]float64, 0, len(common))
	for _, w := range common {
		row := make([]float64, 1, len(ans.Columns))
		row[0] = w
		for i, f := range frames {
			src := lookups[i][w]
			for c, name := range f.Columns {
				if name != WavelengthColumn {
					row = append(row, src[c])
				}
			}
		}
		ans.Rows = append(ans.Rows, row)
	}
	return &ans, nil
}
