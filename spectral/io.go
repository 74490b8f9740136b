package spectral

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type fileSystem interface {
	Create(string) (io.WriteCloser, error)
	Open(string) (io.ReadCloser, error)
}

type localFS struct{}

func (localFS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }
func (localFS) Open(name string) (io.ReadCloser, error)    { return os.Open(name) }

var fs fileSystem = localFS{}

func is_json(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".json"
}

// LoadFrame reads a frame from a file. Files with a .json extension are read
// with ReadJSON, everything else with ReadCSV.
func LoadFrame(filename string) (*Frame, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var f *Frame
	if is_json(filename) {
		f, err = ReadJSON(file)
	} else {
		f, err = ReadCSV(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// LoadTable reads a spectral table from a CSV or JSON file, see LoadFrame and
// NewTable.
func LoadTable(filename string, opts ...TableOption) (*Table, error) {
	f, err := LoadFrame(filename)
	if err != nil {
		return nil, err
	}
	t, err := NewTable(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// SaveFrame writes f to a file, as JSON if the filename has a .json extension
// and as CSV otherwise.
func SaveFrame(f *Frame, filename string) (err error) {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()
	if is_json(filename) {
		return f.WriteJSON(file)
	}
	return f.WriteCSV(file)
}
