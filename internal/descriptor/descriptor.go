// Package descriptor reads and writes platform descriptor files: the per
// compilation unit type and function listings produced by `cref dump` and
// consumed by `cref sizeof`.
package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinh/cref/internal/typereg"
	"go.yaml.in/yaml/v3"
)

// Format is the encoding of a descriptor file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extensions tried, in order, when locating a target's descriptor.
var extensions = []string{".json", ".yaml", ".yml"}

// ErrNotFound is returned by Find when no descriptor exists for a target.
var ErrNotFound = errors.New("descriptor not found")

// Unit is one compilation unit: its type records and the signatures of the
// external functions it defines (return type first, then arguments).
type Unit struct {
	Types typereg.Unit        `json:"type" yaml:"type"`
	Funcs map[string][]string `json:"func,omitempty" yaml:"func,omitempty"`
}

// FormatOf infers the format from a file name. Unknown extensions are JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Find returns the path of the descriptor for target inside dir.
func Find(dir, target string) (string, error) {
	for _, ext := range extensions {
		p := filepath.Join(dir, target+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, target, dir)
}

// ReadFile decodes the descriptor at path.
func ReadFile(path string) ([]Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}
	units, err := Decode(bytes.NewReader(data), FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return units, nil
}

// Decode reads a sequence of units from r.
func Decode(r io.Reader, format Format) ([]Unit, error) {
	var units []Unit
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&units); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		if err := json.NewDecoder(r).Decode(&units); err != nil {
			return nil, err
		}
	}
	return units, nil
}

// Encode writes units to w.
func Encode(w io.Writer, units []Unit, format Format) error {
	if units == nil {
		units = []Unit{}
	}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(units); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		if err := enc.Encode(units); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}
}

// TypeUnits returns the type maps of units in order.
func TypeUnits(units []Unit) []typereg.Unit {
	out := make([]typereg.Unit, len(units))
	for i, u := range units {
		out[i] = u.Types
	}
	return out
}

// LoadPlatform finds and reads the descriptor of target in dir.
func LoadPlatform(dir, target string) (typereg.Platform, error) {
	path, err := Find(dir, target)
	if err != nil {
		return typereg.Platform{}, err
	}
	units, err := ReadFile(path)
	if err != nil {
		return typereg.Platform{}, err
	}
	return typereg.Platform{ID: target, Units: TypeUnits(units)}, nil
}
