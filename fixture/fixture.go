// SPDX-License-Identifier: MIT

package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsparse/sparse"
	"github.com/katalvlaran/lvlsparse/sparse/linalg"
)

// Entry is a single named matrix as it appears in a document. A nil Epsilon
// means the key was absent; an explicit 0 is kept.
type Entry struct {
	Name    string      `yaml:"name" toml:"name" json:"name"`
	Epsilon *float64    `yaml:"epsilon,omitempty" toml:"epsilon,omitempty" json:"epsilon,omitempty"`
	Rows    [][]float64 `yaml:"rows" toml:"rows" json:"rows"`
}

// document is the on-disk layout shared by every format.
type document struct {
	Matrices []Entry `yaml:"matrices" toml:"matrices" json:"matrices"`
}

// Set is a validated, name-indexed collection of fixtures in document order.
type Set struct {
	entries []Entry
	index   map[string]int
}

// Load reads path and parses it in the format implied by its extension.
func Load(path string) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	set, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// Parse decodes data in the given format and validates the entries.
//
// Errors:
//   - ErrUnsupportedFormat for an unknown Format.
//   - decoder errors, wrapped with the format name.
//   - ErrEmptyFixture, ErrUnnamedFixture, ErrDuplicateFixture, ErrInvalidEpsilon.
func Parse(data []byte, format Format) (*Set, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, fmt.Errorf("format %d: %w", int(format), ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("fixture: decode %s: %w", format, err)
	}

	return newSet(doc.Matrices)
}

func newSet(entries []Entry) (*Set, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyFixture
	}
	s := &Set{entries: entries, index: make(map[string]int, len(entries))}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrUnnamedFixture)
		}
		if len(e.Rows) == 0 || len(e.Rows[0]) == 0 {
			return nil, fmt.Errorf("%q: %w", e.Name, ErrEmptyFixture)
		}
		if e.Epsilon != nil && !validEpsilon(*e.Epsilon) {
			return nil, fmt.Errorf("%q: %w", e.Name, ErrInvalidEpsilon)
		}
		if _, dup := s.index[e.Name]; dup {
			return nil, fmt.Errorf("%q: %w", e.Name, ErrDuplicateFixture)
		}
		s.index[e.Name] = i
	}

	return s, nil
}

func validEpsilon(eps float64) bool {
	return eps >= 0 && !math.IsNaN(eps) && !math.IsInf(eps, 0)
}

// Len returns the number of fixtures.
func (s *Set) Len() int { return len(s.entries) }

// Names returns the fixture names in document order.
func (s *Set) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}

	return names
}

// Entry returns a copy of the named entry.
func (s *Set) Entry(name string) (Entry, error) {
	i, ok := s.index[name]
	if !ok {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrFixtureNotFound)
	}
	e := s.entries[i]
	rows := make([][]float64, len(e.Rows))
	for r, row := range e.Rows {
		rows[r] = append([]float64(nil), row...)
	}
	e.Rows = rows
	if e.Epsilon != nil {
		eps := *e.Epsilon
		e.Epsilon = &eps
	}

	return e, nil
}

// Rows returns a copy of the named fixture's nested rows.
func (s *Set) Rows(name string) ([][]float64, error) {
	e, err := s.Entry(name)
	if err != nil {
		return nil, err
	}

	return e.Rows, nil
}

// Matrix builds the named fixture as a linalg matrix. A tolerance stored in
// the document, zero included, is applied first, so opts override it.
func (s *Set) Matrix(name string, opts ...sparse.Option) (*linalg.Matrix, error) {
	e, err := s.Entry(name)
	if err != nil {
		return nil, err
	}
	all := make([]sparse.Option, 0, len(opts)+1)
	if e.Epsilon != nil {
		all = append(all, sparse.WithEpsilon(*e.Epsilon))
	}
	all = append(all, opts...)
	m, err := linalg.FromRows(e.Rows, all...)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}

	return m, nil
}
