// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the document decoder.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota

	// FormatTOML decodes with github.com/BurntSushi/toml.
	FormatTOML

	// FormatJSON decodes with encoding/json.
	FormatJSON
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath detects the format from the file extension.
//
// Errors:
//   - ErrUnsupportedFormat for any other extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}
