package enum

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sculpt-web/sculpt"
)

// Definition is the YAML shape of a declarative enumeration. Columns may
// be omitted, in which case the default ("value", "id") schema applies.
//
// Example document:
//
//	columns: [value, id, label]
//	rows:
//	  - [0, DRAFT, "Draft"]
//	  - [1, PUBLISHED, "Published"]
type Definition struct {
	Columns []string `yaml:"columns,omitempty"`
	Rows    [][]any  `yaml:"rows"`
}

// Build constructs the Enumeration described by the definition.
func (d Definition) Build() (*Enumeration, error) {
	var opts []Option
	if len(d.Columns) > 0 {
		opts = append(opts, WithColumns(d.Columns...))
	}
	return New(d.Rows, opts...)
}

// FromYAML parses a Definition document and builds its Enumeration.
// Malformed YAML fails with sculpt.ErrInvalidConfig; construction errors
// propagate from New unchanged.
func FromYAML(data []byte) (*Enumeration, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, sculpt.NewConfigurationError("enum.FromYAML",
			fmt.Errorf("failed to parse definition: %w: %w", err, sculpt.ErrInvalidConfig))
	}
	return def.Build()
}

// LoadFile reads a Definition document from path and builds its
// Enumeration. This is the only file-touching entry point in the package;
// the Enumeration itself never performs I/O.
func LoadFile(path string) (*Enumeration, error) {
	const op = "enum.LoadFile"

	f, err := os.Open(path)
	if err != nil {
		return nil, sculpt.NewConfigurationError(op,
			fmt.Errorf("failed to open definition file: %w: %w", err, sculpt.ErrInvalidConfig))
	}
	defer sculpt.CloseWithLog(f, nil, "definition file")

	var def Definition
	if err := yaml.NewDecoder(f).Decode(&def); err != nil {
		return nil, sculpt.NewConfigurationError(op,
			fmt.Errorf("failed to parse %s: %w: %w", path, err, sculpt.ErrInvalidConfig))
	}
	return def.Build()
}
