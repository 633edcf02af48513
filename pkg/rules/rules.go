package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed gdcr-2017.yaml
var defaultTable []byte

// Load reads a rule table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule table: %w", err)
	}
	return Parse(data)
}

// Parse decodes a rule table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing rule table YAML: %w", err)
	}
	return &t, nil
}

// Default returns the GDCR 2017 table embedded in the binary.
func Default() (*Table, error) {
	return Parse(defaultTable)
}
