package site

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a site description from a YAML file.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site file: %w", err)
	}

	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing site YAML: %w", err)
	}

	return &d, nil
}

// LoadProject loads a site description from a project directory.
// It looks for site.yaml in the given directory.
func LoadProject(projectDir string) (*Description, error) {
	sitePath := filepath.Join(projectDir, "site.yaml")
	return Load(sitePath)
}
