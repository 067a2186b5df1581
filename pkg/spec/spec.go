package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a project input from a YAML file.
func Load(path string) (*ElectricalProjectInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var in ElectricalProjectInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}

	return &in, nil
}

// LoadProject loads a project input from a project directory.
// It looks for project.yaml in the given directory.
func LoadProject(projectDir string) (*ElectricalProjectInput, error) {
	return Load(filepath.Join(projectDir, "project.yaml"))
}
