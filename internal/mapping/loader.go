package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML template file from the given path.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Template.
func Parse(data []byte) (*Template, error) {
	var t Template

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template YAML: %w", err)
	}

	if t.Map == nil {
		return nil, errors.New("failed to parse template YAML: missing map")
	}

	applyDefaults(&t)

	return &t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Template) {
	if t.Version == "" {
		t.Version = "1"
	}
}

// Marshal serializes a Template to YAML.
func Marshal(t *Template) ([]byte, error) {
	return yaml.Marshal(t)
}

// WriteFile writes a Template to the given path.
func WriteFile(t *Template, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write template file %s: %w", path, err)
	}

	return nil
}
