package ldtk

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile loads and parses an LDtk project from the given path.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes LDtk project JSON.
func Parse(data []byte) (*Project, error) {
	var p Project

	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse LDtk project: %w", err)
	}

	return &p, nil
}
