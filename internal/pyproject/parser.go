package pyproject

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes pyproject.toml content into the typed manifest.
// Tables and keys the generator does not model are ignored.
func Parse(data []byte) (*Pyproject, error) {
	var p Pyproject
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &p, nil
}

// ParseFile reads and decodes a pyproject.toml file.
func ParseFile(path string) (*Pyproject, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
