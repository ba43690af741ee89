package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads the problem at path. Files ending in .yaml or .yml are
// decoded as YAML, anything else as plain text. An unnamed problem is named
// after the file.
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p *Problem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = ReadYAML(f)
	default:
		p, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = filepath.Base(path)
	}

	return p, nil
}
