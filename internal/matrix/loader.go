package matrix

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml"}
}

// LoadFile reads a matrix file, choosing the parser by extension.
// Files without an extension are read as text.
func LoadFile(path string) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return m, nil
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) ([][]int, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt", "":
		return ParseText(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
