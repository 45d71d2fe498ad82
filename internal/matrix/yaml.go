package matrix

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/islands/internal/terrain"
)

// YAMLMatrix represents the YAML structure for a matrix file.
type YAMLMatrix struct {
	Name string  `yaml:"name,omitempty"`
	Size int     `yaml:"size,omitempty"`
	Rows [][]int `yaml:"rows"`
}

// yamlDocument keeps rows as nodes so scalar tags can be checked before
// conversion. Decoding straight into int would truncate 2.5 to 2.
type yamlDocument struct {
	Name string        `yaml:"name"`
	Size int           `yaml:"size"`
	Rows [][]yaml.Node `yaml:"rows"`
}

// ParseYAML parses a YAML matrix file. When size is set it must match the
// number of rows. Every cell must be an integer scalar.
func ParseYAML(data []byte) ([][]int, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("matrix: yaml unmarshal: %w", err)
	}
	if doc.Size > 0 && doc.Size != len(doc.Rows) {
		return nil, &terrain.ShapeError{
			Row:    -1,
			Col:    -1,
			Reason: fmt.Sprintf("declared size %d but %d rows", doc.Size, len(doc.Rows)),
		}
	}

	rows := make([][]int, len(doc.Rows))
	for r, nodes := range doc.Rows {
		row := make([]int, len(nodes))
		for c := range nodes {
			n := &nodes[c]
			if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
				return nil, &terrain.ShapeError{
					Row:    r,
					Col:    c,
					Reason: fmt.Sprintf("not an integer: %q", n.Value),
				}
			}
			if err := n.Decode(&row[c]); err != nil {
				return nil, &terrain.ShapeError{Row: r, Col: c, Reason: err.Error()}
			}
		}
		rows[r] = row
	}
	return rows, nil
}

// MarshalYAML encodes m as a YAMLMatrix document.
func MarshalYAML(name string, m [][]int) ([]byte, error) {
	data, err := yaml.Marshal(YAMLMatrix{Name: name, Size: len(m), Rows: m})
	if err != nil {
		return nil, fmt.Errorf("matrix: yaml marshal: %w", err)
	}
	return data, nil
}
