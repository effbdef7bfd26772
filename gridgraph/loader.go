package gridgraph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// layoutFile is the YAML shape of a maze fixture.
type layoutFile struct {
	Start  []int    `yaml:"start"`
	Layout []string `yaml:"layout"`
}

// LoadYAML reads a maze fixture of the form
//
//	start: [x, y]      # optional, overrides an S glyph
//	layout:
//	  - "o-o-o"
//	  - "|   |"
//	  - "o-o-o"
func LoadYAML(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: read layout: %w", err)
	}
	return DecodeYAML(data)
}

// DecodeYAML parses a maze fixture document.
func DecodeYAML(data []byte) (*Grid, error) {
	var doc layoutFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gridgraph: parse layout: %w", err)
	}

	g, err := Parse(doc.Layout)
	if err != nil {
		return nil, err
	}

	if len(doc.Start) > 0 {
		if len(doc.Start) != 2 || !g.InBounds(doc.Start[0], doc.Start[1]) {
			return nil, fmt.Errorf("%w: start %v", ErrOutOfRange, doc.Start)
		}
		if err := g.SetStart(g.Index(doc.Start[0], doc.Start[1])); err != nil {
			return nil, err
		}
	}

	return g, nil
}
