package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/stylec"
)

// manifestDoc mirrors the *.style.yaml layout. Styles stays a raw yaml.Node:
// decoding it into a Go map would destroy style-key insertion order, which
// the compiler's output order depends on.
type manifestDoc struct {
	Name      string    `yaml:"name"`
	Layer     string    `yaml:"layer"`
	Container *struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"container"`
	Styles yaml.Node `yaml:"styles"`
}

// loadManifest reads and parses a single *.style.yaml file.
func loadManifest(path string) (*Manifest, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	m := &Manifest{
		Path: path,
		Name: doc.Name,
		Config: stylec.ComponentStyleConfig{
			Layer: stylec.Layer(doc.Layer),
		},
	}
	if m.Name == "" {
		m.Name = manifestStem(path)
	}
	if doc.Container != nil {
		m.Config.Container = &stylec.ContainerConfig{
			Name: doc.Container.Name,
			Type: doc.Container.Type,
		}
	}

	if doc.Styles.Kind != 0 {
		styles, err := styleObjectFromNode(&doc.Styles)
		if err != nil {
			return nil, err
		}
		m.Config.Styles = styles
	}

	return m, nil
}

// manifestStem derives a component name from the file name:
// "button.style.yaml" → "button".
func manifestStem(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimSuffix(name, ".style")
	return name
}

// styleObjectFromNode converts a YAML mapping node into a StyleObject,
// preserving document order. Scalar values keep their YAML type: integers
// and floats stay numeric so the compiler's unit inference applies.
func styleObjectFromNode(n *yaml.Node) (stylec.StyleObject, error) {
	if n.Kind == yaml.AliasNode {
		return styleObjectFromNode(n.Alias)
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping, got %s", n.Line, nodeKind(n))
	}

	obj := make(stylec.StyleObject, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		value, err := styleValueFromNode(valNode)
		if err != nil {
			return nil, err
		}
		obj = obj.Set(keyNode.Value, value)
	}
	return obj, nil
}

func styleValueFromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return styleObjectFromNode(n)
	case yaml.AliasNode:
		return styleValueFromNode(n.Alias)
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int":
			v, err := strconv.Atoi(n.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
			}
			return v, nil
		case "!!float":
			v, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid float %q", n.Line, n.Value)
			}
			return v, nil
		default:
			// Strings and everything else (bools, dates) pass through as
			// verbatim CSS value text.
			return n.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported value node %s", n.Line, nodeKind(n))
	}
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
