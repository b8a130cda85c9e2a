package parser

import (
	"fmt"
	"io"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
	"github.com/goccy/go-yaml"
)

// YAMLParser handles YAML files. Mapping keys and sequence items become
// nodes; document nesting becomes tree nesting. Key order is preserved.
type YAMLParser struct{}

func (p *YAMLParser) Parse(r io.Reader, filename string) (*outline.Forest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	forest := outline.NewForest()
	addValue(forest, nil, v, 0)
	return forest, nil
}

func addValue(f *outline.Forest, parent *outline.Node, v any, level int) {
	switch val := v.(type) {
	case yaml.MapSlice:
		for _, item := range val {
			key := collapseSpace(fmt.Sprint(item.Key))
			if key == "" {
				addValue(f, parent, item.Value, level)
				continue
			}
			if s, ok := scalarLabel(item.Value); ok {
				// A key with a scalar value folds into one leaf.
				label := key
				if s != "" {
					label = key + ": " + s
				}
				f.NewNode(parent, label, level)
				continue
			}
			node := f.NewNode(parent, key, level)
			addValue(f, node, item.Value, level+1)
		}
	case []any:
		for _, elem := range val {
			if s, ok := scalarLabel(elem); ok {
				if s != "" {
					f.NewNode(parent, s, level)
				}
				continue
			}
			// Container elements merge directly under the parent.
			addValue(f, parent, elem, level)
		}
	default:
		if s, ok := scalarLabel(val); ok && s != "" {
			f.NewNode(parent, s, level)
		}
	}
}

// scalarLabel reports whether v is a scalar, and if so its label form.
func scalarLabel(v any) (string, bool) {
	switch v.(type) {
	case yaml.MapSlice, []any, map[string]any:
		return "", false
	case nil:
		return "", true
	}
	return collapseSpace(fmt.Sprint(v)), true
}
