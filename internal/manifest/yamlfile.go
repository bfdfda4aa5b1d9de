package manifest

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML manifest errors.
var (
	ErrYAMLNotMapping = errors.New("YAML manifest must be a mapping of id to command")
	ErrYAMLBadValue   = errors.New("YAML manifest values must be scalar commands")
)

// YAMLToProcLines converts a YAML process manifest to Procfile-form lines.
// The document must be a single mapping of process id to command string:
//
//	web: bin/server --port=$PORT
//	worker: bin/worker
//
// Decoding goes through yaml.Node rather than a map so that declaration
// order is preserved; launch order follows the file top to bottom.
func YAMLToProcLines(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML manifest: %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrYAMLNotMapping
	}

	// Mapping content alternates key, value.
	lines := make([]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		value := root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrYAMLBadValue, key.Value, value.Line)
		}
		lines = append(lines, key.Value+":"+value.Value)
	}

	return lines, nil
}
