// Package prelude loads a YAML-described set of built-in symbols into a root
// symbol table. There is nothing to introspect or code-generate here: a
// prelude document is just a flat list of names and type signatures.
package prelude

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the parsed shape of a prelude YAML file.
type Document struct {
	Builtins []BuiltinSpec `yaml:"builtins"`
}

// BuiltinSpec names one prelude symbol and its type, written in the tiny
// arrow-chain grammar accepted by parseTypeExpr (e.g. "Int -> Int -> Bool").
type BuiltinSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Parse decodes prelude YAML content.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("prelude: parsing document: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	seen := make(map[string]bool, len(d.Builtins))
	for i, b := range d.Builtins {
		if b.Name == "" {
			return fmt.Errorf("prelude: builtins[%d]: name is required", i)
		}
		if b.Type == "" {
			return fmt.Errorf("prelude: builtins[%d] (%s): type is required", i, b.Name)
		}
		if seen[b.Name] {
			return fmt.Errorf("prelude: builtins[%d]: duplicate name %q", i, b.Name)
		}
		seen[b.Name] = true
	}
	return nil
}
