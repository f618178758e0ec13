package prelude

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/DogeDapp/lambda-doge/internal/config"
	"github.com/DogeDapp/lambda-doge/internal/symbols"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the root symbol table built from the embedded default
// prelude, covering the arithmetic, comparison, boolean and string built-ins
// exercised by the worked scenarios in this repository's tests.
func Default() (*symbols.Table, error) {
	doc, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("prelude: loading default: %w", err)
	}
	return Build(doc)
}

// LoadFile reads and builds a root symbol table from a prelude document on
// disk, for callers that want to override or extend the embedded default
// (e.g. the demo CLI invoked against a project-local prelude). path must end
// in config.PreludeFileExt.
func LoadFile(path string) (*symbols.Table, error) {
	if !strings.HasSuffix(path, config.PreludeFileExt) {
		return nil, fmt.Errorf("prelude: %s: must have %s extension", path, config.PreludeFileExt)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prelude: reading %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Build constructs a root (prelude) symbol table from a parsed document,
// every entry carrying symbols.BuiltInLocation().
func Build(doc *Document) (*symbols.Table, error) {
	table := symbols.NewTable()
	for _, b := range doc.Builtins {
		t, err := parseTypeExpr(b.Type)
		if err != nil {
			return nil, fmt.Errorf("prelude: builtin %q: %w", b.Name, err)
		}
		table.Define(symbols.Symbol{Name: b.Name, Type: t, Location: symbols.BuiltInLocation()})
	}
	return table, nil
}
