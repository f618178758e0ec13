package prelude

import (
	"fmt"
	"strings"

	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// parseTypeExpr reads the tiny right-associative arrow grammar used by
// prelude YAML type strings: a sequence of bare constructor names separated
// by " -> ", e.g. "Int -> Int -> Bool" means Function(Int, Function(Int,
// Bool)). There are no type variables, no parentheses and no applied
// constructors in prelude signatures — every built-in in this language's
// prelude is monomorphic over ground types.
func parseTypeExpr(expr string) (typesystem.Type, error) {
	parts := strings.Split(expr, "->")
	if len(parts) == 0 {
		return nil, fmt.Errorf("prelude: empty type expression")
	}

	names := make([]string, len(parts))
	for i, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			return nil, fmt.Errorf("prelude: malformed type expression %q", expr)
		}
		names[i] = name
	}

	result := typesystem.Type(typesystem.TypeConstructor{Name: names[len(names)-1]})
	args := make([]typesystem.Type, 0, len(names)-1)
	for _, n := range names[:len(names)-1] {
		args = append(args, typesystem.TypeConstructor{Name: n})
	}
	return typesystem.FunctionN(result, args...), nil
}
