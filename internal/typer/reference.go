package typer

import (
	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/diagnostics"
)

// typeReference resolves an IdReference against the run's current scope.
func typeReference(run *Run, n *ast.IdReference) (*ast.TypedIdReference, error) {
	sym, ok := run.Scope.Lookup(n.Name)
	if !ok {
		return nil, diagnostics.New(diagnostics.UnknownSymbol, n.Position, "unknown symbol %q", n.Name)
	}
	return &ast.TypedIdReference{Position: n.Position, Name: n.Name, Symbol: sym, Type: sym.Type}, nil
}
