package typer

import (
	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/diagnostics"
	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// typeLambda allocates a fresh variable per argument, types the body in a
// pushed scope, prunes argument and body types, and returns a typed lambda
// whose type is FunctionN(prunedBody, prunedArgs...).
func typeLambda(run *Run, n *ast.Lambda) (ast.TypedExpression, error) {
	argTypes := make([]typesystem.Type, len(n.ArgNames))
	syms := make([]symbols.Symbol, len(n.ArgNames))
	for i, name := range n.ArgNames {
		fresh := run.Fresh()
		argTypes[i] = fresh
		syms[i] = symbols.Symbol{Name: name, Type: fresh, Location: symbols.ArgumentLocation()}
	}

	run.Scope = run.Scope.Push(symbols.ScopeLambda, syms)

	body, err := typeExpr(run, n.Body)
	if err != nil {
		return nil, err
	}

	prunedArgs := make([]ast.TypedArg, len(n.ArgNames))
	prunedArgTypes := make([]typesystem.Type, len(n.ArgNames))
	for i, name := range n.ArgNames {
		pruned := typesystem.RecursivePrune(run.Subst, argTypes[i])
		prunedArgs[i] = ast.TypedArg{Name: name, Type: pruned}
		prunedArgTypes[i] = pruned
	}
	prunedBody := typesystem.RecursivePrune(run.Subst, body.TypeOf())

	popped, err := run.Scope.Pop()
	if err != nil {
		return nil, diagnostics.New(diagnostics.ScopeUnderflow, n.Position, "popped lambda scope with no enclosing frame")
	}
	run.Scope = popped

	return &ast.TypedLambda{
		Position: n.Position,
		Args:     prunedArgs,
		Body:     body,
		Type:     typesystem.FunctionN(prunedBody, prunedArgTypes...),
	}, nil
}
