package typer

import (
	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/diagnostics"
	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// typeLet forms argument symbols (from the declared type when present,
// otherwise fresh variables), types the body in a pushed scope, unifies the
// inferred body type with any declared result type, prunes argument and
// result types and pops the scope. A let's own name is
// deliberately NOT pre-registered in its own scope — recursive
// self-reference is a known, left-open limitation.
func typeLet(run *Run, n *ast.Let) (*ast.TypedLet, error) {
	argTypes := make([]typesystem.Type, len(n.ArgNames))
	var declaredResult typesystem.Type

	if n.DeclaredType != nil {
		declared := resolveDeclaredType(n.DeclaredType)
		declaredArgs, result := typesystem.DeconstructArgsN(declared, len(n.ArgNames))
		declaredResult = result
		for i := range argTypes {
			if i < len(declaredArgs) {
				argTypes[i] = declaredArgs[i]
			} else {
				argTypes[i] = run.Fresh()
			}
		}
	} else {
		for i := range argTypes {
			argTypes[i] = run.Fresh()
		}
	}

	syms := make([]symbols.Symbol, len(n.ArgNames))
	for i, name := range n.ArgNames {
		syms[i] = symbols.Symbol{Name: name, Type: argTypes[i], Location: symbols.ArgumentLocation()}
	}
	run.Scope = run.Scope.Push(symbols.ScopeLet, syms)

	body, err := typeExpr(run, n.Body)
	if err != nil {
		return nil, err
	}

	resultType := body.TypeOf()
	if declaredResult != nil {
		unified, err := typesystem.Unify(run.Subst, body.TypeOf(), declaredResult, n.Position)
		if err != nil {
			return nil, err
		}
		resultType = unified
	}

	prunedArgs := make([]ast.TypedArg, len(n.ArgNames))
	prunedArgTypes := make([]typesystem.Type, len(n.ArgNames))
	for i, name := range n.ArgNames {
		pruned := typesystem.RecursivePrune(run.Subst, argTypes[i])
		prunedArgs[i] = ast.TypedArg{Name: name, Type: pruned}
		prunedArgTypes[i] = pruned
	}
	prunedResult := typesystem.RecursivePrune(run.Subst, resultType)

	popped, err := run.Scope.Pop()
	if err != nil {
		return nil, diagnostics.New(diagnostics.ScopeUnderflow, n.Position, "popped let scope with no enclosing frame")
	}
	run.Scope = popped

	return &ast.TypedLet{
		Position: n.Position,
		Name:     n.Name,
		Args:     prunedArgs,
		Body:     body,
		Type:     typesystem.FunctionN(prunedResult, prunedArgTypes...),
	}, nil
}
