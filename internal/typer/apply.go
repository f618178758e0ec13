package typer

import (
	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/diagnostics"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// typeApply types the callee reference, then each argument in order,
// constructs the refinement function type Function(arg0, ... Function(argn,
// fresh)), unifies it against the callee's type, and peels off len(args)
// arrows to obtain the result type.
//
// The arity pre-check below only fires when the callee's pruned type is
// already a concrete constructor with too few arrows: a bare, still-unresolved
// type variable carries no information yet about how many arguments it can
// accept, and must be left to Unify (which will bind it to the needed
// Function shape, or fail the occurs check, or fail a later mismatch) rather
// than rejected here.
func typeApply(run *Run, n *ast.Apply) (ast.TypedExpression, error) {
	ref, err := typeReference(run, n.Fun)
	if err != nil {
		return nil, err
	}

	typedArgs := make([]ast.TypedExpression, len(n.Args))
	for i, a := range n.Args {
		typed, err := typeExpr(run, a)
		if err != nil {
			return nil, err
		}
		typedArgs[i] = typed
	}

	prunedRef := typesystem.RecursivePrune(run.Subst, ref.Type)
	if _, isConcrete := prunedRef.(typesystem.TypeConstructor); isConcrete {
		available, _ := typesystem.DeconstructArgs(prunedRef)
		if len(available) < len(typedArgs) {
			return nil, diagnostics.New(diagnostics.NotAFunction, typedArgs[len(available)].Pos(),
				"%s accepts %d argument(s), but is applied to %d", n.Fun.Name, len(available), len(typedArgs))
		}
	}

	argTypes := make([]typesystem.Type, len(typedArgs))
	for i, a := range typedArgs {
		argTypes[i] = a.TypeOf()
	}
	fresh := run.Fresh()
	refinement := typesystem.FunctionN(fresh, argTypes...)

	unified, err := typesystem.Unify(run.Subst, ref.Type, refinement, n.Position)
	if err != nil {
		return nil, err
	}

	_, resultType := typesystem.DeconstructArgsN(unified, len(typedArgs))

	return &ast.TypedApply{Position: n.Position, Fun: ref, Args: typedArgs, Type: resultType}, nil
}
