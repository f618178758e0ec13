package typer

import (
	"fmt"

	"github.com/DogeDapp/lambda-doge/internal/ast"
)

// typeExpr dispatches on the raw node's shape and returns its typed
// counterpart.
func typeExpr(run *Run, n ast.Expression) (ast.TypedExpression, error) {
	switch node := n.(type) {
	case *ast.IntLiteral:
		return typeIntLiteral(node), nil
	case *ast.BoolLiteral:
		return typeBoolLiteral(node), nil
	case *ast.StringLiteral:
		return typeStringLiteral(node), nil
	case *ast.IdReference:
		return typeReference(run, node)
	case *ast.Apply:
		return typeApply(run, node)
	case *ast.Lambda:
		return typeLambda(run, node)
	default:
		panic(fmt.Sprintf("typer: unhandled raw expression %T", n))
	}
}
