package typer

import "github.com/DogeDapp/lambda-doge/internal/ast"

func typeIntLiteral(n *ast.IntLiteral) *ast.TypedIntLiteral {
	return &ast.TypedIntLiteral{Position: n.Position, Value: n.Value, Type: Int}
}

func typeBoolLiteral(n *ast.BoolLiteral) *ast.TypedBoolLiteral {
	return &ast.TypedBoolLiteral{Position: n.Position, Value: n.Value, Type: Bool}
}

func typeStringLiteral(n *ast.StringLiteral) *ast.TypedStringLiteral {
	return &ast.TypedStringLiteral{Position: n.Position, Value: n.Value, Type: String}
}
