package ast

import (
	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// TypedExpression mirrors Expression but every node carries its resolved
// type.
type TypedExpression interface {
	Pos() Position
	TypeOf() typesystem.Type
	typedExprNode()
}

// TypedArg is a lambda or let parameter together with its resolved type.
type TypedArg struct {
	Name string
	Type typesystem.Type
}

// TypedIdReference is a reference carrying its resolved symbol.
type TypedIdReference struct {
	Position Position
	Name     string
	Symbol   symbols.Symbol
	Type     typesystem.Type
}

func (n *TypedIdReference) Pos() Position           { return n.Position }
func (n *TypedIdReference) TypeOf() typesystem.Type { return n.Type }
func (*TypedIdReference) typedExprNode()            {}

// TypedIntLiteral, TypedBoolLiteral, TypedStringLiteral mirror their raw
// counterparts.
type TypedIntLiteral struct {
	Position Position
	Value    int64
	Type     typesystem.Type
}

func (n *TypedIntLiteral) Pos() Position           { return n.Position }
func (n *TypedIntLiteral) TypeOf() typesystem.Type { return n.Type }
func (*TypedIntLiteral) typedExprNode()            {}

type TypedBoolLiteral struct {
	Position Position
	Value    bool
	Type     typesystem.Type
}

func (n *TypedBoolLiteral) Pos() Position           { return n.Position }
func (n *TypedBoolLiteral) TypeOf() typesystem.Type { return n.Type }
func (*TypedBoolLiteral) typedExprNode()            {}

type TypedStringLiteral struct {
	Position Position
	Value    string
	Type     typesystem.Type
}

func (n *TypedStringLiteral) Pos() Position           { return n.Position }
func (n *TypedStringLiteral) TypeOf() typesystem.Type { return n.Type }
func (*TypedStringLiteral) typedExprNode()            {}

// TypedApply is a fully typed application node. Fun is a typed reference to
// the applied function (possibly rewritten by the closure lifter to point at
// a synthesized helper).
type TypedApply struct {
	Position Position
	Fun      *TypedIdReference
	Args     []TypedExpression
	Type     typesystem.Type
}

func (n *TypedApply) Pos() Position           { return n.Position }
func (n *TypedApply) TypeOf() typesystem.Type { return n.Type }
func (*TypedApply) typedExprNode()            {}

// TypedLambda is a fully typed anonymous abstraction.
type TypedLambda struct {
	Position Position
	Args     []TypedArg
	Body     TypedExpression
	Type     typesystem.Type
}

func (n *TypedLambda) Pos() Position           { return n.Position }
func (n *TypedLambda) TypeOf() typesystem.Type { return n.Type }
func (*TypedLambda) typedExprNode()            {}

// TypedLet is a fully typed named binding.
type TypedLet struct {
	Position Position
	Name     string
	Args     []TypedArg
	Body     TypedExpression
	Type     typesystem.Type
}

func (n *TypedLet) Pos() Position           { return n.Position }
func (n *TypedLet) TypeOf() typesystem.Type { return n.Type }
func (*TypedLet) typedExprNode()            {}

// TypedModule is the typer's and closure lifter's top-level output: the
// original lets in declaration order, each possibly followed (after lifting)
// by synthesized helper lets.
type TypedModule struct {
	Position Position
	Name     string
	Lets     []*TypedLet
}
