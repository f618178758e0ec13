package ast

// Expression is any raw AST node that can appear where a value is expected.
type Expression interface {
	Pos() Position
	exprNode()
}

// IdReference is a reference to a named binding: a let, a lambda argument, or
// a prelude built-in.
type IdReference struct {
	Position Position
	Name     string
}

func (n *IdReference) Pos() Position { return n.Position }
func (*IdReference) exprNode()       {}

// IntLiteral is an integer literal.
type IntLiteral struct {
	Position Position
	Value    int64
}

func (n *IntLiteral) Pos() Position { return n.Position }
func (*IntLiteral) exprNode()       {}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	Position Position
	Value    bool
}

func (n *BoolLiteral) Pos() Position { return n.Position }
func (*BoolLiteral) exprNode()       {}

// StringLiteral is a string literal.
type StringLiteral struct {
	Position Position
	Value    string
}

func (n *StringLiteral) Pos() Position { return n.Position }
func (*StringLiteral) exprNode()       {}

// Apply is curried application of a named function to one or more arguments:
// f a1 a2 ... an.
type Apply struct {
	Position Position
	Fun      *IdReference
	Args     []Expression
}

func (n *Apply) Pos() Position { return n.Position }
func (*Apply) exprNode()       {}

// Lambda is an anonymous abstraction over one or more arguments.
type Lambda struct {
	Position Position
	ArgNames []string
	Body     Expression
}

func (n *Lambda) Pos() Position { return n.Position }
func (*Lambda) exprNode()       {}

// Let is a named, possibly curried, top-level or nested binding.
// DeclaredType is nil when the binding carries no type annotation.
type Let struct {
	Position     Position
	Name         string
	ArgNames     []string
	DeclaredType Type // may be nil
	Body         Expression
}

func (n *Let) Pos() Position { return n.Position }
func (*Let) exprNode()       {}

// Module is a sequence of top-level lets, typed and lifted in declaration
// order.
type Module struct {
	Position Position
	Name     string
	Lets     []*Let
}

func (n *Module) Pos() Position { return n.Position }
func (*Module) exprNode()       {}
