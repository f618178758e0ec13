package ast

// Type is the raw syntax for a declared type annotation on a let binding
// (e.g. `let f : Int -> Int -> Bool = ...`). It is deliberately tiny: a named
// constructor with no arguments, or a right-associated arrow chain. Anything
// richer (row polymorphism, type classes, user ADTs) is out of scope.
type Type interface {
	typeNode()
}

// ConType names a nullary type constructor, e.g. Int, Bool, String.
type ConType struct {
	Name string
}

func (ConType) typeNode() {}

// ArrowType is a curried function type: Args[0] -> Args[1] -> ... -> Result.
type ArrowType struct {
	Args   []Type
	Result Type
}

func (ArrowType) typeNode() {}
