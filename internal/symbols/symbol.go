// Package symbols implements the lexically-scoped symbol table: a LIFO stack
// of scope frames rooted at a caller-supplied prelude frame.
package symbols

import "github.com/DogeDapp/lambda-doge/internal/typesystem"

// LocationKind classifies where a resolved reference's value comes from.
type LocationKind int

const (
	// Argument is a lambda or let parameter bound in an enclosing scope.
	Argument LocationKind = iota
	// BuiltIn is a prelude-provided symbol.
	BuiltIn
	// Function is a plain, previously-typed top-level let, pushed into the
	// enclosing scope by Module so later lets can reference earlier ones
	// Module pushes one into the enclosing scope for each finished let.
	Function
	// StaticMethod is a synthesized top-level helper produced by the
	// closure lifter, callable as a plain function of its owning module.
	StaticMethod
)

func (k LocationKind) String() string {
	switch k {
	case Argument:
		return "Argument"
	case BuiltIn:
		return "BuiltIn"
	case Function:
		return "Function"
	case StaticMethod:
		return "StaticMethod"
	default:
		return "Unknown"
	}
}

// Location classifies a Symbol's origin. Module/Method/ArgTypes/ReturnType
// are only populated when Kind == StaticMethod.
type Location struct {
	Kind       LocationKind
	Module     string
	Method     string
	ArgTypes   []typesystem.Type
	ReturnType typesystem.Type
}

// ArgumentLocation is the Location of a lambda or let parameter.
func ArgumentLocation() Location { return Location{Kind: Argument} }

// BuiltInLocation is the Location of a prelude symbol.
func BuiltInLocation() Location { return Location{Kind: BuiltIn} }

// FunctionLocation is the Location of a plain top-level let.
func FunctionLocation() Location { return Location{Kind: Function} }

// StaticMethodLocation is the Location of a closure-lifter-synthesized
// helper, owned by module and callable as method with the given signature.
func StaticMethodLocation(module, method string, argTypes []typesystem.Type, returnType typesystem.Type) Location {
	return Location{Kind: StaticMethod, Module: module, Method: method, ArgTypes: argTypes, ReturnType: returnType}
}

// Symbol is a named, typed binding together with its Location.
type Symbol struct {
	Name     string
	Type     typesystem.Type
	Location Location
}
