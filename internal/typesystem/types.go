// Package typesystem implements the type representation, substitution store,
// unifier and pruning pass described by the typer: a Hindley-Milner-style
// algebra of type variables, type constructors and qualified types.
package typesystem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DogeDapp/lambda-doge/internal/config"
)

// Type is the interface implemented by all four type variants.
type Type interface {
	String() string
}

// TypeVariable is a fresh, globally unique identifier within one typing run.
// Two variables are equal iff their IDs are equal.
type TypeVariable struct {
	ID int64
}

func (v TypeVariable) String() string {
	if config.IsTestMode {
		return "t?"
	}
	return "t" + strconv.FormatInt(v.ID, 10)
}

// FunctionName is the distinguished TypeConstructor name that encodes unary
// function types. Multi-argument functions are right-associated curried
// chains of Function(a, Function(b, ... r)).
const FunctionName = "Function"

// TypeConstructor is a named type with an ordered sequence of arguments. A
// zero-argument TypeConstructor is a nullary type constant such as Int.
type TypeConstructor struct {
	Name string
	Args []Type
}

func (c TypeConstructor) String() string {
	if c.Name == FunctionName && len(c.Args) == 2 {
		return fmt.Sprintf("(%s -> %s)", c.Args[0].String(), c.Args[1].String())
	}
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", c.Name, strings.Join(parts, ", "))
}

// Predicate is a class constraint attached to a QualifiedType, e.g. "Show a".
// Equality between two predicates is string/structural equality; there is no
// class environment (predicates are compared by SamePredicate, and Unify
// fails with ClassUnificationUnsupported when they differ).
type Predicate struct {
	Class string
	Arg   Type
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s", p.Class, p.Arg.String())
}

func (p Predicate) equal(o Predicate) bool {
	return p.Class == o.Class && p.Arg.String() == o.Arg.String()
}

// QualifiedType carries an optional predicate over an underlying type. Only
// the underlying type participates in unification unless both sides carry an
// equal predicate.
type QualifiedType struct {
	Predicate  *Predicate
	Underlying Type
}

func (q QualifiedType) String() string {
	if q.Predicate == nil {
		return q.Underlying.String()
	}
	return fmt.Sprintf("%s => %s", q.Predicate.String(), q.Underlying.String())
}

// SamePredicate reports whether two QualifiedTypes carry equal predicates
// (both nil counts as equal).
func SamePredicate(a, b QualifiedType) bool {
	if a.Predicate == nil && b.Predicate == nil {
		return true
	}
	if a.Predicate == nil || b.Predicate == nil {
		return false
	}
	return a.Predicate.equal(*b.Predicate)
}

// Counter is the monotonically increasing fresh-variable source for a single
// typing run. It must not be shared across runs.
type Counter struct {
	next int64
}

// Fresh returns a new, unique TypeVariable.
func (c *Counter) Fresh() TypeVariable {
	c.next++
	return TypeVariable{ID: c.next}
}

// FunctionN folds right to build a curried function type:
// FunctionN(r, a1, a2, a3) = Function(a1, Function(a2, Function(a3, r))).
func FunctionN(result Type, args ...Type) Type {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = TypeConstructor{Name: FunctionName, Args: []Type{args[i], t}}
	}
	return t
}

// DeconstructArgs flattens a curried function type into its argument types
// and final return type. A non-function type returns (nil, t).
func DeconstructArgs(t Type) ([]Type, Type) {
	var args []Type
	for {
		fn, ok := t.(TypeConstructor)
		if !ok || fn.Name != FunctionName || len(fn.Args) != 2 {
			return args, t
		}
		args = append(args, fn.Args[0])
		t = fn.Args[1]
	}
}

// DeconstructArgsN is the bounded variant: it stops after peeling at most k
// arrows, treating whatever remains (function or not) as the return type.
// Used by the closure lifter to express "after receiving k more arguments,
// the result is ...".
func DeconstructArgsN(t Type, k int) ([]Type, Type) {
	var args []Type
	for len(args) < k {
		fn, ok := t.(TypeConstructor)
		if !ok || fn.Name != FunctionName || len(fn.Args) != 2 {
			break
		}
		args = append(args, fn.Args[0])
		t = fn.Args[1]
	}
	return args, t
}

// Arity returns the number of arrows a curried function type can be peeled
// through (0 for a non-function type).
func Arity(t Type) int {
	args, _ := DeconstructArgs(t)
	return len(args)
}
