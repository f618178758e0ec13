// Package diagnostics implements the structured, position-carrying error
// values surfaced by the typer and closure lifter.
package diagnostics

import (
	"fmt"

	"github.com/DogeDapp/lambda-doge/internal/ast"
)

// ErrorCode identifies the category of a typing or lifting failure.
type ErrorCode string

const (
	// UnknownSymbol: a referenced name is not in scope.
	UnknownSymbol ErrorCode = "UnknownSymbol"
	// TypeMismatch: two constructors of different name or arity were
	// required to unify.
	TypeMismatch ErrorCode = "TypeMismatch"
	// RecursiveUnification: a type variable would have to occur within
	// itself.
	RecursiveUnification ErrorCode = "RecursiveUnification"
	// NotAFunction: an apply peeled more arrows than the callee's type
	// contained.
	NotAFunction ErrorCode = "NotAFunction"
	// ClassUnificationUnsupported: two qualified types with different
	// predicates met in unification.
	ClassUnificationUnsupported ErrorCode = "ClassUnificationUnsupported"
	// ScopeUnderflow: an internal invariant break — popping a scope with no
	// enclosing frame. Aborts the run.
	ScopeUnderflow ErrorCode = "ScopeUnderflow"
)

// Error is the single error type produced by the core. It always carries the
// source position of the most-specific AST node involved.
type Error struct {
	Code    ErrorCode
	Pos     ast.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos.String(), e.Code, e.Message)
}

// New constructs an Error with a formatted message.
func New(code ErrorCode, pos ast.Position, format string, args ...interface{}) *Error {
	return &Error{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a diagnostics.Error with the given code, so
// callers (and tests) can assert on error category without a type switch.
func Is(err error, code ErrorCode) bool {
	de, ok := err.(*Error)
	return ok && de.Code == code
}
