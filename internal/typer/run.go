// Package typer walks a raw AST and produces a fully typed one, resolving
// type variables through unification and substitution, using a mutable
// context struct threaded by reference through one pass rather than a state
// monad.
package typer

import (
	"github.com/google/uuid"

	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// Int, Bool and String are the primitive type constants produced for
// literals.
var (
	Int    = typesystem.TypeConstructor{Name: "Int"}
	Bool   = typesystem.TypeConstructor{Name: "Bool"}
	String = typesystem.TypeConstructor{Name: "String"}
)

// Run holds everything owned by a single typing pass: the scope stack, the
// substitution store, and the fresh-variable counter.
// None of it is safe to share across goroutines or across runs; ID exists
// only to correlate log lines and diagnostics for one run.
type Run struct {
	ID      uuid.UUID
	Scope   *symbols.Table
	Subst   typesystem.Subst
	counter typesystem.Counter
}

// NewRun starts a new typing run rooted at the given prelude scope.
func NewRun(prelude *symbols.Table) *Run {
	return &Run{
		ID:    uuid.New(),
		Scope: prelude,
		Subst: typesystem.NewSubst(),
	}
}

// Fresh returns a new type variable owned by this run.
func (r *Run) Fresh() typesystem.TypeVariable {
	return r.counter.Fresh()
}

// ClearSubst discards all substitutions accumulated so far, the way Module
// clears the store between sibling top-level lets.
func (r *Run) ClearSubst() {
	r.Subst = typesystem.NewSubst()
}
