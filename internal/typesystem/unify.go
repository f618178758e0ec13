package typesystem

import (
	"log"

	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/config"
	"github.com/DogeDapp/lambda-doge/internal/diagnostics"
)

// Unify attempts to find the most general type common to t1 and t2, mutating
// s with any new bindings. On success it returns the unified type; on
// failure it returns a *diagnostics.Error positioned at pos and leaves s
// unchanged for the entries that would have come from the failed branch
// (earlier successful sub-unifications in the same call remain applied, per
// unification is not rolled back on partial failure).
func Unify(s Subst, t1, t2 Type, pos ast.Position) (Type, error) {
	if config.IsTraceMode {
		log.Printf("typesystem: unify %s ~ %s at %s", t1, t2, pos)
	}

	t1 = Prune(s, t1)
	t2 = Prune(s, t2)

	q1, q1ok := t1.(QualifiedType)
	q2, q2ok := t2.(QualifiedType)

	if q1ok && q2ok {
		if !SamePredicate(q1, q2) {
			return nil, diagnostics.New(diagnostics.ClassUnificationUnsupported, pos,
				"cannot unify qualified types with different predicates: %s vs %s", q1, q2)
		}
		underlying, err := Unify(s, q1.Underlying, q2.Underlying, pos)
		if err != nil {
			return nil, err
		}
		return QualifiedType{Predicate: q1.Predicate, Underlying: underlying}, nil
	}
	if q1ok {
		return Unify(s, q1.Underlying, t2, pos)
	}
	if q2ok {
		return Unify(s, t1, q2.Underlying, pos)
	}

	v1, v1ok := t1.(TypeVariable)
	v2, v2ok := t2.(TypeVariable)

	if v1ok && v2ok {
		if v1.ID == v2.ID {
			return t1, nil
		}
		// Canonical direction: bind the larger id to the smaller one, to
		// keep chains shallow and deterministic.
		lo, hi := v1, v2
		if hi.ID < lo.ID {
			lo, hi = hi, lo
		}
		s.bind(hi.ID, lo)
		return lo, nil
	}
	if v1ok {
		return bindVariable(s, v1, t2, pos)
	}
	if v2ok {
		return bindVariable(s, v2, t1, pos)
	}

	c1, c1ok := t1.(TypeConstructor)
	c2, c2ok := t2.(TypeConstructor)
	if c1ok && c2ok {
		if c1.Name != c2.Name || len(c1.Args) != len(c2.Args) {
			return nil, diagnostics.New(diagnostics.TypeMismatch, pos,
				"cannot unify %s with %s", c1, c2)
		}
		args := make([]Type, len(c1.Args))
		for i := range c1.Args {
			u, err := Unify(s, c1.Args[i], c2.Args[i], pos)
			if err != nil {
				return nil, err
			}
			args[i] = u
		}
		return TypeConstructor{Name: c1.Name, Args: args}, nil
	}

	return nil, diagnostics.New(diagnostics.TypeMismatch, pos, "cannot unify %s with %s", t1, t2)
}

// bindVariable binds tv to t after an occurs check, mutating s.
func bindVariable(s Subst, tv TypeVariable, t Type, pos ast.Position) (Type, error) {
	if OccursCheck(tv.ID, t) {
		return nil, diagnostics.New(diagnostics.RecursiveUnification, pos,
			"type variable %s occurs in %s", tv, t)
	}
	s.bind(tv.ID, t)
	return t, nil
}

// OccursCheck reports whether the variable with the given id appears free
// within t: structurally within a constructor's arguments, or within a
// qualified type's underlying; a bare variable matches only itself.
func OccursCheck(id int64, t Type) bool {
	switch v := t.(type) {
	case TypeVariable:
		return v.ID == id
	case TypeConstructor:
		for _, a := range v.Args {
			if OccursCheck(id, a) {
				return true
			}
		}
		return false
	case QualifiedType:
		return OccursCheck(id, v.Underlying)
	default:
		return false
	}
}
