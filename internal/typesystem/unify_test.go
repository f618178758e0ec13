package typesystem

import (
	"testing"

	"github.com/DogeDapp/lambda-doge/internal/ast"
)

var noPos = ast.Position{Line: 1, Column: 1}

func mustUnify(t *testing.T, s Subst, a, b Type) Type {
	t.Helper()
	res, err := Unify(s, a, b, noPos)
	if err != nil {
		t.Fatalf("Unify(%s, %s) = %v, want success", a, b, err)
	}
	return res
}

func TestUnifySameType(t *testing.T) {
	s := NewSubst()
	before := len(s)
	result := mustUnify(t, s, TypeConstructor{Name: "Int"}, TypeConstructor{Name: "Int"})
	if result.String() != "Int" {
		t.Errorf("result = %s, want Int", result)
	}
	if len(s) != before {
		t.Errorf("unify(t, t) added substitutions: %v", s)
	}
}

func TestUnifyVariableBindsToConstructor(t *testing.T) {
	s := NewSubst()
	v := TypeVariable{ID: 1}
	result := mustUnify(t, s, v, TypeConstructor{Name: "Int"})
	if result.String() != "Int" {
		t.Errorf("result = %s, want Int", result)
	}
	if pruned := Prune(s, v); pruned.String() != "Int" {
		t.Errorf("Prune(v) = %s, want Int", pruned)
	}
}

func TestUnifyConstructorMismatch(t *testing.T) {
	s := NewSubst()
	_, err := Unify(s, TypeConstructor{Name: "Int"}, TypeConstructor{Name: "Bool"}, noPos)
	if err == nil {
		t.Fatal("expected TypeMismatch, got success")
	}
}

func TestUnifyArityMismatch(t *testing.T) {
	s := NewSubst()
	a := TypeConstructor{Name: "Pair", Args: []Type{TypeConstructor{Name: "Int"}}}
	b := TypeConstructor{Name: "Pair", Args: []Type{TypeConstructor{Name: "Int"}, TypeConstructor{Name: "Int"}}}
	_, err := Unify(s, a, b, noPos)
	if err == nil {
		t.Fatal("expected TypeMismatch on arity mismatch, got success")
	}
}

func TestOccursCheck(t *testing.T) {
	s := NewSubst()
	v := TypeVariable{ID: 1}
	fn := TypeConstructor{Name: FunctionName, Args: []Type{v, TypeConstructor{Name: "Int"}}}
	_, err := Unify(s, v, fn, noPos)
	if err == nil {
		t.Fatal("expected RecursiveUnification, got success")
	}
}

func TestUnifyBothVariablesCanonicalDirection(t *testing.T) {
	s := NewSubst()
	small := TypeVariable{ID: 1}
	large := TypeVariable{ID: 2}
	mustUnify(t, s, large, small)
	if _, bound := s[2]; !bound {
		t.Fatalf("expected variable 2 (larger id) to be bound, subst = %v", s)
	}
	if _, bound := s[1]; bound {
		t.Fatalf("did not expect variable 1 (smaller id) to be bound, subst = %v", s)
	}
}

func TestUnifyQualifiedSamePredicate(t *testing.T) {
	s := NewSubst()
	pred := &Predicate{Class: "Show", Arg: TypeConstructor{Name: "Int"}}
	a := QualifiedType{Predicate: pred, Underlying: TypeVariable{ID: 1}}
	b := QualifiedType{Predicate: pred, Underlying: TypeConstructor{Name: "Int"}}
	result := mustUnify(t, s, a, b)
	q, ok := result.(QualifiedType)
	if !ok {
		t.Fatalf("result is %T, want QualifiedType", result)
	}
	if q.Underlying.String() != "Int" {
		t.Errorf("underlying = %s, want Int", q.Underlying)
	}
}

func TestUnifyQualifiedDifferentPredicateFails(t *testing.T) {
	s := NewSubst()
	a := QualifiedType{Predicate: &Predicate{Class: "Show", Arg: TypeConstructor{Name: "Int"}}, Underlying: TypeConstructor{Name: "Int"}}
	b := QualifiedType{Predicate: &Predicate{Class: "Eq", Arg: TypeConstructor{Name: "Int"}}, Underlying: TypeConstructor{Name: "Int"}}
	_, err := Unify(s, a, b, noPos)
	if err == nil {
		t.Fatal("expected ClassUnificationUnsupported, got success")
	}
}

func TestPruneChainDoesNotGrowWithPathCompression(t *testing.T) {
	s := NewSubst()
	mustUnify(t, s, TypeVariable{ID: 1}, TypeVariable{ID: 2})
	mustUnify(t, s, TypeVariable{ID: 2}, TypeConstructor{Name: "Int"})

	if pruned := Prune(s, TypeVariable{ID: 1}); pruned.String() != "Int" {
		t.Errorf("Prune(v1) = %s, want Int", pruned)
	}
	if bound, ok := s[2]; ok {
		if _, isVar := bound.(TypeVariable); isVar {
			t.Errorf("v2 still chains through a variable after v1 was bound: %v", s)
		}
	}
}

func TestFunctionNAndDeconstructArgs(t *testing.T) {
	fn := FunctionN(TypeConstructor{Name: "Bool"}, TypeConstructor{Name: "Int"}, TypeConstructor{Name: "String"})
	args, result := DeconstructArgs(fn)
	if len(args) != 2 || args[0].String() != "Int" || args[1].String() != "String" {
		t.Errorf("args = %v, want [Int String]", args)
	}
	if result.String() != "Bool" {
		t.Errorf("result = %s, want Bool", result)
	}
}

func TestDeconstructArgsNBounded(t *testing.T) {
	fn := FunctionN(TypeConstructor{Name: "D"}, TypeConstructor{Name: "A"}, TypeConstructor{Name: "B"}, TypeConstructor{Name: "C"})
	args, rest := DeconstructArgsN(fn, 2)
	if len(args) != 2 || args[0].String() != "A" || args[1].String() != "B" {
		t.Errorf("args = %v, want [A B]", args)
	}
	wantRest := FunctionN(TypeConstructor{Name: "D"}, TypeConstructor{Name: "C"})
	if rest.String() != wantRest.String() {
		t.Errorf("rest = %s, want %s", rest, wantRest)
	}
}
