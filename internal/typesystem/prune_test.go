package typesystem

import "testing"

func TestRecursivePruneDescendsIntoConstructorArgs(t *testing.T) {
	s := NewSubst()
	mustBindForTest(s, 1, TypeConstructor{Name: "Int"})

	pair := TypeConstructor{Name: "Pair", Args: []Type{TypeVariable{ID: 1}, TypeVariable{ID: 1}}}
	pruned := RecursivePrune(s, pair)

	c, ok := pruned.(TypeConstructor)
	if !ok {
		t.Fatalf("pruned is %T, want TypeConstructor", pruned)
	}
	for i, a := range c.Args {
		if a.String() != "Int" {
			t.Errorf("arg[%d] = %s, want Int", i, a)
		}
	}
}

func TestPruneIsNonRecursiveIntoConstructorArgs(t *testing.T) {
	s := NewSubst()
	mustBindForTest(s, 1, TypeConstructor{Name: "Int"})

	pair := TypeConstructor{Name: "Pair", Args: []Type{TypeVariable{ID: 1}}}
	pruned := Prune(s, pair)

	c, ok := pruned.(TypeConstructor)
	if !ok {
		t.Fatalf("pruned is %T, want TypeConstructor", pruned)
	}
	if _, stillVar := c.Args[0].(TypeVariable); !stillVar {
		t.Errorf("Prune unexpectedly descended into constructor args: %s", c.Args[0])
	}
}

func TestRecursivePruneIsFixedPoint(t *testing.T) {
	s := NewSubst()
	mustBindForTest(s, 1, TypeVariable{ID: 2})
	mustBindForTest(s, 2, TypeConstructor{Name: "Bool"})

	once := RecursivePrune(s, TypeVariable{ID: 1})
	twice := RecursivePrune(s, once)
	if once.String() != twice.String() {
		t.Errorf("RecursivePrune not a fixed point: %s then %s", once, twice)
	}
	if once.String() != "Bool" {
		t.Errorf("RecursivePrune(v1) = %s, want Bool", once)
	}
}

func mustBindForTest(s Subst, id int64, t Type) {
	s.bind(id, t)
}
