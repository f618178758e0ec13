package typer

import (
	"testing"

	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/diagnostics"
	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

func pos() ast.Position { return ast.Position{Line: 1, Column: 1} }

func testPrelude() *symbols.Table {
	root := symbols.NewTable()
	root.Define(symbols.Symbol{
		Name:     "add",
		Type:     typesystem.FunctionN(Int, Int, Int),
		Location: symbols.BuiltInLocation(),
	})
	return root
}

// Monomorphic identity application: let id x = x; let y = id 1.
func TestTypeModuleIdentityApplication(t *testing.T) {
	m := &ast.Module{
		Position: pos(),
		Name:     "M",
		Lets: []*ast.Let{
			{Position: pos(), Name: "id", ArgNames: []string{"x"}, Body: &ast.IdReference{Position: pos(), Name: "x"}},
			{Position: pos(), Name: "y", Body: &ast.Apply{
				Position: pos(),
				Fun:      &ast.IdReference{Position: pos(), Name: "id"},
				Args:     []ast.Expression{&ast.IntLiteral{Position: pos(), Value: 1}},
			}},
		},
	}

	run := NewRun(testPrelude())
	typed, err := run.TypeModule(m)
	if err != nil {
		t.Fatalf("TypeModule() = %v, want success", err)
	}

	y := typed.Lets[1]
	if y.Type.String() != "Int" {
		t.Errorf("y : %s, want Int", y.Type)
	}
}

// Arity mismatch: let f x y = x; f 1 2 3.
func TestTypeApplyArityMismatch(t *testing.T) {
	m := &ast.Module{
		Position: pos(),
		Name:     "M",
		Lets: []*ast.Let{
			{Position: pos(), Name: "f", ArgNames: []string{"x", "y"}, Body: &ast.IdReference{Position: pos(), Name: "x"}},
			{Position: pos(), Name: "apply3", Body: &ast.Apply{
				Position: pos(),
				Fun:      &ast.IdReference{Position: pos(), Name: "f"},
				Args: []ast.Expression{
					&ast.IntLiteral{Position: pos(), Value: 1},
					&ast.IntLiteral{Position: pos(), Value: 2},
					&ast.IntLiteral{Position: pos(), Value: 3},
				},
			}},
		},
	}

	run := NewRun(testPrelude())
	_, err := run.TypeModule(m)
	if !diagnostics.Is(err, diagnostics.NotAFunction) {
		t.Fatalf("TypeModule() err = %v, want NotAFunction", err)
	}
}

// Occurs check: Apply(f, [f]) where f : alpha.
func TestOccursCheckViaSelfApplication(t *testing.T) {
	m := &ast.Module{
		Position: pos(),
		Name:     "M",
		Lets: []*ast.Let{
			{Position: pos(), Name: "f", ArgNames: []string{"f"}, Body: &ast.Apply{
				Position: pos(),
				Fun:      &ast.IdReference{Position: pos(), Name: "f"},
				Args:     []ast.Expression{&ast.IdReference{Position: pos(), Name: "f"}},
			}},
		},
	}

	run := NewRun(testPrelude())
	_, err := run.TypeModule(m)
	if !diagnostics.Is(err, diagnostics.RecursiveUnification) {
		t.Fatalf("TypeModule() err = %v, want RecursiveUnification", err)
	}
}

// Substitution store is cleared between sibling lets: typing `let f x = x`
// then `let g = f` must not carry f's argument variable into g's inference.
func TestSubstitutionStoreClearedBetweenSiblingLets(t *testing.T) {
	m := &ast.Module{
		Position: pos(),
		Name:     "M",
		Lets: []*ast.Let{
			{Position: pos(), Name: "f", ArgNames: []string{"x"}, Body: &ast.IdReference{Position: pos(), Name: "x"}},
			{Position: pos(), Name: "g", Body: &ast.IdReference{Position: pos(), Name: "f"}},
		},
	}

	run := NewRun(testPrelude())
	typed, err := run.TypeModule(m)
	if err != nil {
		t.Fatalf("TypeModule() = %v, want success", err)
	}
	if len(run.Subst) != 0 {
		t.Errorf("substitution store not cleared after last let: %v", run.Subst)
	}
	g := typed.Lets[1]
	f := typed.Lets[0]
	if g.Type.String() != f.Type.String() {
		t.Errorf("g : %s, want same as f : %s", g.Type, f.Type)
	}
}

// Module cross-reference: let f x = x; let g x = f x. During typing of g,
// the scope contains a Function symbol for f.
func TestModuleCrossReferencePushesFunctionSymbol(t *testing.T) {
	m := &ast.Module{
		Position: pos(),
		Name:     "M",
		Lets: []*ast.Let{
			{Position: pos(), Name: "f", ArgNames: []string{"x"}, Body: &ast.IdReference{Position: pos(), Name: "x"}},
			{Position: pos(), Name: "g", ArgNames: []string{"x"}, Body: &ast.Apply{
				Position: pos(),
				Fun:      &ast.IdReference{Position: pos(), Name: "f"},
				Args:     []ast.Expression{&ast.IdReference{Position: pos(), Name: "x"}},
			}},
		},
	}

	run := NewRun(testPrelude())
	typed, err := run.TypeModule(m)
	if err != nil {
		t.Fatalf("TypeModule() = %v, want success", err)
	}

	gBody, ok := typed.Lets[1].Body.(*ast.TypedApply)
	if !ok {
		t.Fatalf("g's body is %T, want *ast.TypedApply", typed.Lets[1].Body)
	}
	if gBody.Fun.Symbol.Location.Kind != symbols.Function {
		t.Errorf("f's symbol location kind = %v, want Function", gBody.Fun.Symbol.Location.Kind)
	}
}

func TestUnknownSymbolError(t *testing.T) {
	m := &ast.Module{
		Position: pos(),
		Name:     "M",
		Lets: []*ast.Let{
			{Position: pos(), Name: "bad", Body: &ast.IdReference{Position: pos(), Name: "nope"}},
		},
	}

	run := NewRun(testPrelude())
	_, err := run.TypeModule(m)
	if !diagnostics.Is(err, diagnostics.UnknownSymbol) {
		t.Fatalf("TypeModule() err = %v, want UnknownSymbol", err)
	}
}

func TestLetWithDeclaredType(t *testing.T) {
	declared := ast.ArrowType{Args: []ast.Type{ast.ConType{Name: "Int"}}, Result: ast.ConType{Name: "Int"}}
	m := &ast.Module{
		Position: pos(),
		Name:     "M",
		Lets: []*ast.Let{
			{Position: pos(), Name: "identity", ArgNames: []string{"x"}, DeclaredType: declared, Body: &ast.IdReference{Position: pos(), Name: "x"}},
		},
	}

	run := NewRun(testPrelude())
	typed, err := run.TypeModule(m)
	if err != nil {
		t.Fatalf("TypeModule() = %v, want success", err)
	}
	if typed.Lets[0].Type.String() != "(Int -> Int)" {
		t.Errorf("identity : %s, want (Int -> Int)", typed.Lets[0].Type)
	}
}
