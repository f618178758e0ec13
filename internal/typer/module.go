package typer

import (
	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// TypeModule is the public entry point. It types each
// top-level let in declaration order, clearing the substitution store
// between siblings and pushing a Function symbol for
// each finished let into the enclosing scope so later lets can reference
// earlier ones. The final typed module is run through the prune
// pass before being returned.
func (r *Run) TypeModule(m *ast.Module) (*ast.TypedModule, error) {
	lets := make([]*ast.TypedLet, 0, len(m.Lets))

	for _, raw := range m.Lets {
		r.ClearSubst()

		typed, err := typeLet(r, raw)
		if err != nil {
			return nil, err
		}
		lets = append(lets, typed)

		r.Scope.Define(symbols.Symbol{
			Name:     typed.Name,
			Type:     typed.Type,
			Location: symbols.FunctionLocation(),
		})
	}

	module := &ast.TypedModule{Position: m.Position, Name: m.Name, Lets: lets}
	return prunePass(r.Subst, module), nil
}

// prunePass replaces every node's recorded type with its RecursivePrune,
// leaving structure and position untouched.
func prunePass(s typesystem.Subst, m *ast.TypedModule) *ast.TypedModule {
	lets := make([]*ast.TypedLet, len(m.Lets))
	for i, l := range m.Lets {
		lets[i] = pruneLet(s, l)
	}
	return &ast.TypedModule{Position: m.Position, Name: m.Name, Lets: lets}
}

func pruneLet(s typesystem.Subst, l *ast.TypedLet) *ast.TypedLet {
	args := make([]ast.TypedArg, len(l.Args))
	for i, a := range l.Args {
		args[i] = ast.TypedArg{Name: a.Name, Type: typesystem.RecursivePrune(s, a.Type)}
	}
	return &ast.TypedLet{
		Position: l.Position,
		Name:     l.Name,
		Args:     args,
		Body:     pruneExpr(s, l.Body),
		Type:     typesystem.RecursivePrune(s, l.Type),
	}
}

func pruneExpr(s typesystem.Subst, e ast.TypedExpression) ast.TypedExpression {
	switch n := e.(type) {
	case *ast.TypedIntLiteral:
		return &ast.TypedIntLiteral{Position: n.Position, Value: n.Value, Type: typesystem.RecursivePrune(s, n.Type)}
	case *ast.TypedBoolLiteral:
		return &ast.TypedBoolLiteral{Position: n.Position, Value: n.Value, Type: typesystem.RecursivePrune(s, n.Type)}
	case *ast.TypedStringLiteral:
		return &ast.TypedStringLiteral{Position: n.Position, Value: n.Value, Type: typesystem.RecursivePrune(s, n.Type)}
	case *ast.TypedIdReference:
		return pruneReference(s, n)
	case *ast.TypedApply:
		args := make([]ast.TypedExpression, len(n.Args))
		for i, a := range n.Args {
			args[i] = pruneExpr(s, a)
		}
		return &ast.TypedApply{
			Position: n.Position,
			Fun:      pruneReference(s, n.Fun),
			Args:     args,
			Type:     typesystem.RecursivePrune(s, n.Type),
		}
	case *ast.TypedLambda:
		args := make([]ast.TypedArg, len(n.Args))
		for i, a := range n.Args {
			args[i] = ast.TypedArg{Name: a.Name, Type: typesystem.RecursivePrune(s, a.Type)}
		}
		return &ast.TypedLambda{
			Position: n.Position,
			Args:     args,
			Body:     pruneExpr(s, n.Body),
			Type:     typesystem.RecursivePrune(s, n.Type),
		}
	default:
		panic("typer: unhandled typed expression in prune pass")
	}
}

func pruneReference(s typesystem.Subst, n *ast.TypedIdReference) *ast.TypedIdReference {
	sym := n.Symbol
	sym.Type = typesystem.RecursivePrune(s, sym.Type)
	return &ast.TypedIdReference{
		Position: n.Position,
		Name:     n.Name,
		Symbol:   sym,
		Type:     typesystem.RecursivePrune(s, n.Type),
	}
}
