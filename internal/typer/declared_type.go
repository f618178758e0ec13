package typer

import (
	"fmt"

	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// resolveDeclaredType converts the raw syntax for a type annotation into the
// typer's own Type algebra. It recognizes only nullary constructors and
// right-associated arrow chains.
func resolveDeclaredType(t ast.Type) typesystem.Type {
	switch v := t.(type) {
	case ast.ConType:
		return typesystem.TypeConstructor{Name: v.Name}
	case ast.ArrowType:
		args := make([]typesystem.Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = resolveDeclaredType(a)
		}
		return typesystem.FunctionN(resolveDeclaredType(v.Result), args...)
	default:
		panic(fmt.Sprintf("typer: unhandled declared type syntax %T", t))
	}
}
