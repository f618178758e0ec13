// Package printer renders a typed, lifted module back to readable source
// text using String()-returning render functions per node shape. There is
// no surface syntax to round-trip to: this only needs to be legible for the
// demo CLI and for test failure messages.
package printer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/DogeDapp/lambda-doge/internal/ast"
)

// Module renders every let in m, one per line, as "name arg0 arg1 = body :
// type".
func Module(m *ast.TypedModule) string {
	var buf bytes.Buffer
	for i, l := range m.Lets {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(Let(l))
	}
	return buf.String()
}

// Let renders a single typed let.
func Let(l *ast.TypedLet) string {
	var buf bytes.Buffer
	buf.WriteString(l.Name)
	for _, a := range l.Args {
		fmt.Fprintf(&buf, " %s", a.Name)
	}
	buf.WriteString(" = ")
	buf.WriteString(Expr(l.Body))
	buf.WriteString(" : ")
	buf.WriteString(l.Type.String())
	return buf.String()
}

// Expr renders a single typed expression.
func Expr(e ast.TypedExpression) string {
	switch n := e.(type) {
	case *ast.TypedIntLiteral:
		return fmt.Sprintf("%d", n.Value)
	case *ast.TypedBoolLiteral:
		return fmt.Sprintf("%t", n.Value)
	case *ast.TypedStringLiteral:
		return fmt.Sprintf("%q", n.Value)
	case *ast.TypedIdReference:
		return n.Name
	case *ast.TypedLambda:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = a.Name
		}
		return fmt.Sprintf("(\\%s -> %s)", strings.Join(args, " "), Expr(n.Body))
	case *ast.TypedApply:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = Expr(a)
		}
		return fmt.Sprintf("(%s %s)", n.Fun.Name, strings.Join(parts, " "))
	default:
		panic(fmt.Sprintf("printer: unhandled typed expression %T", e))
	}
}
