// Package lifter rewrites partial applications discovered in a typed module
// into fresh top-level helper lets, so that downstream code generation (out
// of scope here) can emit plain callable methods instead of closure objects.
// The recursive structural walk descends into Apply arguments, Lambda
// bodies and Let bodies, rewriting as it goes.
package lifter

import (
	"fmt"

	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typesystem"
)

// context carries the two independent, per-source-let counters used to name
// synthesized helpers ($lambda$ for built-in partials, $curied$ for
// non-built-in partials missing more than one argument). Both start at zero
// for each top-level let.
type context struct {
	enclosingName  string
	lambdaCounter  int
	curriedCounter int
}

// Lift rewrites every let in m, appending each let's synthesized helpers
// immediately after the rewritten let, in reverse-discovery order.
func Lift(m *ast.TypedModule) *ast.TypedModule {
	lets := make([]*ast.TypedLet, 0, len(m.Lets))
	for _, l := range m.Lets {
		lets = append(lets, liftLet(l)...)
	}
	return &ast.TypedModule{Position: m.Position, Name: m.Name, Lets: lets}
}

func liftLet(l *ast.TypedLet) []*ast.TypedLet {
	c := &context{enclosingName: l.Name}
	body, helpers := c.liftExpr(l.Body)
	rewritten := &ast.TypedLet{Position: l.Position, Name: l.Name, Args: l.Args, Body: body, Type: l.Type}

	out := make([]*ast.TypedLet, 0, 1+len(helpers))
	out = append(out, rewritten)
	out = append(out, helpers...)
	return out
}

func (c *context) liftExpr(e ast.TypedExpression) (ast.TypedExpression, []*ast.TypedLet) {
	switch n := e.(type) {
	case *ast.TypedIntLiteral, *ast.TypedBoolLiteral, *ast.TypedStringLiteral, *ast.TypedIdReference:
		return n, nil
	case *ast.TypedLambda:
		body, helpers := c.liftExpr(n.Body)
		return &ast.TypedLambda{Position: n.Position, Args: n.Args, Body: body, Type: n.Type}, helpers
	case *ast.TypedApply:
		return c.liftApply(n)
	default:
		panic(fmt.Sprintf("lifter: unhandled typed expression %T", e))
	}
}

func (c *context) liftExprSlice(exprs []ast.TypedExpression) ([]ast.TypedExpression, []*ast.TypedLet) {
	out := make([]ast.TypedExpression, len(exprs))
	var helpers []*ast.TypedLet
	for i, e := range exprs {
		lifted, h := c.liftExpr(e)
		out[i] = lifted
		helpers = append(h, helpers...)
	}
	return out, helpers
}

// liftApply classifies app against the two partial-application
// patterns and dispatches to the matching synthesis, or (for a full/over
// application, or a non-built-in missing exactly one argument — deferred
// local capture) simply recurses into the arguments.
func (c *context) liftApply(app *ast.TypedApply) (ast.TypedExpression, []*ast.TypedLet) {
	k := typesystem.Arity(app.Fun.Type)
	n := len(app.Args)
	isBuiltin := app.Fun.Symbol.Location.Kind == symbols.BuiltIn

	if n < k {
		if isBuiltin {
			return c.liftBuiltinPartial(app, k)
		}
		if n+1 < k {
			return c.liftCurriedPartial(app, k)
		}
	}

	args, helpers := c.liftExprSlice(app.Args)
	return &ast.TypedApply{Position: app.Position, Fun: app.Fun, Args: args, Type: app.Type}, helpers
}

// makeParams synthesizes arg0..argN-1 typed parameters and matching typed
// references to them, for a helper's own body.
func makeParams(argTypes []typesystem.Type, pos ast.Position) ([]ast.TypedArg, []ast.TypedExpression) {
	params := make([]ast.TypedArg, len(argTypes))
	refs := make([]ast.TypedExpression, len(argTypes))
	for i, t := range argTypes {
		name := fmt.Sprintf("arg%d", i)
		params[i] = ast.TypedArg{Name: name, Type: t}
		refs[i] = &ast.TypedIdReference{
			Position: pos,
			Name:     name,
			Symbol:   symbols.Symbol{Name: name, Type: t, Location: symbols.ArgumentLocation()},
			Type:     t,
		}
	}
	return params, refs
}

// liftBuiltinPartial synthesizes an enclosingName$lambda$n helper, fully
// applying the built-in to arg0..argK-1, and rewrites app into an
// application of that helper to the original (recursively lifted) partial
// argument list.
func (c *context) liftBuiltinPartial(app *ast.TypedApply, k int) (ast.TypedExpression, []*ast.TypedLet) {
	argTypes, resultType := typesystem.DeconstructArgsN(app.Fun.Type, k)
	name := fmt.Sprintf("%s$lambda$%d", c.enclosingName, c.lambdaCounter)
	c.lambdaCounter++

	params, paramRefs := makeParams(argTypes, app.Position)
	body := &ast.TypedApply{Position: app.Position, Fun: app.Fun, Args: paramRefs, Type: resultType}
	helperLet := &ast.TypedLet{Position: app.Position, Name: name, Args: params, Body: body, Type: app.Fun.Type}

	liftedArgs, argHelpers := c.liftExprSlice(app.Args)
	helperRef := &ast.TypedIdReference{
		Position: app.Position,
		Name:     name,
		Symbol:   symbols.Symbol{Name: name, Type: app.Fun.Type, Location: symbols.StaticMethodLocation(c.enclosingName, name, argTypes, resultType)},
		Type:     app.Fun.Type,
	}
	rewritten := &ast.TypedApply{Position: app.Position, Fun: helperRef, Args: liftedArgs, Type: app.Type}

	// Helpers discovered while lifting the original partial args are nested
	// (encountered after helperLet itself), so they are prepended ahead of it:
	// reverse-discovery order.
	helpers := make([]*ast.TypedLet, 0, len(argHelpers)+1)
	helpers = append(helpers, argHelpers...)
	helpers = append(helpers, helperLet)
	return rewritten, helpers
}

// liftCurriedPartial synthesizes an enclosingName$curied$n helper accepting
// one more argument than app currently supplies, whose body re-applies the
// original reference to those arguments (recursively lifted, since the
// residual application may itself still be a partial application).
func (c *context) liftCurriedPartial(app *ast.TypedApply, k int) (ast.TypedExpression, []*ast.TypedLet) {
	newLen := len(app.Args) + 1
	argTypes, resultType := typesystem.DeconstructArgsN(app.Fun.Type, newLen)
	name := fmt.Sprintf("%s$curied$%d", c.enclosingName, c.curriedCounter)
	c.curriedCounter++

	params, paramRefs := makeParams(argTypes, app.Position)
	rawBody := &ast.TypedApply{Position: app.Position, Fun: app.Fun, Args: paramRefs, Type: resultType}
	body, bodyHelpers := c.liftExpr(rawBody)

	helperType := typesystem.FunctionN(resultType, argTypes...)
	helperLet := &ast.TypedLet{Position: app.Position, Name: name, Args: params, Body: body, Type: helperType}

	liftedArgs, argHelpers := c.liftExprSlice(app.Args)
	helperRef := &ast.TypedIdReference{
		Position: app.Position,
		Name:     name,
		Symbol:   symbols.Symbol{Name: name, Type: helperType, Location: symbols.StaticMethodLocation(c.enclosingName, name, argTypes, resultType)},
		Type:     helperType,
	}
	rewritten := &ast.TypedApply{Position: app.Position, Fun: helperRef, Args: liftedArgs, Type: app.Type}

	// Reverse-discovery order: argHelpers (from the original call's args) were
	// encountered after bodyHelpers (from lifting helperLet's own, possibly
	// still-partial body), which were in turn encountered after helperLet
	// itself, so they are prepended ahead of it in that order.
	helpers := make([]*ast.TypedLet, 0, len(argHelpers)+len(bodyHelpers)+1)
	helpers = append(helpers, argHelpers...)
	helpers = append(helpers, bodyHelpers...)
	helpers = append(helpers, helperLet)
	return rewritten, helpers
}
