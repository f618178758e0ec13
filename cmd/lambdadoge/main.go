// Command lambdadoge runs the typer and closure lifter over one fixed,
// hand-built raw AST (a monomorphic identity application plus a built-in
// partial application) and prints the
// result. It is demonstration/integration-test plumbing, not a real front
// end: it never reads source files, leaving the lexer/parser/VM layer this
// core assumes as an external collaborator. Flags: -trace enables
// unification tracing; -prelude <path> loads a prelude document from disk
// (path must end in config.PreludeFileExt) in place of the embedded default.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/DogeDapp/lambda-doge/internal/ast"
	"github.com/DogeDapp/lambda-doge/internal/config"
	"github.com/DogeDapp/lambda-doge/internal/lifter"
	"github.com/DogeDapp/lambda-doge/internal/prelude"
	"github.com/DogeDapp/lambda-doge/internal/printer"
	"github.com/DogeDapp/lambda-doge/internal/symbols"
	"github.com/DogeDapp/lambda-doge/internal/typer"
)

func pos(line, col int) ast.Position { return ast.Position{Line: line, Column: col} }

// sampleModule builds `let id x = x; let y = id 1; let inc = add 1` in Go,
// the way a test fixture would — exercising plain inference, a prelude
// reference, and a built-in partial application that the lifter must
// rewrite into a $lambda$ helper.
func sampleModule() *ast.Module {
	return &ast.Module{
		Position: pos(1, 1),
		Name:     "Sample",
		Lets: []*ast.Let{
			{
				Position: pos(1, 1),
				Name:     "id",
				ArgNames: []string{"x"},
				Body:     &ast.IdReference{Position: pos(1, 12), Name: "x"},
			},
			{
				Position: pos(2, 1),
				Name:     "y",
				Body: &ast.Apply{
					Position: pos(2, 9),
					Fun:      &ast.IdReference{Position: pos(2, 9), Name: "id"},
					Args:     []ast.Expression{&ast.IntLiteral{Position: pos(2, 12), Value: 1}},
				},
			},
			{
				Position: pos(3, 1),
				Name:     "inc",
				Body: &ast.Apply{
					Position: pos(3, 11),
					Fun:      &ast.IdReference{Position: pos(3, 11), Name: "add"},
					Args:     []ast.Expression{&ast.IntLiteral{Position: pos(3, 15), Value: 1}},
				},
			},
		},
	}
}

func main() {
	var preludePath string
	for i, arg := range os.Args[1:] {
		switch {
		case arg == "-trace":
			config.IsTraceMode = true
		case arg == "-prelude":
			if i+2 < len(os.Args) {
				preludePath = os.Args[i+2]
			}
		}
	}

	var root *symbols.Table
	var err error
	if preludePath != "" {
		root, err = prelude.LoadFile(preludePath)
	} else {
		root, err = prelude.Default()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	run := typer.NewRun(root)
	typed, err := run.TypeModule(sampleModule())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lifted := lifter.Lift(typed)

	colored := isatty.IsTerminal(os.Stdout.Fd())
	printHeader(colored, "typed & lifted module")
	fmt.Println(printer.Module(lifted))

	substCount := len(run.Subst)
	helperCount := len(lifted.Lets) - len(typed.Lets)
	fmt.Printf("\ntyped %s substitution(s), synthesized %s helper(s)\n",
		humanize.Comma(int64(substCount)), humanize.Comma(int64(helperCount)))
}

func printHeader(colored bool, text string) {
	if colored {
		fmt.Printf("\x1b[1m%s\x1b[0m\n", text)
		return
	}
	fmt.Println(text)
}
