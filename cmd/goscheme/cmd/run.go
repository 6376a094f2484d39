package cmd

import (
	"fmt"
	"os"

	goerrors "github.com/goscheme/goscheme/internal/errors"
	"github.com/goscheme/goscheme/internal/eval"
	"github.com/goscheme/goscheme/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Scheme file or expression",
	Long: `Execute a Scheme program from a file or inline expression.

Examples:
  # Run a script file
  goscheme run script.scm

  # Evaluate an inline expression
  goscheme run -e "(display (+ 1 2))"

  # Run with AST dump (for debugging)
  goscheme run --dump-ast script.scm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump each parsed top-level expression (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print a trace-mode notice to stderr before running (evaluation steps are not traced)")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	p := parser.New(input, filename)
	program, err := p.ParseProgram()
	if err != nil {
		printCompilerError(err, input, filename)
		return fmt.Errorf("parsing failed")
	}

	if dumpAST {
		fmt.Println("AST:")
		for _, expr := range program {
			fmt.Println(expr.String())
		}
		fmt.Println()
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[Trace mode enabled - executing %s]\n", filename)
	}

	env := eval.NewGlobalEnvironment(os.Stdout, parser.DatumAnalyzer{})
	for _, expr := range program {
		result, err := eval.Evaluate(expr, env)
		if err != nil {
			printCompilerError(err, input, filename)
			return fmt.Errorf("execution failed")
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s => %s\n", expr.String(), result.String())
		}
	}

	return nil
}

func printCompilerError(err error, source, filename string) {
	if ce, ok := err.(*goerrors.CompilerError); ok {
		ce.Source = source
		if ce.File == "" {
			ce.File = filename
		}
		fmt.Fprintln(os.Stderr, ce.Format(!noColor))
		return
	}
	fmt.Fprintln(os.Stderr, "Runtime error: "+err.Error())
}
