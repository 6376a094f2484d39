package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "goscheme",
	Short: "A small Scheme interpreter",
	Long: `goscheme evaluates a lexically-scoped Scheme core: definitions,
lambdas with Strict/Lazy/LazyMemo parameters, tail calls bounded by a
trampoline, quote, and the usual arithmetic and list primitives.

Full Scheme conformance (macros, continuations, a numeric tower, hygienic
identifiers) is explicitly out of scope.

Running goscheme with no subcommand starts an interactive session,
equivalent to "goscheme repl".`,
	Version: Version,
	RunE:    runREPL,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors in error output")
}
