package eval

import (
	"io"

	"github.com/goscheme/goscheme/internal/value"
)

// NewGlobalEnvironment builds the top-level frame with every primitive
// procedure bound: arithmetic, comparison, pair/list operations, equality
// predicates, I/O, and the apply/eval pair that needs an Analyzer
// collaborator to turn data back into expressions. #t and #f are ordinary
// bindings here, not literal syntax recognized by the parser.
func NewGlobalEnvironment(out io.Writer, analyzer Analyzer) *Environment {
	env := NewEnvironment()

	env.Define("#t", value.Boolean(true))
	env.Define("#f", value.Boolean(false))
	env.Define("null", value.Empty)

	installArithmetic(env)
	installLists(env)
	installPredicates(env)
	installIO(env, out)
	installMeta(env, analyzer)

	return env
}
