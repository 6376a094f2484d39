package eval

import (
	"github.com/goscheme/goscheme/internal/ast"
	"github.com/goscheme/goscheme/internal/value"
)

// tailCall is a bounce instruction: "continue evaluating expr in env"
// instead of a recursive call. rawEval returns one whenever the next step
// is in tail position (the branches of If, the last form of Begin, the
// last form of a Compound's body); Evaluate's loop below is the
// trampoline that drives those bounces without growing the host call
// stack, which is what keeps deep or unbounded tail recursion from
// overflowing it.
type tailCall struct {
	expr ast.Expression
	env  *Environment
}

func (*tailCall) Type() value.Type { return value.Type("TAIL_CALL") }
func (*tailCall) String() string   { return "#<tail-call>" }

// Evaluate is the core's single public entry point: evaluate expression
// in env, bouncing through any tail calls rawEval
// produces, and force the final result before returning it.
func Evaluate(expr ast.Expression, env *Environment) (value.Value, error) {
	for {
		result, err := rawEval(expr, env)
		if err != nil {
			return nil, err
		}
		tc, ok := result.(*tailCall)
		if !ok {
			return ForceValue(result)
		}
		expr, env = tc.expr, tc.env
	}
}
