package eval

import (
	"github.com/goscheme/goscheme/internal/ast"
	"github.com/goscheme/goscheme/internal/value"
)

// installMeta wires apply and eval, the two primitives that hand control
// back to the evaluator rather than computing a result themselves. eval
// analyzes its datum and evaluates it in the caller's environment. apply
// wraps its already-evaluated arguments as SelfEvaluating
// expressions before calling Apply, so a Lazy or LazyMemo parameter still
// gets a legal (Expression, Environment) pair to capture — forcing it
// later just re-yields the same value, since a SelfEvaluating expression
// has no side effect to repeat.
func installMeta(env *Environment, analyzer Analyzer) {
	env.Define("apply", &Primitive{Name: "apply", Fn: func(args []value.Value, callEnv *Environment) (value.Value, error) {
		if len(args) < 1 {
			return nil, &ArityMismatch{Context: "apply", Expected: 2, Got: len(args)}
		}
		proc, ok := args[0].(Procedure)
		if !ok {
			return nil, &ApplyError{Value: args[0]}
		}
		var flat []value.Value
		if len(args) > 1 {
			flat = append(flat, args[1:len(args)-1]...)
			last, ok := args[len(args)-1].(value.List)
			if !ok {
				return nil, &TypeError{Context: "apply: final argument must be a list", Value: args[len(args)-1]}
			}
			flat = append(flat, last...)
		}
		operands := make([]ast.Expression, len(flat))
		for i, v := range flat {
			operands[i] = &ast.SelfEvaluating{Value: v}
		}
		return proc.Apply(operands, callEnv)
	}})

	env.Define("eval", &Primitive{Name: "eval", Fn: func(args []value.Value, callEnv *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "eval", Expected: 1, Got: len(args)}
		}
		expr, err := analyzer.AnalyzeDatum(args[0])
		if err != nil {
			return nil, &SyntaxError{Err: err}
		}
		return Evaluate(expr, callEnv)
	}})
}
