package eval

import (
	"github.com/goscheme/goscheme/internal/ast"
	"github.com/goscheme/goscheme/internal/value"
)

// rawEval dispatches on the concrete expression type. It is
// deliberately not a method on ast nodes: the evaluator lives entirely in
// this package so ast stays free of any evaluation dependency, and
// dispatch is a single type switch rather than double-dispatch through
// the node.
//
// Whenever the next step is in tail position, rawEval returns a *tailCall
// instead of recursing — Evaluate's trampoline loop performs the actual
// iteration.
func rawEval(expr ast.Expression, env *Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.SelfEvaluating:
		return e.Value, nil

	case *ast.Identifier:
		return env.Lookup(e.Name)

	case *ast.Quote:
		return e.Datum, nil

	case *ast.Definition:
		v, err := Evaluate(e.Value, env)
		if err != nil {
			return nil, err
		}
		if c, ok := v.(*Compound); ok && c.Name == "" {
			c.Name = e.Name
		}
		env.Define(e.Name, v)
		return value.Symbol(e.Name), nil

	case *ast.Assignment:
		v, err := Evaluate(e.Value, env)
		if err != nil {
			return nil, err
		}
		if err := env.Assign(e.Name, v); err != nil {
			return nil, err
		}
		return value.Symbol(e.Name), nil

	case *ast.If:
		test, err := Evaluate(e.Predicate, env)
		if err != nil {
			return nil, err
		}
		if isTruthy(test) {
			return &tailCall{expr: e.Consequent, env: env}, nil
		}
		if e.Alternative == nil {
			return value.Boolean(false), nil
		}
		return &tailCall{expr: e.Alternative, env: env}, nil

	case *ast.Lambda:
		return &Compound{Parameters: e.Parameters, Body: e.Body, Env: env}, nil

	case *ast.Begin:
		return evalSequenceTail(e.Sequence, env)

	case *ast.Application:
		return evalApplication(e, env)

	default:
		return nil, &EvalError{Expression: expr}
	}
}

// isTruthy treats everything except the Boolean value #f as true, the
// conventional Scheme rule: only #f is false.
func isTruthy(v value.Value) bool {
	b, ok := v.(value.Boolean)
	return !ok || bool(b)
}

// evalSequenceTail evaluates every expression but the last for effect and
// bounces to the last in tail position. It is an EvalError-free no-op
// returning value.Empty for an empty sequence, such as the text parser
// produces for (begin); DatumAnalyzer rejects an empty begin body.
func evalSequenceTail(seq []ast.Expression, env *Environment) (value.Value, error) {
	if len(seq) == 0 {
		return value.Empty, nil
	}
	for _, expr := range seq[:len(seq)-1] {
		if _, err := Evaluate(expr, env); err != nil {
			return nil, err
		}
	}
	return &tailCall{expr: seq[len(seq)-1], env: env}, nil
}

func evalApplication(app *ast.Application, env *Environment) (value.Value, error) {
	operator, err := Evaluate(app.Operator, env)
	if err != nil {
		return nil, err
	}
	proc, ok := operator.(Procedure)
	if !ok {
		return nil, &ApplyError{Value: operator}
	}
	return proc.Apply(app.Operands, env)
}
