package eval

import (
	"github.com/goscheme/goscheme/internal/ast"
	"github.com/goscheme/goscheme/internal/value"
)

// Procedure is anything callable in operator position. Apply
// receives the unevaluated operand expressions and the caller's
// environment: the procedure itself decides how and whether to evaluate
// each operand, which is what lets Compound honor each parameter's
// Strategy. A result may be a *tailCall, in which case the caller's
// trampoline (Evaluate) continues bouncing instead of recursing.
type Procedure interface {
	value.Value
	Apply(operands []ast.Expression, env *Environment) (value.Value, error)
}

// Primitive wraps a host Go function as a callable procedure. Fn
// receives already-forced argument values; Primitive always
// evaluates its operands strictly; no primitive honors Lazy/LazyMemo.
type Primitive struct {
	Name string
	Fn   func(args []value.Value, env *Environment) (value.Value, error)
}

func (*Primitive) Type() value.Type { return value.PrimitiveType }
func (*Primitive) String() string { return "#<primitive procedure>" }

// Apply evaluates every operand to a forced value, then invokes Fn. The
// apply primitive is the one case where Fn's result may itself be a
// *tailCall (it delegates straight to the target procedure's own Apply);
// returning it unforced here lets the caller's trampoline keep bouncing
// instead of recursing.
func (p *Primitive) Apply(operands []ast.Expression, env *Environment) (value.Value, error) {
	args := make([]value.Value, len(operands))
	for i, operand := range operands {
		v, err := Evaluate(operand, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return p.Fn(args, env)
}

// Compound is a user-defined procedure: a Lambda's parameters and body
// closed over the environment active when the lambda was evaluated.
type Compound struct {
	Name       string // empty for an anonymous lambda; set by define for diagnostics
	Parameters []ast.Parameter
	Body       []ast.Expression
	Env        *Environment
}

func (*Compound) Type() value.Type { return value.CompoundType }
func (*Compound) String() string { return "#<compound procedure>" }

// Apply binds each operand to its parameter according to the parameter's
// Strategy, extends the closure environment with the new frame, evaluates
// every body expression but the last for effect, and returns a *tailCall
// for the last — tail position, so Evaluate's trampoline keeps bouncing
// instead of recursing into this call.
func (c *Compound) Apply(operands []ast.Expression, callerEnv *Environment) (value.Value, error) {
	if len(operands) != len(c.Parameters) {
		context := c.Name
		if context == "" {
			context = c.String()
		}
		return nil, &ArityMismatch{Context: context, Expected: len(c.Parameters), Got: len(operands)}
	}

	names := make([]string, len(c.Parameters))
	args := make([]value.Value, len(c.Parameters))
	for i, param := range c.Parameters {
		names[i] = param.Name
		operand := operands[i]
		switch param.Strategy {
		case ast.Lazy:
			args[i] = &Thunk{Expression: operand, CapturedEnv: callerEnv}
		case ast.LazyMemo:
			args[i] = &MemoThunk{Thunk: Thunk{Expression: operand, CapturedEnv: callerEnv}}
		default:
			v, err := Evaluate(operand, callerEnv)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
	}

	bodyEnv, err := c.Env.Extend(names, args)
	if err != nil {
		return nil, err
	}

	for _, expr := range c.Body[:len(c.Body)-1] {
		if _, err := Evaluate(expr, bodyEnv); err != nil {
			return nil, err
		}
	}
	return &tailCall{expr: c.Body[len(c.Body)-1], env: bodyEnv}, nil
}
