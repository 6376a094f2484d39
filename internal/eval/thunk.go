package eval

import (
	"github.com/goscheme/goscheme/internal/ast"
	"github.com/goscheme/goscheme/internal/value"
)

// Thunk defers the evaluation of Expression in CapturedEnv until Force is
// called, implementing the Lazy parameter strategy. Each Force
// re-evaluates; callers that need memoization use MemoThunk.
type Thunk struct {
	Expression  ast.Expression
	CapturedEnv *Environment
}

func (*Thunk) Type() value.Type { return value.Type("THUNK") }
func (t *Thunk) String() string { return "#<thunk>" }

// Force evaluates the thunk's expression in its captured environment.
func (t *Thunk) Force() (value.Value, error) {
	return Evaluate(t.Expression, t.CapturedEnv)
}

// MemoThunk is a Thunk that caches its result after the first Force,
// implementing the LazyMemo parameter strategy: repeated forcing returns
// the cached value without re-evaluating.
type MemoThunk struct {
	Thunk
	forced bool
	result value.Value
	err    error
}

func (*MemoThunk) Type() value.Type { return value.Type("THUNK") }
func (t *MemoThunk) String() string { return "#<thunk>" }

// Force evaluates the thunk's expression on first use and caches the
// outcome — including an error — for every subsequent Force.
func (t *MemoThunk) Force() (value.Value, error) {
	if !t.forced {
		t.result, t.err = Evaluate(t.Expression, t.CapturedEnv)
		t.forced = true
		// Drop the captured expression/environment once cached so the
		// closed-over frame can be collected.
		t.Expression = nil
		t.CapturedEnv = nil
	}
	return t.result, t.err
}

// Forceable is anything produced by a non-Strict parameter binding.
// ForceValue recursively forces chains of thunks (a Lazy parameter whose
// argument is itself another Lazy parameter's identifier) until a
// non-thunk value.Value is reached.
type Forceable interface {
	value.Value
	Force() (value.Value, error)
}

// ForceValue resolves v to a non-thunk value, forcing through any chain
// of Thunk/MemoThunk wrappers.
func ForceValue(v value.Value) (value.Value, error) {
	for {
		f, ok := v.(Forceable)
		if !ok {
			return v, nil
		}
		forced, err := f.Force()
		if err != nil {
			return nil, err
		}
		v = forced
	}
}
