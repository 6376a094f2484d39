package eval

import (
	"fmt"

	"github.com/goscheme/goscheme/internal/ast"
	"github.com/goscheme/goscheme/internal/value"
)

// SyntaxError wraps a malformed-form error raised by the analyzer and
// re-thrown by the core only when the eval primitive re-parses a datum.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Err.Error() }
func (e *SyntaxError) Unwrap() error { return e.Err }

// UndefinedIdentifier is raised by Environment.Lookup/Assign against a name
// with no binding in scope.
type UndefinedIdentifier struct {
	Name string
}

func (e *UndefinedIdentifier) Error() string {
	return fmt.Sprintf("undefined identifier: %s", e.Name)
}

// ArityMismatch is raised when extending an environment for a compound call
// with the wrong number of arguments, or when a primitive receives an
// unsupported argument count.
type ArityMismatch struct {
	Context  string
	Expected int
	Got      int
}

func (e *ArityMismatch) Error() string {
	return fmt.Sprintf("%s: expected %d argument(s), got %d", e.Context, e.Expected, e.Got)
}

// TypeError is raised when a primitive receives a value it cannot operate on.
type TypeError struct {
	Context string
	Value   value.Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: unsupported value %s of type %s", e.Context, e.Value.String(), e.Value.Type())
}

// EvalError is raised when the dispatch target is not a recognized
// expression type.
type EvalError struct {
	Expression ast.Expression
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("unknown expression type: %T", e.Expression)
}

// ApplyError is raised when the dispatch target of an application is not a
// procedure.
type ApplyError struct {
	Value value.Value
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("not a procedure: %s", e.Value.String())
}

// ConversionError is raised when a primitive's host-boundary adapter cannot
// convert a host result back into a Value.
type ConversionError struct {
	Context string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: could not convert host value to a Scheme value", e.Context)
}

// Analyzer converts an already-evaluated datum (e.g. Quote's embedded
// value) back into an expression tree. It is the core's external
// collaborator contract used by the eval primitive: the core never
// parses source text itself, only re-analyzes data. internal/
// parser implements this interface structurally (no import cycle: eval
// depends only on the interface shape, not on the parser package).
type Analyzer interface {
	AnalyzeDatum(d value.Value) (ast.Expression, error)
}
