// Package ast defines the expression tree that internal/parser produces
// and internal/eval consumes. Nodes are pure syntax: evaluation dispatch
// lives in internal/eval, not as methods here, so this package has no
// dependency on the evaluator.
package ast

import (
	"fmt"
	"strings"

	"github.com/goscheme/goscheme/internal/token"
	"github.com/goscheme/goscheme/internal/value"
)

// Expression is any node of the expression tree.
type Expression interface {
	// Pos reports the source position of the expression's leading token,
	// for diagnostics.
	Pos() token.Position
	String() string
	exprNode()
}

// Strategy is a parameter's evaluation discipline.
type Strategy int

const (
	Strict Strategy = iota
	Lazy
	LazyMemo
)

func (s Strategy) String() string {
	switch s {
	case Lazy:
		return "l"
	case LazyMemo:
		return "m"
	default:
		return "s"
	}
}

// Parameter is a formal parameter name paired with its evaluation strategy.
type Parameter struct {
	Name     string
	Strategy Strategy
}

func (p Parameter) String() string {
	if p.Strategy == Strict {
		return p.Name
	}
	return fmt.Sprintf("(%s %s)", p.Name, p.Strategy)
}

// SelfEvaluating wraps an already-constructed Value (e.g. a literal scanned
// by the parser) that evaluates to itself.
type SelfEvaluating struct {
	Token Token
	Value value.Value
}

func (*SelfEvaluating) exprNode() {}
func (e *SelfEvaluating) Pos() token.Position { return e.Token.Pos }
func (e *SelfEvaluating) String() string { return e.Value.String() }

// Identifier evaluates by environment lookup.
type Identifier struct {
	Token Token
	Name  string
}

func (*Identifier) exprNode() {}
func (e *Identifier) Pos() token.Position { return e.Token.Pos }
func (e *Identifier) String() string { return e.Name }

// Quote evaluates to its embedded datum verbatim.
type Quote struct {
	Token Token
	Datum value.Value
}

func (*Quote) exprNode() {}
func (e *Quote) Pos() token.Position { return e.Token.Pos }
func (e *Quote) String() string { return "(quote " + e.Datum.String() + ")" }

// Definition binds Name to the evaluation of Value in the current frame.
type Definition struct {
	Token Token
	Name  string
	Value Expression
}

func (*Definition) exprNode() {}
func (e *Definition) Pos() token.Position { return e.Token.Pos }
func (e *Definition) String() string {
	return fmt.Sprintf("(define %s %s)", e.Name, e.Value.String())
}

// Assignment mutates the nearest enclosing binding of Name.
type Assignment struct {
	Token Token
	Name  string
	Value Expression
}

func (*Assignment) exprNode() {}
func (e *Assignment) Pos() token.Position { return e.Token.Pos }
func (e *Assignment) String() string {
	return fmt.Sprintf("(set! %s %s)", e.Name, e.Value.String())
}

// If is a conditional; Alternative may be nil.
type If struct {
	Token       Token
	Predicate   Expression
	Consequent  Expression
	Alternative Expression // nil if absent
}

func (*If) exprNode() {}
func (e *If) Pos() token.Position { return e.Token.Pos }
func (e *If) String() string {
	if e.Alternative == nil {
		return fmt.Sprintf("(if %s %s)", e.Predicate, e.Consequent)
	}
	return fmt.Sprintf("(if %s %s %s)", e.Predicate, e.Consequent, e.Alternative)
}

// Lambda evaluates to a Compound procedure capturing the current environment.
type Lambda struct {
	Token      Token
	Parameters []Parameter
	Body       []Expression
}

func (*Lambda) exprNode() {}
func (e *Lambda) Pos() token.Position { return e.Token.Pos }
func (e *Lambda) String() string {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = p.String()
	}
	return fmt.Sprintf("(lambda (%s) ...)", strings.Join(params, " "))
}

// Begin evaluates a sequence for effect, returning the last in tail position.
type Begin struct {
	Token    Token
	Sequence []Expression
}

func (*Begin) exprNode() {}
func (e *Begin) Pos() token.Position { return e.Token.Pos }
func (e *Begin) String() string {
	parts := make([]string, len(e.Sequence))
	for i, s := range e.Sequence {
		parts[i] = s.String()
	}
	return "(begin " + strings.Join(parts, " ") + ")"
}

// Application forces Operator and delegates to its Apply with the raw
// (unevaluated) Operands — the procedure decides the evaluation strategy.
type Application struct {
	Token    Token
	Operator Expression
	Operands []Expression
}

func (*Application) exprNode() {}
func (e *Application) Pos() token.Position { return e.Token.Pos }
func (e *Application) String() string {
	parts := make([]string, len(e.Operands))
	for i, o := range e.Operands {
		parts[i] = o.String()
	}
	return fmt.Sprintf("(%s %s)", e.Operator.String(), strings.Join(parts, " "))
}

// Token is a type alias so ast nodes can embed a position-bearing token
// without importing the lexer.
type Token = token.Token
