package parser

import (
	"fmt"

	"github.com/goscheme/goscheme/internal/ast"
	"github.com/goscheme/goscheme/internal/token"
	"github.com/goscheme/goscheme/internal/value"
)

// DatumAnalyzer implements the core's Analyzer collaborator contract
// (eval.Analyzer) by re-running the special-form rules directly over an
// already-read Value tree, rather than re-lexing printed text. This is
// what backs the eval primitive: "(eval datum)" hands the core a Value,
// and the core asks its Analyzer to turn that Value back into an
// Expression before evaluating it.
type DatumAnalyzer struct{}

// AnalyzeDatum converts d into an expression using the same special-form
// dispatch as the text parser.
func (DatumAnalyzer) AnalyzeDatum(d value.Value) (ast.Expression, error) {
	return analyzeDatum(d)
}

func analyzeDatum(d value.Value) (ast.Expression, error) {
	t := token.Token{Type: token.ATOM}

	switch v := d.(type) {
	case value.Symbol:
		return &ast.Identifier{Token: t, Name: string(v)}, nil
	case value.List:
		if len(v) == 0 {
			return &ast.SelfEvaluating{Token: t, Value: value.Empty}, nil
		}
		if head, ok := v[0].(value.Symbol); ok {
			switch head {
			case "quote":
				if len(v) != 2 {
					return nil, fmt.Errorf("quote: expected exactly one datum, got %d", len(v)-1)
				}
				return &ast.Quote{Token: t, Datum: v[1]}, nil
			case "set!":
				return analyzeAssignment(t, v)
			case "define":
				return analyzeDefinition(t, v)
			case "if":
				return analyzeIf(t, v)
			case "lambda":
				return analyzeLambda(t, v)
			case "begin":
				return analyzeBegin(t, v)
			case "cond":
				return analyzeCond(t, v)
			}
		}
		return analyzeApplication(t, v)
	default:
		// Self-evaluating scalar (integer, float, complex, string,
		// boolean, pair) re-read as a literal.
		return &ast.SelfEvaluating{Token: t, Value: d}, nil
	}
}

func analyzeAssignment(t token.Token, v value.List) (ast.Expression, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("set!: expected (set! name value)")
	}
	name, ok := v[1].(value.Symbol)
	if !ok {
		return nil, fmt.Errorf("set!: expected an identifier")
	}
	val, err := analyzeDatum(v[2])
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: t, Name: string(name), Value: val}, nil
}

func analyzeDefinition(t token.Token, v value.List) (ast.Expression, error) {
	if len(v) < 3 {
		return nil, fmt.Errorf("define: expected at least (define target value)")
	}
	switch target := v[1].(type) {
	case value.Symbol:
		if len(v) != 3 {
			return nil, fmt.Errorf("define: expected (define name value)")
		}
		val, err := analyzeDatum(v[2])
		if err != nil {
			return nil, err
		}
		return &ast.Definition{Token: t, Name: string(target), Value: val}, nil
	case value.List:
		if len(target) == 0 {
			return nil, fmt.Errorf("define: expected a procedure name")
		}
		name, ok := target[0].(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("define: expected a procedure name")
		}
		params, err := analyzeParameters(target[1:])
		if err != nil {
			return nil, err
		}
		body, err := analyzeBody(v[2:])
		if err != nil {
			return nil, err
		}
		return &ast.Definition{
			Token: t,
			Name:  string(name),
			Value: &ast.Lambda{Token: t, Parameters: params, Body: body},
		}, nil
	default:
		return nil, fmt.Errorf("define: expected an identifier or procedure signature")
	}
}

func analyzeIf(t token.Token, v value.List) (ast.Expression, error) {
	if len(v) != 3 && len(v) != 4 {
		return nil, fmt.Errorf("if: expected (if test then [else])")
	}
	pred, err := analyzeDatum(v[1])
	if err != nil {
		return nil, err
	}
	cons, err := analyzeDatum(v[2])
	if err != nil {
		return nil, err
	}
	var alt ast.Expression
	if len(v) == 4 {
		alt, err = analyzeDatum(v[3])
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Token: t, Predicate: pred, Consequent: cons, Alternative: alt}, nil
}

func analyzeLambda(t token.Token, v value.List) (ast.Expression, error) {
	if len(v) < 3 {
		return nil, fmt.Errorf("lambda: expected (lambda (params...) body...)")
	}
	paramList, ok := v[1].(value.List)
	if !ok {
		return nil, fmt.Errorf("lambda: expected a parameter list")
	}
	params, err := analyzeParameters(paramList)
	if err != nil {
		return nil, err
	}
	body, err := analyzeBody(v[2:])
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Token: t, Parameters: params, Body: body}, nil
}

func analyzeParameters(forms []value.Value) ([]ast.Parameter, error) {
	params := make([]ast.Parameter, 0, len(forms))
	for _, f := range forms {
		switch p := f.(type) {
		case value.Symbol:
			params = append(params, ast.Parameter{Name: string(p), Strategy: ast.Strict})
		case value.List:
			if len(p) != 2 {
				return nil, fmt.Errorf("parameter: expected (name tag)")
			}
			name, ok := p[0].(value.Symbol)
			if !ok {
				return nil, fmt.Errorf("parameter: expected a name")
			}
			tag, ok := p[1].(value.Symbol)
			if !ok {
				return nil, fmt.Errorf("parameter: expected a strategy tag")
			}
			strategy, ok := parseStrategy(string(tag))
			if !ok {
				return nil, fmt.Errorf("parameter: unknown strategy tag %q", tag)
			}
			params = append(params, ast.Parameter{Name: string(name), Strategy: strategy})
		default:
			return nil, fmt.Errorf("parameter: unexpected form %s", f.String())
		}
	}
	return params, nil
}

func analyzeBody(forms []value.Value) ([]ast.Expression, error) {
	if len(forms) == 0 {
		return nil, fmt.Errorf("expected at least one body expression")
	}
	body := make([]ast.Expression, 0, len(forms))
	for _, f := range forms {
		e, err := analyzeDatum(f)
		if err != nil {
			return nil, err
		}
		body = append(body, e)
	}
	return body, nil
}

func analyzeBegin(t token.Token, v value.List) (ast.Expression, error) {
	seq, err := analyzeBody(v[1:])
	if err != nil {
		return nil, err
	}
	return &ast.Begin{Token: t, Sequence: seq}, nil
}

func analyzeCond(t token.Token, v value.List) (ast.Expression, error) {
	var result ast.Expression
	for i := len(v) - 1; i >= 1; i-- {
		clause, ok := v[i].(value.List)
		if !ok || len(clause) == 0 {
			return nil, fmt.Errorf("cond: expected (test expr...) clauses")
		}
		body, err := analyzeBody(clause[1:])
		if err != nil {
			return nil, err
		}
		var consequent ast.Expression
		if len(body) == 1 {
			consequent = body[0]
		} else {
			consequent = &ast.Begin{Token: t, Sequence: body}
		}
		if sym, ok := clause[0].(value.Symbol); ok && sym == "else" {
			result = consequent
			continue
		}
		test, err := analyzeDatum(clause[0])
		if err != nil {
			return nil, err
		}
		result = &ast.If{Token: t, Predicate: test, Consequent: consequent, Alternative: result}
	}
	if result == nil {
		return nil, fmt.Errorf("cond: at least one clause is required")
	}
	return result, nil
}

func analyzeApplication(t token.Token, v value.List) (ast.Expression, error) {
	op, err := analyzeDatum(v[0])
	if err != nil {
		return nil, err
	}
	operands := make([]ast.Expression, 0, len(v)-1)
	for _, f := range v[1:] {
		e, err := analyzeDatum(f)
		if err != nil {
			return nil, err
		}
		operands = append(operands, e)
	}
	return &ast.Application{Token: t, Operator: op, Operands: operands}, nil
}
