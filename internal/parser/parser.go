// Package parser turns tokens from internal/lexer into the
// internal/ast.Expression tree that internal/eval dispatches on. It
// recognizes the special forms (quote,
// set!, define, if, lambda, begin, cond) and the parameter-strategy
// suffix tags; everything else is an application.
package parser

import (
	"fmt"
	"strconv"

	"github.com/goscheme/goscheme/internal/ast"
	goerrors "github.com/goscheme/goscheme/internal/errors"
	"github.com/goscheme/goscheme/internal/lexer"
	"github.com/goscheme/goscheme/internal/token"
	"github.com/goscheme/goscheme/internal/value"
)

// Parser reads one expression at a time from a Lexer. A Parser is not safe
// for concurrent use.
type Parser struct {
	lex  *lexer.Lexer
	file string

	cur  token.Token
	peek token.Token
}

// New creates a Parser over src. file is used only for error messages (may
// be empty for REPL input).
func New(src, file string) *Parser {
	p := &Parser{lex: lexer.New(src), file: file}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

// AtEOF reports whether the parser has consumed all input.
func (p *Parser) AtEOF() bool {
	return p.cur.Type == token.EOF
}

// ParseExpression reads exactly one top-level form and advances past it.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseExpr()
}

// ParseProgram reads forms until EOF.
func (p *Parser) ParseProgram() ([]ast.Expression, error) {
	var exprs []ast.Expression
	for !p.AtEOF() {
		e, err := p.parseExpr()
		if err != nil {
			return exprs, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) error {
	return goerrors.New(pos, fmt.Sprintf(format, args...), "", p.file)
}

func (p *Parser) parseExpr() (ast.Expression, error) {
	switch p.cur.Type {
	case token.EOF:
		return nil, p.errorf(p.cur.Pos, "unexpected end of input")
	case token.RPAREN:
		return nil, p.errorf(p.cur.Pos, "unexpected )")
	case token.LPAREN:
		return p.parseList()
	case token.QUOTE, token.QUASI, token.UNQUOTE, token.UNQUOTE_SPLICE:
		return p.parseQuoteShorthand()
	case token.STRING:
		t := p.cur
		p.nextToken()
		return &ast.SelfEvaluating{Token: t, Value: value.String(t.Literal)}, nil
	case token.ATOM:
		return p.parseAtomExpr()
	default:
		return nil, p.errorf(p.cur.Pos, "unexpected token %s", p.cur)
	}
}

func (p *Parser) parseAtomExpr() (ast.Expression, error) {
	t := p.cur
	p.nextToken()
	if v, ok := tryNumber(t.Literal); ok {
		return &ast.SelfEvaluating{Token: t, Value: v}, nil
	}
	return &ast.Identifier{Token: t, Name: t.Literal}, nil
}

func quoteWord(tt token.Type) string {
	switch tt {
	case token.QUOTE:
		return "quote"
	case token.QUASI:
		return "quasiquote"
	case token.UNQUOTE:
		return "unquote"
	case token.UNQUOTE_SPLICE:
		return "unquote-splicing"
	default:
		return ""
	}
}

// parseQuoteShorthand desugars 'x, `x, ,x, ,@x. Only "quote" is a special
// form the evaluator recognizes directly; the other three read as
// ordinary two-element applications (quasiquote x) etc., left undefined
// in the global environment since macro expansion and hygienic
// quasiquote evaluation are out of scope.
func (p *Parser) parseQuoteShorthand() (ast.Expression, error) {
	t := p.cur
	word := quoteWord(t.Type)
	p.nextToken()

	if word == "quote" {
		// Read with the datum grammar, not the expression grammar: a
		// quoted list's head may happen to spell a special-form keyword
		// ('(if a b), 'define, ...) without being one — it's just a list
		// of symbols, exactly like (quote (if a b)) below.
		d, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		return &ast.Quote{Token: t, Datum: d}, nil
	}

	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Application{
		Token:    t,
		Operator: &ast.Identifier{Token: t, Name: word},
		Operands: []ast.Expression{inner},
	}, nil
}

func (p *Parser) parseList() (ast.Expression, error) {
	openTok := p.cur
	p.nextToken() // consume (

	if p.cur.Type == token.RPAREN {
		p.nextToken()
		return &ast.SelfEvaluating{Token: openTok, Value: value.Empty}, nil
	}

	if p.cur.Type == token.ATOM {
		switch p.cur.Literal {
		case "quote":
			return p.parseQuoteForm(openTok)
		case "set!":
			return p.parseAssignment(openTok)
		case "define":
			return p.parseDefinition(openTok)
		case "if":
			return p.parseIf(openTok)
		case "lambda":
			return p.parseLambda(openTok)
		case "begin":
			return p.parseBegin(openTok)
		case "cond":
			return p.parseCond(openTok)
		}
	}

	return p.parseApplication(openTok)
}

func (p *Parser) expect(tt token.Type) error {
	if p.cur.Type != tt {
		return p.errorf(p.cur.Pos, "expected %s, got %s", tt, p.cur)
	}
	p.nextToken()
	return nil
}

func (p *Parser) parseQuoteForm(openTok token.Token) (ast.Expression, error) {
	p.nextToken() // consume "quote"
	d, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Quote{Token: openTok, Datum: d}, nil
}

func (p *Parser) parseAssignment(openTok token.Token) (ast.Expression, error) {
	p.nextToken() // consume "set!"
	if p.cur.Type != token.ATOM {
		return nil, p.errorf(p.cur.Pos, "set!: expected an identifier, got %s", p.cur)
	}
	name := p.cur.Literal
	p.nextToken()
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: openTok, Name: name, Value: val}, nil
}

func (p *Parser) parseDefinition(openTok token.Token) (ast.Expression, error) {
	p.nextToken() // consume "define"
	switch p.cur.Type {
	case token.ATOM:
		name := p.cur.Literal
		p.nextToken()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Definition{Token: openTok, Name: name, Value: val}, nil
	case token.LPAREN:
		p.nextToken() // consume (
		if p.cur.Type != token.ATOM {
			return nil, p.errorf(p.cur.Pos, "define: expected a procedure name, got %s", p.cur)
		}
		name := p.cur.Literal
		lambdaTok := p.cur
		p.nextToken()
		params, err := p.parseParametersUntilRParen()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBodyUntilRParen()
		if err != nil {
			return nil, err
		}
		return &ast.Definition{
			Token: openTok,
			Name:  name,
			Value: &ast.Lambda{Token: lambdaTok, Parameters: params, Body: body},
		}, nil
	default:
		return nil, p.errorf(p.cur.Pos, "define: expected an identifier or (name params...), got %s", p.cur)
	}
}

func (p *Parser) parseIf(openTok token.Token) (ast.Expression, error) {
	p.nextToken() // consume "if"
	pred, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	cons, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var alt ast.Expression
	if p.cur.Type != token.RPAREN {
		alt, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.If{Token: openTok, Predicate: pred, Consequent: cons, Alternative: alt}, nil
}

func (p *Parser) parseLambda(openTok token.Token) (ast.Expression, error) {
	p.nextToken() // consume "lambda"
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParametersUntilRParen()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBodyUntilRParen()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Token: openTok, Parameters: params, Body: body}, nil
}

// parseParametersUntilRParen parses formal parameters until the closing
// paren of the enclosing parameter list, which it consumes. Each
// parameter is either a bare identifier (strict) or a (name tag) pair
// where tag is one of s/l/m.
func (p *Parser) parseParametersUntilRParen() ([]ast.Parameter, error) {
	var params []ast.Parameter
	for p.cur.Type != token.RPAREN {
		switch p.cur.Type {
		case token.ATOM:
			params = append(params, ast.Parameter{Name: p.cur.Literal, Strategy: ast.Strict})
			p.nextToken()
		case token.LPAREN:
			p.nextToken()
			if p.cur.Type != token.ATOM {
				return nil, p.errorf(p.cur.Pos, "expected a parameter name, got %s", p.cur)
			}
			name := p.cur.Literal
			p.nextToken()
			if p.cur.Type != token.ATOM {
				return nil, p.errorf(p.cur.Pos, "expected a strategy tag (s, l, or m), got %s", p.cur)
			}
			strategy, ok := parseStrategy(p.cur.Literal)
			if !ok {
				return nil, p.errorf(p.cur.Pos, "unknown parameter strategy tag %q", p.cur.Literal)
			}
			p.nextToken()
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			params = append(params, ast.Parameter{Name: name, Strategy: strategy})
		case token.EOF:
			return nil, p.errorf(p.cur.Pos, "unexpected end of input in parameter list")
		default:
			return nil, p.errorf(p.cur.Pos, "unexpected token in parameter list: %s", p.cur)
		}
	}
	p.nextToken() // consume )
	return params, nil
}

func parseStrategy(tag string) (ast.Strategy, bool) {
	switch tag {
	case "s":
		return ast.Strict, true
	case "l":
		return ast.Lazy, true
	case "m":
		return ast.LazyMemo, true
	default:
		return 0, false
	}
}

func (p *Parser) parseBodyUntilRParen() ([]ast.Expression, error) {
	var body []ast.Expression
	for p.cur.Type != token.RPAREN {
		if p.cur.Type == token.EOF {
			return nil, p.errorf(p.cur.Pos, "unexpected end of input in body")
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, e)
	}
	p.nextToken() // consume )
	if len(body) == 0 {
		return nil, p.errorf(p.cur.Pos, "expected at least one body expression")
	}
	return body, nil
}

func (p *Parser) parseBegin(openTok token.Token) (ast.Expression, error) {
	p.nextToken() // consume "begin"
	var seq []ast.Expression
	for p.cur.Type != token.RPAREN {
		if p.cur.Type == token.EOF {
			return nil, p.errorf(p.cur.Pos, "unexpected end of input in begin")
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		seq = append(seq, e)
	}
	p.nextToken() // consume )
	return &ast.Begin{Token: openTok, Sequence: seq}, nil
}

// parseCond desugars (cond (test expr...) ... (else expr...)) into nested
// If expressions — cond has no dedicated AST node; it is sugar layered
// on top of If.
func (p *Parser) parseCond(openTok token.Token) (ast.Expression, error) {
	p.nextToken() // consume "cond"
	type clause struct {
		test ast.Expression
		body []ast.Expression
	}
	var clauses []clause
	for p.cur.Type != token.RPAREN {
		if p.cur.Type == token.EOF {
			return nil, p.errorf(p.cur.Pos, "unexpected end of input in cond")
		}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		var test ast.Expression
		if p.cur.Type == token.ATOM && p.cur.Literal == "else" {
			test = nil
			p.nextToken()
		} else {
			t, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			test = t
		}
		body, err := p.parseBodyUntilRParen()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause{test: test, body: body})
	}
	p.nextToken() // consume )

	var result ast.Expression
	for i := len(clauses) - 1; i >= 0; i-- {
		c := clauses[i]
		var consequent ast.Expression
		if len(c.body) == 1 {
			consequent = c.body[0]
		} else {
			consequent = &ast.Begin{Token: openTok, Sequence: c.body}
		}
		if c.test == nil {
			result = consequent
			continue
		}
		result = &ast.If{Token: openTok, Predicate: c.test, Consequent: consequent, Alternative: result}
	}
	if result == nil {
		return nil, p.errorf(openTok.Pos, "cond: at least one clause is required")
	}
	return result, nil
}

func (p *Parser) parseApplication(openTok token.Token) (ast.Expression, error) {
	op, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var operands []ast.Expression
	for p.cur.Type != token.RPAREN {
		if p.cur.Type == token.EOF {
			return nil, p.errorf(p.cur.Pos, "unexpected end of input in application")
		}
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	p.nextToken() // consume )
	return &ast.Application{Token: openTok, Operator: op, Operands: operands}, nil
}

// parseDatum reads the next form as a literal value rather than as an
// evaluable expression — used for the text following a quote keyword.
func (p *Parser) parseDatum() (value.Value, error) {
	switch p.cur.Type {
	case token.LPAREN:
		return p.parseListDatum()
	case token.QUOTE, token.QUASI, token.UNQUOTE, token.UNQUOTE_SPLICE:
		word := quoteWord(p.cur.Type)
		p.nextToken()
		inner, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		return value.List{value.Symbol(word), inner}, nil
	case token.STRING:
		s := p.cur.Literal
		p.nextToken()
		return value.String(s), nil
	case token.ATOM:
		lit := p.cur.Literal
		p.nextToken()
		if v, ok := tryNumber(lit); ok {
			return v, nil
		}
		return value.Symbol(lit), nil
	default:
		return nil, p.errorf(p.cur.Pos, "unexpected token in quoted form: %s", p.cur)
	}
}

func (p *Parser) parseListDatum() (value.Value, error) {
	p.nextToken() // consume (
	var elems []value.Value
	for p.cur.Type != token.RPAREN {
		if p.cur.Type == token.EOF {
			return nil, p.errorf(p.cur.Pos, "unexpected end of input in quoted list")
		}
		if p.cur.Type == token.DOT {
			if len(elems) != 1 {
				return nil, p.errorf(p.cur.Pos, "quoted dotted pair must have exactly one element before .")
			}
			p.nextToken() // consume .
			tail, err := p.parseDatum()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			return &value.Pair{Car: elems[0], Cdr: tail}, nil
		}
		d, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		elems = append(elems, d)
	}
	p.nextToken() // consume )
	if elems == nil {
		return value.Empty, nil
	}
	return value.List(elems), nil
}

// tryNumber attempts to read lit as an integer, float, or complex literal.
// Anything that fails all three is left for the caller to
// treat as a symbol or identifier — notably "#t"/"#f" are not literal
// syntax here: they are plain identifiers bound by the global environment.
func tryNumber(lit string) (value.Value, bool) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return value.Integer(i), true
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return value.Float(f), true
	}
	if c, err := strconv.ParseComplex(lit, 128); err == nil {
		return value.Complex(c), true
	}
	return nil, false
}
