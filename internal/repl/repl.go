// Package repl is the interactive shell: it drives internal/parser and
// internal/eval from a line-oriented input loop, kept separate from the
// evaluator core. RunSource offers a non-interactive path that evaluates
// a whole source string against an environment.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	goerrors "github.com/goscheme/goscheme/internal/errors"
	"github.com/goscheme/goscheme/internal/eval"
	"github.com/goscheme/goscheme/internal/parser"
)

// REPL reads expressions from In, evaluates them against a single
// persistent global environment, and writes results to Out.
type REPL struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
	Color  bool

	// SessionID identifies one REPL run, surfaced in the startup banner;
	// it has no bearing on evaluation.
	SessionID string

	env *eval.Environment
}

// version is shown in the startup banner; the CLI's own version flag is
// the authoritative build identity.
const version = "0.1.0"

// New creates a REPL with a fresh global environment. Color defaults to
// whatever go-isatty reports for out when out is an *os.File; callers
// that already know better (tests, piped output) should set Color
// explicitly afterward.
func New(in io.Reader, out io.Writer) *REPL {
	env := eval.NewGlobalEnvironment(out, parser.DatumAnalyzer{})
	return &REPL{
		In:        in,
		Out:       out,
		Prompt:    "goscheme> ",
		Color:     detectColor(out),
		SessionID: uuid.NewString(),
		env:       env,
	}
}

func detectColor(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Env exposes the REPL's persistent global frame, e.g. for the :env
// meta-command.
func (r *REPL) Env() *eval.Environment { return r.env }

// Run drives the read-eval-print loop until In is exhausted. A recoverable
// error (bad syntax, an undefined identifier, an arity or type error) is
// reported and the loop continues; a dispatch failure (*eval.EvalError,
// *eval.ApplyError) is reported and terminates the session, with Run
// returning it. Run returns nil on EOF or :quit.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintf(r.Out, "goscheme %s (session %s)\n", version, r.SessionID[:8])

	var pending strings.Builder
	for {
		fmt.Fprint(r.Out, r.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()

		if pending.Len() == 0 {
			if handled, quit := r.handleMeta(strings.TrimSpace(line)); handled {
				if quit {
					return nil
				}
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteString("\n")

		if !balanced(pending.String()) {
			continue
		}

		source := pending.String()
		pending.Reset()

		if err := r.evalAndPrint(source); err != nil {
			return err
		}
	}
}

// handleMeta recognizes the supplemented REPL meta-commands (:env, :quit)
// that have nothing to do with Scheme evaluation.
func (r *REPL) handleMeta(line string) (handled, quit bool) {
	switch line {
	case ":quit", ":exit":
		return true, true
	case ":env":
		fmt.Fprint(r.Out, r.env.String())
		return true, false
	case "":
		return true, false
	default:
		return false, false
	}
}

// evalAndPrint evaluates every form in source, reporting any error to Out.
// It returns non-nil only for errors the session cannot recover from; the
// caller ends the loop on those.
func (r *REPL) evalAndPrint(source string) error {
	p := parser.New(source, "<repl>")
	for !p.AtEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			r.reportError(err, source)
			return nil
		}
		result, err := eval.Evaluate(expr, r.env)
		if err != nil {
			r.reportError(err, source)
			if fatal(err) {
				return err
			}
			return nil
		}
		fmt.Fprintln(r.Out, result.String())
	}
	return nil
}

// fatal reports whether err is a dispatch failure the loop must not
// swallow: an unknown expression type, or a non-procedure in operator
// position. Syntax errors, undefined identifiers, and arity or type
// errors are all recoverable.
func fatal(err error) bool {
	switch err.(type) {
	case *eval.EvalError, *eval.ApplyError:
		return true
	}
	return false
}

func (r *REPL) reportError(err error, source string) {
	if ce, ok := err.(*goerrors.CompilerError); ok {
		ce.Source = source
		fmt.Fprintln(r.Out, ce.Format(r.Color))
		return
	}
	fmt.Fprintln(r.Out, "Error: "+err.Error())
}

// balanced reports whether src has no unmatched opening parenthesis,
// ignoring parens inside string literals — used to decide whether the
// REPL should keep reading continuation lines before attempting to parse.
func balanced(src string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range src {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth <= 0
}

// RunSource parses and evaluates every top-level form in source against
// env, in order, returning the last result — the non-interactive
// counterpart to Run. cmd/goscheme's run command does not call it; it
// parses and evaluates on its own.
func RunSource(source, file string, env *eval.Environment) (string, error) {
	p := parser.New(source, file)
	var last string
	for !p.AtEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			if ce, ok := err.(*goerrors.CompilerError); ok {
				ce.Source = source
			}
			return last, err
		}
		result, err := eval.Evaluate(expr, env)
		if err != nil {
			return last, err
		}
		last = result.String()
	}
	return last, nil
}
