package errors

import (
	"strings"
	"testing"

	"github.com/goscheme/goscheme/internal/token"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "(+ 1 x)"
	err := New(token.Position{Line: 1, Column: 6}, "undefined identifier: x", src, "test.scm")

	out := err.Format(false)

	if !strings.Contains(out, "test.scm:1:6") {
		t.Errorf("missing file:line:col header: %q", out)
	}
	if !strings.Contains(out, "(+ 1 x)") {
		t.Errorf("missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret: %q", out)
	}
}

func TestFormatWithoutFileUsesPositionOnly(t *testing.T) {
	err := New(token.Position{Line: 2, Column: 1}, "oops", "", "")
	out := err.Format(false)
	if !strings.Contains(out, "Error at 2:1") {
		t.Errorf("= %q", out)
	}
}

func TestFormatColorAddsEscapes(t *testing.T) {
	err := New(token.Position{Line: 1, Column: 1}, "oops", "x", "f.scm")
	if !strings.Contains(err.Format(true), "\033[") {
		t.Error("expected ANSI escapes when color is true")
	}
	if strings.Contains(err.Format(false), "\033[") {
		t.Error("expected no ANSI escapes when color is false")
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var e error = New(token.Position{Line: 1, Column: 1}, "oops", "", "")
	if e.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
