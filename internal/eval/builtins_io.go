package eval

import (
	"fmt"
	"io"

	"github.com/goscheme/goscheme/internal/value"
)

// installIO wires display, write, and newline to out — the only place
// the core touches an io.Writer; everything else is pure.
func installIO(env *Environment, out io.Writer) {
	env.Define("display", &Primitive{Name: "display", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "display", Expected: 1, Got: len(args)}
		}
		fmt.Fprint(out, DisplayString(args[0]))
		return value.Empty, nil
	}})

	env.Define("write", &Primitive{Name: "write", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "write", Expected: 1, Got: len(args)}
		}
		fmt.Fprint(out, args[0].String())
		return value.Empty, nil
	}})

	env.Define("newline", &Primitive{Name: "newline", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 0 {
			return nil, &ArityMismatch{Context: "newline", Expected: 0, Got: len(args)}
		}
		fmt.Fprintln(out)
		return value.Empty, nil
	}})
}
