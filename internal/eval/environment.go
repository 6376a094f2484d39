package eval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goscheme/goscheme/internal/value"
)

// Environment is a single lexical frame chained to an outer frame. The
// chain of frames, not any single Environment, forms the full lexical
// environment: Lookup and Assign walk outward; Define always writes the
// nearest frame.
type Environment struct {
	store map[string]value.Value
	outer *Environment
}

// NewEnvironment creates a fresh, empty top-level frame.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// Extend creates a new frame chained to e, pre-populated by binding names
// to args positionally. It is an ArityMismatch for names and args to
// differ in length; applying a Compound extends its defining environment
// this way.
func (e *Environment) Extend(names []string, args []value.Value) (*Environment, error) {
	if len(names) != len(args) {
		return nil, &ArityMismatch{Context: "procedure call", Expected: len(names), Got: len(args)}
	}
	store := make(map[string]value.Value, len(names))
	for i, name := range names {
		store[name] = args[i]
	}
	return &Environment{store: store, outer: e}, nil
}

// Lookup resolves name by walking outward from e. It is an
// UndefinedIdentifier if no frame in the chain binds name.
func (e *Environment) Lookup(name string) (value.Value, error) {
	for frame := e; frame != nil; frame = frame.outer {
		if v, ok := frame.store[name]; ok {
			return v, nil
		}
	}
	return nil, &UndefinedIdentifier{Name: name}
}

// Define binds name in the nearest frame, shadowing any binding of the
// same name in an outer frame. Redefining a name already bound in the
// nearest frame overwrites it.
func (e *Environment) Define(name string, v value.Value) {
	e.store[name] = v
}

// Assign mutates the nearest existing binding of name, walking outward.
// It is an UndefinedIdentifier if name is unbound anywhere in the chain —
// Assign never creates a binding; set! does not imply define.
func (e *Environment) Assign(name string, v value.Value) error {
	for frame := e; frame != nil; frame = frame.outer {
		if _, ok := frame.store[name]; ok {
			frame.store[name] = v
			return nil
		}
	}
	return &UndefinedIdentifier{Name: name}
}

// Has reports whether name is bound anywhere in the chain.
func (e *Environment) Has(name string) bool {
	_, err := e.Lookup(name)
	return err == nil
}

// Outer returns the enclosing frame, or nil at the top level.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// String renders the frame chain from innermost to outermost, one frame
// per block, names sorted within a frame — the representation behind the
// REPL's :env meta-command.
func (e *Environment) String() string {
	var sb strings.Builder
	depth := 0
	for frame := e; frame != nil; frame = frame.outer {
		names := make([]string, 0, len(frame.store))
		for name := range frame.store {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&sb, "frame %d:\n", depth)
		for _, name := range names {
			fmt.Fprintf(&sb, "  %s = %s\n", name, frame.store[name].String())
		}
		depth++
	}
	return sb.String()
}
