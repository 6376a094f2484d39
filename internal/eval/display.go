package eval

import "github.com/goscheme/goscheme/internal/value"

// DisplayString renders v the way the display primitive does: identical
// to String() for every type, quotes included for a String value.
func DisplayString(v value.Value) string {
	return v.String()
}
