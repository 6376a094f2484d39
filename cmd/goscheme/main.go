// Command goscheme is the CLI entry point: run a file, evaluate an inline
// expression, or start an interactive session.
package main

import (
	"os"

	"github.com/goscheme/goscheme/cmd/goscheme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
