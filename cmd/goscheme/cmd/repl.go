package cmd

import (
	"fmt"
	"os"

	"github.com/goscheme/goscheme/internal/config"
	"github.com/goscheme/goscheme/internal/repl"
	"github.com/spf13/cobra"
)

var configPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive session. Each line (or balanced group of
lines) is parsed and evaluated against a persistent global environment.

:env  prints the current environment's frame chain
:quit exits the session`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to a YAML config file")
}

func runREPL(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	session := repl.New(os.Stdin, os.Stdout)
	session.Prompt = cfg.Prompt
	if noColor {
		session.Color = false
	} else if !cfg.Colorize {
		session.Color = false
	}

	return session.Run()
}
