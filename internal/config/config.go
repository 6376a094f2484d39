// Package config loads REPL and CLI preferences from a YAML file,
// tolerating a missing file by falling back to defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the user-tunable knobs that the core itself has no
// opinion about: prompt text, colorized error output, and a REPL history
// file path. HistoryFile is loaded but nothing reads it: the REPL does
// not persist history.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Colorize    bool   `yaml:"colorize"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() Config {
	return Config{
		Prompt:      "goscheme> ",
		Colorize:    true,
		HistoryFile: "~/.goscheme_history",
	}
}

// Load reads path (a YAML file), overlaying any fields it sets onto the
// defaults. A missing file is not an error: it just yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := expandHome(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns ~/.goscheme.yaml, the conventional location Load is
// pointed at when the user supplies no --config flag.
func DefaultPath() string {
	return "~/.goscheme.yaml"
}

func expandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
