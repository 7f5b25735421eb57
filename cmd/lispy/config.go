package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL settings read from a YAML file.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Continuation string `yaml:"continuation"`
	History      string `yaml:"history"`
	Banner       string `yaml:"banner"`
	Trace        bool   `yaml:"trace"`
}

func defaultConfig() *Config {
	return &Config{
		Prompt:       "lispy> ",
		Continuation: "...... ",
		History:      "~/.lispy_history",
		Banner:       "Lispy Version 0.0.0.0.5\nPress Ctrl+c to Exit\n",
	}
}

// loadConfig reads the file at path on top of the default settings. An empty
// path returns the defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := decodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader) (*Config, error) {
	cfg := defaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return cfg, nil
}

// historyPath expands a leading "~/" in the configured history file. An
// empty result disables history.
func (c *Config) historyPath() string {
	if !strings.HasPrefix(c.History, "~/") {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.History[2:])
}
