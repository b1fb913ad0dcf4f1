// Package config loads vex.yaml, the per-directory project configuration
// for the vex CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the configuration file the CLI looks for next to the .vex
// files it processes.
const Filename = "vex.yaml"

// Config controls code generation for a directory of .vex files.
type Config struct {
	// Package is the package clause of generated files. When empty, the
	// directory name is used.
	Package string `yaml:"package"`

	// Suffix is appended to the template's base name to form the output
	// filename (default: "_vex.go").
	Suffix string `yaml:"suffix"`

	// HandlerPrefix marks attributes that declare event handlers
	// (default: "on").
	HandlerPrefix string `yaml:"handler_prefix"`
}

// Default returns the configuration used when no vex.yaml exists.
func Default() Config {
	return Config{
		Suffix:        "_vex.go",
		HandlerPrefix: "on",
	}
}

// Load reads vex.yaml from the given directory. A missing file is not an
// error: the defaults are returned.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, Filename))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", Filename, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", Filename, err)
	}

	// Empty fields fall back to defaults so a partial vex.yaml works.
	if cfg.Suffix == "" {
		cfg.Suffix = "_vex.go"
	}
	if cfg.HandlerPrefix == "" {
		cfg.HandlerPrefix = "on"
	}

	return cfg, nil
}
