package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", Filename, err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "package: widgets\nsuffix: _gen.go\nhandler_prefix: when\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{Package: "widgets", Suffix: "_gen.go", HandlerPrefix: "when"}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoad_PartialConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "package: widgets\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Package != "widgets" {
		t.Errorf("Package = %q, want %q", cfg.Package, "widgets")
	}
	if cfg.Suffix != "_vex.go" {
		t.Errorf("Suffix = %q, want %q", cfg.Suffix, "_vex.go")
	}
	if cfg.HandlerPrefix != "on" {
		t.Errorf("HandlerPrefix = %q, want %q", cfg.HandlerPrefix, "on")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "package: [unclosed\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error, got nil")
	}
}
