package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogfAndEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("VEX_DEBUG", path)

	if !Enabled() {
		t.Fatal("Enabled() = false with VEX_DEBUG set")
	}

	Logf("hello %d", 42)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "hello 42") {
		t.Errorf("log = %q, want it to contain %q", data, "hello 42")
	}
}
