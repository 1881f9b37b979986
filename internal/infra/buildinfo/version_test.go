package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.Commit == "" {
		t.Error("Commit should not be empty")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}

func TestString(t *testing.T) {
	prev := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = prev })

	s := String()
	if !strings.HasPrefix(s, "v1.2.3 (commit: ") {
		t.Errorf("String() = %q, want version prefix", s)
	}
	if !strings.Contains(s, runtime.Version()) {
		t.Errorf("String() = %q, should contain Go version", s)
	}
}
