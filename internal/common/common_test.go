package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSocketPath(t *testing.T) {
	t.Setenv(socketEnv, "/tmp/custom.sock")
	if got := DefaultSocketPath(); got != "/tmp/custom.sock" {
		t.Fatalf("expected env override, got %q", got)
	}

	t.Setenv(socketEnv, "")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	if got := DefaultSocketPath(); got != "/run/user/1000/gonhanh.sock" {
		t.Fatalf("expected runtime dir socket, got %q", got)
	}

	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultSocketPath(); got != "/state/gonhanh/gonhanh.sock" {
		t.Fatalf("expected state dir socket, got %q", got)
	}
}

func TestEnsureSocketDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureSocketDir(filepath.Join(dir, socketName)); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected %s to exist", dir)
	}
	if err := EnsureSocketDir(socketName); err != nil {
		t.Fatalf("relative socket: %v", err)
	}
}

func TestDefaultConfigPaths(t *testing.T) {
	paths := DefaultConfigPaths()
	if len(paths) == 0 || paths[0] != "gonhanh.ini" {
		t.Fatalf("expected the working directory first, got %v", paths)
	}
}
