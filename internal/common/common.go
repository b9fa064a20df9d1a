package common

import (
	"os"
	"path/filepath"
)

const (
	socketEnv  = "GONHANH_SOCKET"
	socketName = "gonhanh.sock"
	appDir     = "gonhanh"
)

// DefaultSocketPath returns the default unix domain socket path used by the
// gonhanh translation server.
func DefaultSocketPath() string {
	if env := os.Getenv(socketEnv); env != "" {
		return env
	}
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, socketName)
	}
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, appDir, socketName)
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, appDir, socketName)
	}
	return filepath.Join(os.TempDir(), socketName)
}

// EnsureSocketDir ensures that the directory containing the unix socket exists.
func EnsureSocketDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" || dir == string(filepath.Separator) {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// DefaultConfigPaths lists where a configuration file is looked for when
// none is given, in order.
func DefaultConfigPaths() []string {
	paths := []string{"gonhanh.ini"}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		paths = append(paths, filepath.Join(configDir, appDir, "gonhanh.ini"))
	}
	return paths
}
