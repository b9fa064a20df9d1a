package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "github.com/go-ini/ini"

	"gonhanh/internal/common"
	"gonhanh/internal/types"
)

type Config struct {
	Method     types.InputMethod
	ToneStyle  types.ToneStyle
	SpellCheck bool
	Enabled    bool

	LogLevel  string
	LogFormat string

	SocketPath string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func Default() Config {
	return Config{
		Method:     types.MethodTelex,
		ToneStyle:  types.ToneNew,
		Enabled:    true,
		LogLevel:   "info",
		LogFormat:  "text",
		SocketPath: common.DefaultSocketPath(),
	}
}

// Load reads the ini file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, ConfigError{msg: fmt.Sprintf("config: %s is a directory", path)}
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	input := file.Section("input")
	method, err := types.ParseInputMethod(input.Key("method").MustString(cfg.Method.String()))
	if err != nil {
		return cfg, ConfigError{msg: fmt.Sprintf("invalid method in %s: %v", path, err)}
	}
	style, err := types.ParseToneStyle(input.Key("tone_style").MustString(cfg.ToneStyle.String()))
	if err != nil {
		return cfg, ConfigError{msg: fmt.Sprintf("invalid tone_style in %s: %v", path, err)}
	}
	cfg.Method = method
	cfg.ToneStyle = style
	cfg.SpellCheck = input.Key("spell_check").MustBool(cfg.SpellCheck)
	cfg.Enabled = input.Key("enabled").MustBool(cfg.Enabled)

	logSection := file.Section("log")
	cfg.LogLevel = strings.ToLower(logSection.Key("level").MustString(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(logSection.Key("format").MustString(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return cfg, ConfigError{msg: fmt.Sprintf("invalid log format '%s' in %s", cfg.LogFormat, path)}
	}

	if socket := strings.TrimSpace(file.Section("server").Key("socket").String()); socket != "" {
		cfg.SocketPath = socket
	}
	return cfg, nil
}

// ResolveConfig loads cliPath when given, otherwise the first default
// location that exists, otherwise the defaults.
func ResolveConfig(cliPath string) (Config, error) {
	if cliPath != "" {
		if _, err := os.Stat(cliPath); err != nil {
			return Default(), ConfigError{msg: fmt.Sprintf("failed to open config: %v", err)}
		}
		return Load(cliPath)
	}
	for _, candidate := range common.DefaultConfigPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return Default(), nil
}
