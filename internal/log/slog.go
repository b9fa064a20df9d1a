// Package log configures the process-wide slog logger from command-line
// flags.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

const (
	levelFlag  = "log-level"
	formatFlag = "log-fmt"
)

var (
	// logFormat is the configured log format.
	logFormat = "text"

	// logLevel is the configured log level.
	logLevel = "info"
)

// RegisterFlags installs --log-level and --log-fmt on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logLevel, levelFlag, logLevel, "log level: debug, info, warn or error")
	fs.StringVar(&logFormat, formatFlag, logFormat, "log format: text or json")
}

// Init installs the default logger. Values set on the command line win
// over the fallbacks, which usually come from the config file.
func Init(fs *pflag.FlagSet, fallbackLevel, fallbackFormat string) (*slog.Logger, error) {
	level, format := logLevel, logFormat
	if fs != nil {
		if f := fs.Lookup(levelFlag); (f == nil || !f.Changed) && fallbackLevel != "" {
			level = fallbackLevel
		}
		if f := fs.Lookup(formatFlag); (f == nil || !f.Changed) && fallbackFormat != "" {
			format = fallbackFormat
		}
	}
	logger, err := New(os.Stderr, format, level)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// New builds a logger writing to w.
func New(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := slogLevel(level)
	if err != nil {
		return nil, err
	}
	handler, err := slogHandler(w, format, lvl)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

// slogLevel maps the log-level flag value to a slog.Level.
func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

func slogHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "text", "":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}), nil
	default:
		return nil, fmt.Errorf("invalid log-fmt %q: expected text or json", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
