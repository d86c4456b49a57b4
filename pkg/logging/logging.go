package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Level represents a log level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format represents the log output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Redacted replaces the value of every secret attribute.
const Redacted = "[REDACTED]"

// SecretKeys are the attribute keys masked when Config.Redact is nil.
var SecretKeys = []string{"token", "authorization", "password"}

// Config holds logging configuration.
type Config struct {
	Level  Level
	Format Format

	// Output defaults to os.Stderr.
	Output io.Writer

	AddSource bool

	// Redact lists attribute keys whose values are never written, matched
	// case-insensitively at any group depth. Nil means SecretKeys.
	Redact []string
}

// Settings builds a Config from the string values of the console
// configuration (logLevel, logFormat).
func Settings(level, format string, out io.Writer) Config {
	return Config{
		Level:  ParseLevel(level),
		Format: ParseFormat(format),
		Output: out,
	}
}

// New creates a logger for cfg. Secret attributes are masked.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	redact := cfg.Redact
	if redact == nil {
		redact = SecretKeys
	}

	opts := &slog.HandlerOptions{
		Level:       cfg.Level,
		AddSource:   cfg.AddSource,
		ReplaceAttr: redactor(redact),
	}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

func redactor(keys []string) func([]string, slog.Attr) slog.Attr {
	if len(keys) == 0 {
		return nil
	}
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Value.Kind() == slog.KindGroup {
			return a
		}
		if slices.ContainsFunc(keys, func(k string) bool { return strings.EqualFold(k, a.Key) }) {
			return slog.String(a.Key, Redacted)
		}
		return a
	}
}

// NewFile creates a logger that appends to the file at path. The terminal UI
// uses this because stderr is owned by the renderer. The returned closer
// must be called on shutdown.
func NewFile(path string, cfg Config) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	cfg.Output = f
	return New(cfg), f, nil
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var levels = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// ParseLevel parses a log level name, case-insensitively. Unknown names,
// including "", yield LevelInfo.
func ParseLevel(s string) Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return LevelInfo
}

// ParseFormat parses a log format name. Anything but "json" is text.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}
