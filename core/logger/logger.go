package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type config struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures the logger created by New.
type Option func(*config)

// WithLevel sets the minimum level the logger emits.
func WithLevel(level slog.Level) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// WithJSONFormatter switches output to JSON, one object per line.
func WithJSONFormatter() Option {
	return func(cfg *config) {
		cfg.json = true
	}
}

// WithOutput redirects log output. The default is os.Stderr: stdout is left
// untouched so callers can use it as a data channel.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.output = w
		}
	}
}

// WithAttr attaches attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(cfg *config) {
		cfg.attrs = append(cfg.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level and tags records
// with the application name.
func WithDevelopment(app string) Option {
	return func(cfg *config) {
		cfg.json = false
		cfg.level = slog.LevelDebug
		if app != "" {
			cfg.attrs = append(cfg.attrs, slog.String("app", app))
		}
	}
}

// WithProduction configures JSON output at info level and tags records
// with the application name.
func WithProduction(app string) Option {
	return func(cfg *config) {
		cfg.json = true
		cfg.level = slog.LevelInfo
		if app != "" {
			cfg.attrs = append(cfg.attrs, slog.String("app", app))
		}
	}
}

// New creates a slog.Logger from the provided options.
func New(opts ...Option) *slog.Logger {
	cfg := config{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.json {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs the logger as the process-wide slog default.
func SetAsDefault(log *slog.Logger) {
	if log != nil {
		slog.SetDefault(log)
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names fall back
// to info rather than failing, so a typo in LOG_LEVEL never breaks a run.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
