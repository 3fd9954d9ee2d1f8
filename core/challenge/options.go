package challenge

import (
	"io"
	"log/slog"
	"time"
)

type options struct {
	logger *slog.Logger
	out    io.Writer
	sleep  func(time.Duration)
}

// Option configures the Manager beyond what Config carries.
type Option func(*options)

// WithLogger sets the logger used for per-step progress.
// Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithOutput sets the writer the record identifier is emitted on. Defaults
// to os.Stdout, the channel certbot captures. Everything else the process
// says must go elsewhere.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithSleep replaces the function serving the propagation wait, letting
// tests observe the wait without sitting through it.
func WithSleep(sleep func(time.Duration)) Option {
	return func(o *options) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}
