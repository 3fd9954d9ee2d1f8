package acmedns

import (
	"log/slog"
	"time"
)

// Option adjusts provider behavior beyond the required console and zone.
type Option func(*Provider)

// WithLogger routes provider logs through log instead of slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}

// WithPropagationTimeout bounds how long lego waits for a published record
// to become visible to its preflight DNS checks.
func WithPropagationTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.propagationTimeout = d
		}
	}
}

// WithPollingInterval sets how often lego rechecks for propagation.
func WithPollingInterval(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.pollingInterval = d
		}
	}
}
