package henet

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultLookupAttempts = 3
	defaultLookupInterval = 5 * time.Second
)

type options struct {
	httpClient     *http.Client
	logger         *slog.Logger
	lookupAttempts int
	lookupInterval time.Duration
}

// Option configures the Client beyond what Config carries.
type Option func(*options)

// WithLogger sets the logger used for client diagnostics.
// Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithHTTPClient sets a custom HTTP client, primarily for tests against local
// servers. A cookie jar is installed on it if the client has none, since the
// console session lives entirely in cookies.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLookupAttempts bounds how many times LocateTXT re-reads the zone
// listing before giving up. Values below 1 are ignored.
func WithLookupAttempts(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.lookupAttempts = n
		}
	}
}

// WithLookupInterval sets the pause between LocateTXT listing reads.
func WithLookupInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.lookupInterval = d
		}
	}
}
