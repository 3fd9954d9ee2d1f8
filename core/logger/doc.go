// Package logger provides structured logging utilities built on Go's standard
// slog package, with attribute helpers for the DNS validation domain.
//
// Output defaults to stderr: in hook processes stdout is a data channel (it
// carries the record identifier handed back to the certificate client), so
// nothing in this package ever writes there.
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/dmitrymomot/hedns/core/logger"
//
//	// Development logger: text format, debug level
//	log := logger.New(logger.WithDevelopment("certbot-he-hook"))
//
//	// Production logger: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("certbot-he-hook"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
//	log.Info("record created",
//		logger.Component("henet"),
//		logger.Zone("adammiller.io"),
//		logger.RecordID("445566"),
//	)
//
// # Attribute Helpers
//
// Helpers cover errors, timing, and the identifiers this domain works with:
//
//	log.Error("zone resolution failed",
//		logger.Error(err),
//		logger.Component("henet"),
//		logger.Zone(zone),
//		logger.Elapsed(start),
//	)
//
//	log.Debug("lookup retry",
//		logger.RecordName("_acme-challenge.example"),
//		logger.RetryCount(attempt),
//	)
//
// Error, ID, Key and the domain helpers return an empty Attr for nil or empty
// values, so callers never need to guard against them.
//
// # Global Logger Setup
//
// Install a logger as the process default so every package logs consistently:
//
//	log := logger.New(
//		logger.WithProduction("certbot-he-hook"),
//		logger.WithAttr(logger.RunID(runID)),
//	)
//	logger.SetAsDefault(log)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
