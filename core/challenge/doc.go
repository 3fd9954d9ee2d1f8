// Package challenge orchestrates one DNS-01 validation hook invocation
// against a hosted DNS console.
//
// Certbot's manual mode calls the same hook binary twice per challenge: once
// to publish the validation TXT record before it asks the ACME server to
// verify, and once afterwards to remove it. The two invocations are separate
// processes with no shared memory; the only state that crosses between them
// is the provider's record identifier, printed to stdout by the first
// invocation and handed back to the second via certbot's captured-output
// mechanism.
//
// The Manager runs a single invocation:
//
//	var cfg challenge.Config
//	config.MustLoad(&cfg)
//
//	mgr, err := challenge.New(console, cfg)
//	if err != nil {
//		// Handle challenge.ErrInvalidConfig
//	}
//
//	if err := mgr.Run(ctx); err != nil {
//		// Report and exit non-zero; certbot aborts issuance.
//	}
//
// # Mode Selection
//
// Which flow runs is decided once, before any request: a set
// CERTBOT_AUTH_OUTPUT (Config.AuthOutput non-nil) selects cleanup, an unset
// one selects creation. There is no mid-flow switch.
//
// The creation flow authenticates, resolves the configured zone to its
// provider identifier, derives the record name (see RecordName), creates
// the TXT record, waits the configured propagation interval, locates the
// new record's identifier in the zone listing, and only then emits that
// identifier on the handoff channel.
//
// The cleanup flow parses the identifier from the captured output,
// authenticates, resolves the zone, and deletes the record. Deleting an
// already-absent record succeeds: certbot may run cleanup more than once
// for the same challenge.
//
// # The Handoff Contract
//
// FormatRecordID and ParseRecordID define the captured-output format: one
// line holding one opaque whitespace-free token. stdout belongs to this
// channel exclusively; all logging goes to stderr.
//
// # Error Reporting
//
// The Manager wraps every provider error with the failing step's name and
// nothing else, so errors.Is still reaches the provider's sentinels and the
// process can exit with a distinct diagnostic per failure kind.
package challenge
