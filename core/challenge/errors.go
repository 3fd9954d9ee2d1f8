package challenge

import "errors"

var (
	// ErrInvalidConfig is returned when the invocation's configuration is
	// incomplete or malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingRecordID is returned when a cleanup invocation's captured
	// output contains no record identifier.
	ErrMissingRecordID = errors.New("missing record id in captured output")

	// ErrMalformedHandoff is returned when the captured output does not
	// reduce to a single record identifier token.
	ErrMalformedHandoff = errors.New("malformed captured output")

	// ErrDomainOutsideZone is returned when the challenge domain is not
	// within the configured zone.
	ErrDomainOutsideZone = errors.New("domain outside configured zone")
)
