package htmlform

import "errors"

var (
	// ErrMalformedDocument is returned when a document cannot be parsed at all.
	// Distinct from the not-found errors below: those mean the document parsed
	// but lacks an expected element.
	ErrMalformedDocument = errors.New("malformed html document")

	// ErrFormNotFound is returned when no form matches the given matcher.
	ErrFormNotFound = errors.New("form not found")

	// ErrInputNotFound is returned when a form lacks a named input.
	ErrInputNotFound = errors.New("form input not found")
)
