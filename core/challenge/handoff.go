package challenge

import (
	"fmt"
	"strings"
)

// The record identifier is the only state that crosses the process boundary
// between the auth and cleanup invocations. The auth hook prints it to
// stdout, certbot captures that output, and the cleanup hook receives the
// capture verbatim in CERTBOT_AUTH_OUTPUT. Both directions of the format
// live here so the write side and the parse side cannot drift apart.

// FormatRecordID renders a record identifier as the single line the auth
// invocation emits on its handoff channel.
func FormatRecordID(id string) string {
	return id + "\n"
}

// ParseRecordID extracts the record identifier from a cleanup invocation's
// captured output. The capture must reduce to exactly one
// whitespace-delimited token; the token itself is opaque.
func ParseRecordID(captured string) (string, error) {
	tokens := strings.Fields(captured)
	switch len(tokens) {
	case 0:
		return "", ErrMissingRecordID
	case 1:
		return tokens[0], nil
	default:
		return "", fmt.Errorf("%w: %d tokens in captured output", ErrMalformedHandoff, len(tokens))
	}
}
