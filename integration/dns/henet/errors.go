package henet

import "errors"

var (
	// ErrInvalidConfig is returned when client configuration is incomplete or malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTransport is returned for network-level failures: connection errors,
	// timeouts, and unexpected HTTP status codes.
	ErrTransport = errors.New("console request failed")

	// ErrAuthenticationFailed is returned when the console rejects the supplied
	// credentials or the post-login page still shows the credential form.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSessionExpired is returned when an authenticated request comes back
	// with the credential form, meaning the console wants a fresh login.
	ErrSessionExpired = errors.New("session expired")

	// ErrLoginFormNotFound is returned when the login page no longer contains
	// a recognizable credential form. This means the console markup changed
	// shape, not that credentials are wrong.
	ErrLoginFormNotFound = errors.New("login form not found")

	// ErrZoneNotFound is returned when no hosted zone matches the requested name.
	ErrZoneNotFound = errors.New("zone not found")

	// ErrRecordNotFound is returned when a record cannot be located in a
	// zone's listing, including after all post-create lookup attempts.
	ErrRecordNotFound = errors.New("record not found")

	// ErrCreateFailed is returned when the console rejects a record submission.
	ErrCreateFailed = errors.New("record creation rejected")

	// ErrDeleteFailed is returned when a record is still listed after a delete
	// submission and the console reported no success.
	ErrDeleteFailed = errors.New("record deletion failed")

	// ErrParseFailed is returned when a console response cannot be parsed as HTML.
	ErrParseFailed = errors.New("console page parse failed")

	// ErrNotInZone is returned when a record name does not belong to the zone
	// it is being resolved against.
	ErrNotInZone = errors.New("name not within zone")
)
