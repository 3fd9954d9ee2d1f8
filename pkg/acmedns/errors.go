package acmedns

import "errors"

// ErrInvalidConfig is returned when the provider is constructed without a
// console or a hosted zone.
var ErrInvalidConfig = errors.New("invalid configuration")
