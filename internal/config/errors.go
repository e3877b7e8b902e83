package config

import "errors"

var (
	// ErrInvalidCapability is returned for an unknown derive word.
	ErrInvalidCapability = errors.New("invalid capability")
	// ErrInvalidDirective is returned for a directive with a malformed value.
	ErrInvalidDirective = errors.New("invalid directive")
	// ErrInvalidConfig is returned when a resolved configuration fails
	// validation.
	ErrInvalidConfig = errors.New("invalid config")
)
