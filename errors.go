package sender

import "errors"

// Errors returned by the public API. They are always wrapped with additional
// context and can be checked with errors.Is.
var (
	// ErrAddressResolution is returned from NewClient or ResolveEndpoint when
	// no IPv4 address can be derived from the configured host.
	ErrAddressResolution = errors.New("sender: no usable IPv4 address")

	// ErrInvalidConfig is returned when a configuration value, supplied
	// directly or through the environment, is malformed.
	ErrInvalidConfig = errors.New("sender: invalid configuration")

	// ErrTransport is returned when the underlying socket operation fails.
	// Transport failures are never retried internally.
	ErrTransport = errors.New("sender: transport failure")
)
