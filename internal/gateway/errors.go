package gateway

import "errors"

var (
	// ErrUnavailable marks failures of the model call itself: network
	// errors, timeouts, non-2xx responses, empty choice lists.
	ErrUnavailable = errors.New("gateway unavailable")

	// ErrMalformed marks replies that arrived but did not parse as the
	// requested structure.
	ErrMalformed = errors.New("malformed extraction")
)
