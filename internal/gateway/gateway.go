package gateway

import "context"

// Client is the boundary to the external language model. Implementations
// must be safe for concurrent use; the same client is shared by every
// in-flight request.
type Client interface {
	// Complete returns the model's free-text reply to prompt.
	// Failures are reported as errors matching ErrUnavailable.
	Complete(ctx context.Context, prompt string) (string, error)

	// ExtractStructured asks the model for a JSON payload and unmarshals it
	// into out. Transport failures match ErrUnavailable; replies that do not
	// parse as JSON match ErrMalformed.
	ExtractStructured(ctx context.Context, prompt string, out any) error
}
