// ABOUTME: Gateway is the single completion capability every pipeline stage uses
// ABOUTME: Callers treat responses as fallible hints, never ground truth
package llm

import "context"

// Gateway wraps a completion-capable model behind one call. Implementations
// must be safe for concurrent use.
type Gateway interface {
	// Complete sends a prompt and returns the model's text response.
	// A non-nil error means no usable text was produced.
	Complete(ctx context.Context, prompt string) (string, error)
}
