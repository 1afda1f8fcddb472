// Package llm defines the generation capability boundary for Warden.
// It provides the Runtime/Instance contract for acquiring isolated model
// instances, the ChatML envelope types sent to them, and an ollama-backed
// production implementation.
package llm

import "context"

// Parameters holds the decoding settings for a single generation call.
// Values are fixed per endpoint and are never request-controllable.
type Parameters struct {
	MaxTokens   int
	Temperature float64
	Stop        []string
}

// Runtime produces model instances on demand. Implementations must
// guarantee that instances acquired from separate calls share no decoding
// state; Warden acquires a fresh instance for every request to prevent
// cross-request contamination of conversation state or key-value cache.
type Runtime interface {
	// Acquire obtains a fresh model instance. Failure here means the model
	// is unavailable and must surface before any generation attempt.
	Acquire(ctx context.Context) (Instance, error)

	// Probe verifies the runtime is reachable and the configured model is
	// present, without acquiring an instance.
	Probe(ctx context.Context) error
}

// Instance is a single-use handle on the model. Callers must Release it
// on every path once the request completes.
type Instance interface {
	// Generate runs one bounded completion over the rendered prompt.
	// Output is capped at params.MaxTokens and halts at any stop sequence.
	Generate(ctx context.Context, prompt string, params Parameters) (string, error)

	// Release discards the instance and any decoding state it holds.
	Release()
}
