package llm

import "errors"

// Sentinel errors for model runtime operations.
var (
	ErrUnavailable    = errors.New("model runtime unavailable")
	ErrGenerateFailed = errors.New("generation failed")
)
