package generate

import (
	"errors"
	"net/http"
)

// Domain errors for generation operations.
var (
	ErrModelUnavailable = errors.New("model not loaded")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrEmptyPrompt      = errors.New("prompt is empty")
)

// MapHTTPStatus maps generation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrModelUnavailable) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrEmptyPrompt) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
