package classify

import (
	"errors"
	"net/http"
)

// Domain errors for classification operations.
var (
	ErrModelUnavailable = errors.New("model not loaded")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrEmptyContent     = errors.New("document content is empty")
	ErrNotPDF           = errors.New("only PDF files are supported")
	ErrFileTooLarge     = errors.New("file exceeds maximum upload size")
	ErrUnextractable    = errors.New("could not extract text from PDF file")
	ErrAnalysisFailed   = errors.New("analysis failed")
)

// MapHTTPStatus maps classification domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrModelUnavailable) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrEmptyContent) || errors.Is(err, ErrNotPDF) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrUnextractable) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrAnalysisFailed) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
