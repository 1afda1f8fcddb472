package classify

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/warden/pkg/handlers"
	"github.com/JaimeStill/warden/pkg/routes"
)

// Handler provides HTTP endpoints for classification operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "classify"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/classify", Handler: h.Classify},
			{Method: "POST", Pattern: "/classify-pdf", Handler: h.ClassifyPDF},
		},
	}
}

// Classify accepts a JSON body with raw document content and returns the
// parsed classification object, or the fallback object with 503 when
// analysis fails after reaching the model.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.Classify(r.Context(), req.Content)
	h.respond(w, result, err)
}

// ClassifyPDF accepts a multipart upload with a single PDF file, extracts
// its text, and classifies it. Oversize, non-PDF, and unreadable uploads
// are rejected before the model is invoked.
func (h *Handler) ClassifyPDF(w http.ResponseWriter, r *http.Request) {
	// ParseMultipartForm's argument is only the in-memory threshold; the
	// upload limit is enforced by capping the body itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotPDF)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.ClassifyPDF(r.Context(), header.Filename, data)
	h.respond(w, result, err)
}

// respond writes the classification outcome: the parsed object on success,
// the fallback object with 503 on analysis failure, or a JSON error for
// pre-flight failures (bad input, model unavailable).
func (h *Handler) respond(w http.ResponseWriter, result Result, err error) {
	if err != nil {
		if errors.Is(err, ErrAnalysisFailed) {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, result)
			return
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
