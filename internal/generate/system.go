package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/warden/internal/prompts"
	"github.com/JaimeStill/warden/pkg/llm"
)

// decoding holds the fixed generation parameters for writing assistance:
// a higher temperature for creative output and a smaller token budget,
// halting at end-of-turn.
var decoding = llm.Parameters{
	MaxTokens:   500,
	Temperature: 0.7,
	Stop:        []string{llm.TokenEnd},
}

// System defines the public contract for generation domain operations.
type System interface {
	Handler() *Handler

	Generate(ctx context.Context, req Request) (*Response, error)
}

type service struct {
	model  llm.Runtime
	logger *slog.Logger
}

// New creates a generation System backed by the given model runtime.
func New(model llm.Runtime, logger *slog.Logger) System {
	return &service{
		model:  model,
		logger: logger.With("system", "generate"),
	}
}

// Handler returns the HTTP handler for the generation endpoint.
func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Generate runs a single writing-assistance completion. Acquisition
// failure returns ErrModelUnavailable; any failure after acquisition is
// absorbed into the canned fallback response with Success false and a nil
// error, honoring the endpoint's always-200 contract.
func (s *service) Generate(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	logger := s.logger.With("request_id", uuid.New())
	logger.Info("generating text", "prompt", req.Prompt)

	instance, err := s.model.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	defer instance.Release()

	envelope := prompts.Generation(req.Prompt, req.Context)

	raw, err := instance.Generate(ctx, envelope.Render(), decoding)
	if err != nil {
		logger.Error("generation failed", "error", err)
		return fallback(req.Prompt, err), nil
	}

	logger.Info("generation complete", "length", len(raw))

	return &Response{
		GeneratedText: strings.TrimSpace(raw),
		Prompt:        req.Prompt,
		Success:       true,
	}, nil
}

// fallback builds the canned writing-assistance response returned when
// generation fails after the model was acquired.
func fallback(prompt string, err error) *Response {
	return &Response{
		GeneratedText: fmt.Sprintf(
			"I'd be happy to help you write about %s. Here's a starting point "+
				"that you can expand upon and customize to fit your specific needs.",
			prompt,
		),
		Prompt:  prompt,
		Success: false,
		Error:   err.Error(),
	}
}
