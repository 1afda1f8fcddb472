package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/warden/internal/prompts"
	"github.com/JaimeStill/warden/pkg/extraction"
	"github.com/JaimeStill/warden/pkg/formatting"
	"github.com/JaimeStill/warden/pkg/llm"
)

// decoding holds the fixed generation parameters for classification:
// low temperature for deterministic analysis, a large token budget to
// leave room for the reasoning trace, halting at end-of-turn.
var decoding = llm.Parameters{
	MaxTokens:   2048,
	Temperature: 0.1,
	Stop:        []string{llm.TokenEnd},
}

// System defines the public contract for classification domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	Classify(ctx context.Context, content string) (Result, error)
	ClassifyPDF(ctx context.Context, filename string, data []byte) (Result, error)
}

type service struct {
	model    llm.Runtime
	template string
	logger   *slog.Logger
}

// New creates a classification System backed by the given model runtime
// and rubric template.
func New(model llm.Runtime, template string, logger *slog.Logger) System {
	return &service{
		model:    model,
		template: template,
		logger:   logger.With("system", "classify"),
	}
}

// Handler returns the HTTP handler for classification endpoints.
func (s *service) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

// Classify runs the full classification pipeline over raw text content:
// acquire a fresh model instance, generate over the rubric envelope,
// extract the embedded JSON object, and return it verbatim. Extraction or
// generation failure yields the fallback object with ErrAnalysisFailed;
// acquisition failure yields ErrModelUnavailable before any generation.
func (s *service) Classify(ctx context.Context, content string) (Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	logger := s.logger.With("request_id", uuid.New())
	logger.Info("classifying document", "content_length", len(content))

	instance, err := s.model.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	defer instance.Release()

	return s.analyze(ctx, logger, instance, content, fallbackReasoning)
}

// ClassifyPDF extracts the text of an uploaded PDF and classifies it.
// Text extraction and model acquisition run concurrently; extraction
// failure takes precedence so unreadable uploads surface as input errors
// even when the model is also unavailable.
func (s *service) ClassifyPDF(ctx context.Context, filename string, data []byte) (Result, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, ErrNotPDF
	}

	logger := s.logger.With("request_id", uuid.New(), "filename", filename)
	logger.Info("classifying PDF", "size_bytes", len(data))

	var (
		text       string
		pages      int
		instance   llm.Instance
		extractErr error
		acquireErr error
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, pages, extractErr = extraction.Text(data)
		return extractErr
	})

	g.Go(func() error {
		instance, acquireErr = s.model.Acquire(gctx)
		return acquireErr
	})

	// Wait's own error is ignored in favor of deterministic precedence
	// between the two captured errors.
	_ = g.Wait()

	if extractErr != nil {
		if instance != nil {
			instance.Release()
		}
		return nil, fmt.Errorf("%w: %w", ErrUnextractable, extractErr)
	}
	if acquireErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, acquireErr)
	}
	defer instance.Release()

	logger.Info("text extracted", "pages", pages, "extracted_length", len(text))

	result, err := s.analyze(ctx, logger, instance, text, pdfFallbackReasoning)
	if err != nil {
		return result, err
	}

	// injected metadata never overwrites fields the model produced
	if _, exists := result["pdf_metadata"]; !exists {
		result["pdf_metadata"] = PDFMetadata{
			Filename:             filename,
			FileSizeBytes:        len(data),
			ExtractedTextLength:  len(text),
			PageCount:            pages,
			ExtractionSuccessful: true,
		}
	}

	return result, nil
}

func (s *service) analyze(
	ctx context.Context,
	logger *slog.Logger,
	instance llm.Instance,
	content string,
	reasoning string,
) (Result, error) {
	envelope := prompts.Classification(s.template, content)

	raw, err := instance.Generate(ctx, envelope.Render(), decoding)
	if err != nil {
		logger.Error("generation failed", "error", err)
		return Fallback(reasoning, ""), fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	raw = strings.TrimSpace(raw)

	result, err := formatting.ExtractObject(raw)
	if err != nil {
		logger.Error("response extraction failed", "error", err)
		return Fallback(reasoning, raw), fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	logger.Info("classification complete", "classification", result["classification"])
	return Result(result), nil
}
