package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaRuntime implements Runtime against a local ollama server. Every
// Acquire builds a fresh client and verifies the configured model is
// present, and every generation sets keep_alive to zero so the model
// unloads when the call completes. This trades load latency for strict
// per-request isolation.
type OllamaRuntime struct {
	cfg    *Config
	logger *slog.Logger
}

// NewOllamaRuntime creates an OllamaRuntime from the given config.
func NewOllamaRuntime(cfg *Config, logger *slog.Logger) *OllamaRuntime {
	return &OllamaRuntime{
		cfg:    cfg,
		logger: logger.With("system", "llm"),
	}
}

// Probe verifies the ollama server is reachable and the configured model
// is present locally.
func (r *OllamaRuntime) Probe(ctx context.Context) error {
	client, err := r.client()
	if err != nil {
		return err
	}
	return r.verifyModel(ctx, client)
}

// Acquire creates a fresh client, confirms the configured model is
// available, and returns a single-use instance bound to it.
func (r *OllamaRuntime) Acquire(ctx context.Context) (Instance, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	if err := r.verifyModel(ctx, client); err != nil {
		return nil, err
	}

	return &ollamaInstance{
		client:  client,
		cfg:     r.cfg,
		logger:  r.logger,
		timeout: r.cfg.GenerateTimeoutDuration(),
	}, nil
}

func (r *OllamaRuntime) client() (*api.Client, error) {
	base, err := url.Parse(r.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base url %q: %w", ErrUnavailable, r.cfg.BaseURL, err)
	}
	return api.NewClient(base, http.DefaultClient), nil
}

func (r *OllamaRuntime) verifyModel(ctx context.Context, client *api.Client) error {
	resp, err := client.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: list models: %w", ErrUnavailable, err)
	}

	for _, m := range resp.Models {
		if m.Name == r.cfg.Model || m.Model == r.cfg.Model {
			return nil
		}
	}

	return fmt.Errorf("%w: model %q not found locally", ErrUnavailable, r.cfg.Model)
}

type ollamaInstance struct {
	client  *api.Client
	cfg     *Config
	logger  *slog.Logger
	timeout time.Duration
}

// Generate runs a raw-mode completion over the rendered prompt under a
// hard wall-clock timeout. keep_alive is zero so the model unloads after
// the call, discarding all decoding state.
func (i *ollamaInstance) Generate(ctx context.Context, prompt string, params Parameters) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	stream := false
	req := &api.GenerateRequest{
		Model:     i.cfg.Model,
		Prompt:    prompt,
		Raw:       true,
		Stream:    &stream,
		KeepAlive: &api.Duration{Duration: 0},
		Options: map[string]any{
			"temperature": params.Temperature,
			"num_predict": params.MaxTokens,
			"num_ctx":     i.cfg.ContextSize,
			"stop":        params.Stop,
		},
	}

	var sb strings.Builder
	err := i.client.Generate(ctx, req, func(res api.GenerateResponse) error {
		sb.WriteString(res.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	return sb.String(), nil
}

// Release is a no-op for ollama instances: the zero keep_alive on every
// generation already unloads the model and its decoding state.
func (i *ollamaInstance) Release() {}
