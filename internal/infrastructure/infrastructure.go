// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (logging, lifecycle, model runtime) that
// domain systems require.
package infrastructure

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/JaimeStill/warden/internal/config"
	"github.com/JaimeStill/warden/pkg/lifecycle"
	"github.com/JaimeStill/warden/pkg/llm"
)

const probeTimeout = 30 * time.Second

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, and model runtime access.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Model     llm.Runtime
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Model:     llm.NewOllamaRuntime(&cfg.Model, logger),
	}, nil
}

// Start registers a startup hook that probes the model runtime. A failed
// probe is logged but does not abort startup: requests surface the
// unavailable condition per-call, and the runtime may become reachable
// after the service is up.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		ctx, cancel := context.WithTimeout(i.Lifecycle.Context(), probeTimeout)
		defer cancel()

		if err := i.Model.Probe(ctx); err != nil {
			i.Logger.Error("model runtime probe failed", "error", err)
			return
		}

		i.Logger.Info("model runtime ready")
	})

	return nil
}
