package api

import (
	"net/http"

	"github.com/JaimeStill/warden/internal/config"
	"github.com/JaimeStill/warden/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Classify.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Generate.Handler().Routes(),
	)
}
