package api

import (
	"github.com/JaimeStill/warden/internal/classify"
	"github.com/JaimeStill/warden/internal/config"
	"github.com/JaimeStill/warden/internal/generate"
	"github.com/JaimeStill/warden/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Classify classify.System
	Generate generate.System
}

// NewDomain creates all domain systems from the API runtime. The rubric
// template is loaded once here and shared by every classification request.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	template := prompts.LoadTemplate(cfg.Prompts.TemplatePath, runtime.Logger)

	return &Domain{
		Classify: classify.New(runtime.Model, template, runtime.Logger),
		Generate: generate.New(runtime.Model, runtime.Logger),
	}
}
