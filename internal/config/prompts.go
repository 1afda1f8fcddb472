package config

import "os"

const EnvPromptsTemplatePath = "WARDEN_PROMPTS_TEMPLATE_PATH"

// PromptsConfig holds prompt asset settings. TemplatePath locates the
// security-analysis rubric on disk; a missing file falls back to the
// embedded default template rather than failing startup.
type PromptsConfig struct {
	TemplatePath string `toml:"template_path"`
}

// Finalize applies defaults and environment variable overrides.
func (c *PromptsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *PromptsConfig) Merge(overlay *PromptsConfig) {
	if overlay.TemplatePath != "" {
		c.TemplatePath = overlay.TemplatePath
	}
}

func (c *PromptsConfig) loadDefaults() {
	if c.TemplatePath == "" {
		c.TemplatePath = "security_analysis_prompt.txt"
	}
}

func (c *PromptsConfig) loadEnv() {
	if v := os.Getenv(EnvPromptsTemplatePath); v != "" {
		c.TemplatePath = v
	}
}
