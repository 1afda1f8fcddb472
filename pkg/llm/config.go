package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds model runtime connection and decoding-context parameters.
type Config struct {
	BaseURL         string `toml:"base_url"`
	Model           string `toml:"model"`
	ContextSize     int    `toml:"context_size"`
	GenerateTimeout string `toml:"generate_timeout"`
}

// Env maps model config fields to environment variable names for override injection.
type Env struct {
	BaseURL         string
	Model           string
	ContextSize     string
	GenerateTimeout string
}

// GenerateTimeoutDuration returns GenerateTimeout as a time.Duration.
func (c *Config) GenerateTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.GenerateTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.ContextSize != 0 {
		c.ContextSize = overlay.ContextSize
	}
	if overlay.GenerateTimeout != "" {
		c.GenerateTimeout = overlay.GenerateTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://127.0.0.1:11434"
	}
	if c.Model == "" {
		c.Model = "qwen3:0.6b"
	}
	if c.ContextSize == 0 {
		c.ContextSize = 32768
	}
	if c.GenerateTimeout == "" {
		c.GenerateTimeout = "5m"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.ContextSize != "" {
		if v := os.Getenv(env.ContextSize); v != "" {
			if size, err := strconv.Atoi(v); err == nil {
				c.ContextSize = size
			}
		}
	}
	if env.GenerateTimeout != "" {
		if v := os.Getenv(env.GenerateTimeout); v != "" {
			c.GenerateTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if c.ContextSize < 1 {
		return fmt.Errorf("invalid context_size: %d", c.ContextSize)
	}
	if _, err := time.ParseDuration(c.GenerateTimeout); err != nil {
		return fmt.Errorf("invalid generate_timeout: %w", err)
	}
	return nil
}
