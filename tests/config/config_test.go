package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/warden/internal/config"
)

const baseConfig = `shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8000
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[model]
base_url = "http://127.0.0.1:11434"
model = "qwen3:0.6b"
context_size = 32768
generate_timeout = "5m"

[prompts]
template_path = "security_analysis_prompt.txt"

[api]
base_path = "/api"
max_upload_size = "50MB"

[api.cors]
enabled = true
origins = ["*"]
`

const overlayConfig = `[server]
port = 9090

[model]
model = "qwen3:4b"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server port: got %d, want 8000", cfg.Server.Port)
	}
	if cfg.Model.Model != "qwen3:0.6b" {
		t.Errorf("model: got %s, want qwen3:0.6b", cfg.Model.Model)
	}
	if cfg.Model.ContextSize != 32768 {
		t.Errorf("context_size: got %d, want 32768", cfg.Model.ContextSize)
	}
	if cfg.Prompts.TemplatePath != "security_analysis_prompt.txt" {
		t.Errorf("template_path: got %s", cfg.Prompts.TemplatePath)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api", cfg.API.BasePath)
	}
	if !cfg.API.CORS.Enabled {
		t.Error("cors should be enabled")
	}
	if len(cfg.API.CORS.Origins) != 1 || cfg.API.CORS.Origins[0] != "*" {
		t.Errorf("cors origins: got %v, want [*]", cfg.API.CORS.Origins)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv("WARDEN_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Model.Model != "qwen3:4b" {
		t.Errorf("model: got %s, want qwen3:4b (from overlay)", cfg.Model.Model)
	}
	if cfg.Model.ContextSize != 32768 {
		t.Errorf("context_size: got %d, want 32768 (from base)", cfg.Model.ContextSize)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("WARDEN_VERSION", "2.0.0")
	t.Setenv("WARDEN_SERVER_PORT", "3000")
	t.Setenv("WARDEN_MODEL_NAME", "qwen3:8b")
	t.Setenv("WARDEN_MODEL_GENERATE_TIMEOUT", "10m")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Model.Model != "qwen3:8b" {
		t.Errorf("model: got %s, want qwen3:8b", cfg.Model.Model)
	}
	if cfg.Model.GenerateTimeout != "10m" {
		t.Errorf("generate_timeout: got %s, want 10m", cfg.Model.GenerateTimeout)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server port default: got %d, want 8000", cfg.Server.Port)
	}
	if cfg.Model.BaseURL != "http://127.0.0.1:11434" {
		t.Errorf("model base_url default: got %s", cfg.Model.BaseURL)
	}
	if cfg.Model.Model != "qwen3:0.6b" {
		t.Errorf("model default: got %s, want qwen3:0.6b", cfg.Model.Model)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path default: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.Prompts.TemplatePath != "security_analysis_prompt.txt" {
		t.Errorf("template_path default: got %s", cfg.Prompts.TemplatePath)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", "server = not valid toml [")
	chdir(t, dir)

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestEnvDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}
}

func TestEnvFromEnvVar(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("WARDEN_ENV", "production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if d := cfg.ShutdownTimeoutDuration(); d != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", d)
	}
}

func TestServerAddr(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if addr := cfg.Server.Addr(); addr != "0.0.0.0:8000" {
		t.Errorf("addr: got %s, want 0.0.0.0:8000", addr)
	}
}

func TestMaxUploadSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"valid 50MB", "50MB", 50 * 1024 * 1024},
		{"valid 10MB", "10MB", 10 * 1024 * 1024},
		{"valid 1GB", "1GB", 1024 * 1024 * 1024},
		{"invalid falls back to 50MB", "bad", 50 * 1024 * 1024},
		{"empty falls back to 50MB", "", 50 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.APIConfig{MaxUploadSize: tt.size}
			got := cfg.MaxUploadSizeBytes()
			if got != tt.want {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxUploadSizeEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("WARDEN_API_MAX_UPLOAD_SIZE", "100MB")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := int64(100 * 1024 * 1024)
	if got := cfg.API.MaxUploadSizeBytes(); got != want {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, want)
	}
}

func TestTemplatePathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("WARDEN_PROMPTS_TEMPLATE_PATH", "/etc/warden/rubric.txt")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Prompts.TemplatePath != "/etc/warden/rubric.txt" {
		t.Errorf("template_path: got %s, want /etc/warden/rubric.txt", cfg.Prompts.TemplatePath)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name: "invalid port",
			config: `shutdown_timeout = "30s"

[server]
port = 99999
`,
			wantErr: "invalid port",
		},
		{
			name: "invalid read_timeout",
			config: `shutdown_timeout = "30s"

[server]
read_timeout = "bad"
`,
			wantErr: "invalid read_timeout",
		},
		{
			name: "invalid generate_timeout",
			config: `shutdown_timeout = "30s"

[model]
generate_timeout = "bad"
`,
			wantErr: "invalid generate_timeout",
		},
		{
			name:    "invalid shutdown_timeout",
			config:  `shutdown_timeout = "bad"`,
			wantErr: "invalid shutdown_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.toml", tt.config)
			chdir(t, dir)

			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
