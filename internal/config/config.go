// Package config centralises configuration parsing for the dashboard service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL = "http://localhost:8000/api"
	codespaceURLFmt   = "https://%s-8000.app.github.dev/api"
)

// Config captures runtime configuration values for the dashboard service.
type Config struct {
	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:":3000"`

	// APIBaseURL is resolved by Load and injected into the API client.
	// Set directly it wins over CodespaceName.
	APIBaseURL    string        `env:"API_BASE_URL"`
	CodespaceName string        `env:"CODESPACE_NAME"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	OTelEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"octofit-dashboard"`

	DemoMode       bool   `env:"DEMO_MODE" envDefault:"false"`
	DemoAPIAddress string `env:"DEMO_API_ADDRESS" envDefault:"127.0.0.1:8000"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.APITimeout < 0 {
		return Config{}, fmt.Errorf("API_TIMEOUT must not be negative, got %s", cfg.APITimeout)
	}
	cfg.APIBaseURL = ResolveAPIBaseURL(cfg.APIBaseURL, cfg.CodespaceName)
	if cfg.DemoMode {
		cfg.APIBaseURL = "http://" + cfg.DemoAPIAddress + "/api"
	}
	return cfg, nil
}

// LoadDotenv exports variables from local .env files that are not already
// set. Missing files are skipped; with no paths ".env" is tried.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// ResolveAPIBaseURL picks the API address: an explicit override, then the
// hosted codespace address, then the loopback default.
func ResolveAPIBaseURL(explicit, codespace string) string {
	if value := strings.TrimSpace(explicit); value != "" {
		return strings.TrimRight(value, "/")
	}
	if name := strings.TrimSpace(codespace); name != "" {
		return fmt.Sprintf(codespaceURLFmt, name)
	}
	return defaultAPIBaseURL
}
