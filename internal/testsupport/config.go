package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/danchopon/FeetForTarantino/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Identity.UserID = 1
	cfg.Identity.DisplayName = "tester"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithTMDB configures the metadata collaborator for tests.
func WithTMDB(apiKey, baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TMDB.APIKey = apiKey
		cfg.TMDB.BaseURL = baseURL
	}
}
