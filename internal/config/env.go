package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the APP_, STORAGE_, SERVER_, TELEMETRY_ and
// LOG_ variables declared by the struct tags. Vocabulary and log level
// names are case-insensitive.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.Vocabulary = strings.ToLower(strings.TrimSpace(cfg.App.Vocabulary))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Storage.DB.DSN = strings.TrimSpace(cfg.Storage.DB.DSN)
	return nil
}
