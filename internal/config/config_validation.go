package config

import (
	"fmt"
	"strings"

	"github.com/unitytechnetwork/Afifi-sub000/internal/defect"
)

// validate checks the settings shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Vocabulary != "" {
		if _, err := defect.VocabularyByName(cfg.App.Vocabulary); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}
	if h := cfg.App.SupervisorPINHash; h != "" && !strings.HasPrefix(h, "$2") {
		return fmt.Errorf("%w: supervisor pin hash is not a bcrypt hash", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	return validateStorage(cfg.Storage)
}

func (cfg *CLIConfig) validate() error {
	return validateStorage(cfg.Storage)
}

func validateStorage(s Storage) error {
	if strings.TrimSpace(s.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}
