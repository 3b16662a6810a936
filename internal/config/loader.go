package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is read when CONFIG_PATH is unset.
const defaultConfigPath = "./wardrobe.yaml"

// Load builds the daemon configuration. Environment variables override
// wardrobe.yaml, which overrides the env-default tags. CONFIG_PATH points at
// another file; a missing wardrobe.yaml in the working directory is fine
// (a fresh device usually only sets SYNC_OWNER_ID and AUTH_JWT_SECRET), a
// missing CONFIG_PATH file is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// Environment only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
