package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type validator interface {
	Validate() error
}

// Load reads the server configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is taken from CONFIG_PATH (fallback "./config.yaml").
// A missing fallback file is not an error; a missing explicit file is.
func Load() (*Config, error) {
	var cfg Config
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWorker reads the generation worker configuration the same way as Load.
func LoadWorker() (*WorkerConfig, error) {
	var cfg WorkerConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(cfg validator) error {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}
