package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "MB_CIPHER_CONFIG_PATH"

// AppConfig is the full configuration of the CLI and any embedding application
type AppConfig struct {
	Logger    LoggerSettings    `yaml:"logger"`
	Scheduler SchedulerSettings `yaml:"scheduler"`
}

// Validate checks all nested settings
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Scheduler.Validate()
}

// Load reads the configuration from a YAML file, applying environment overrides and
// defaults. An empty path loads from the environment only.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot load config from environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot load config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the configuration from the file named by MB_CIPHER_CONFIG_PATH,
// or from the environment alone when the variable is unset.
func LoadFromEnv() (*AppConfig, error) {
	return Load(os.Getenv(EnvConfigPath))
}
