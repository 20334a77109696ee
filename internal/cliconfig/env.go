package cliconfig

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the CLI reads.
const EnvPrefix = "NOMINAL_"

// EnvConfig names the variable that selects an explicit config file.
const EnvConfig = EnvPrefix + "CONFIG"

// ParseEnv loads configuration from NOMINAL_* environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnvConfig applies environment overrides to cfg.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *Config) error {
	var fromEnv Config
	if err := ParseEnv(&fromEnv); err != nil {
		return err
	}
	MergeConfig(cfg, &fromEnv, SourceEnv)
	return nil
}

// ConfigFileFromEnv returns the config file named by NOMINAL_CONFIG, if any.
func ConfigFileFromEnv() string {
	return os.Getenv(EnvConfig)
}
