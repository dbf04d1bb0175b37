// Package config loads static configuration for starrecap.
//
// Values come from a local .env file (if present) and the process
// environment, with environment taking precedence. The resulting Config is
// constructed once at process start and passed explicitly into every
// pipeline stage; there is no ambient global state.
package config

import (
	"github.com/spf13/viper"
)

// Default values applied when neither .env nor the environment sets a key.
const (
	DefaultLogLevel = "info"
	DefaultOutput   = "starred_repos.json"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel string `mapstructure:"LOG_LEVEL"`        // "debug", "info", "warn", "error"
	Username string `mapstructure:"GITHUB_USERNAME"`  // GitHub user whose stars are fetched
	Token    string `mapstructure:"GITHUB_TOKEN"`     // optional; unauthenticated requests are rate-limited harder
	Output   string `mapstructure:"STARRECAP_OUTPUT"` // snapshot destination path
}

// Load reads configuration from a .env file and/or environment variables.
// A missing .env file is not an error. CLI flags may override individual
// fields after loading.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("GITHUB_USERNAME", "")
	v.SetDefault("GITHUB_TOKEN", "")
	v.SetDefault("STARRECAP_OUTPUT", DefaultOutput)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
