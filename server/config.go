package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the facade settings. Zero values fall back to defaults, so a
// partial config file works.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// MaxExpressionLength overrides the engine's expression length limit.
	MaxExpressionLength int `yaml:"max_expression_length"`
	// AllowedOrigins lists CORS origins; "*" allows everyone.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
	}
}

// LoadConfig reads a yaml config file and overlays it onto the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading configuration file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing configuration file %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultConfig().AllowedOrigins
	}
	return cfg, nil
}
