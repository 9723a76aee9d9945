// Package config loads service configuration from an optional YAML file
// and the environment. Environment variables win over file values; a .env
// file, when present, seeds the environment first.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ventureops/squad/responder"
)

// Environment variable names. SQUAD_CONFIG points at the YAML file when no
// explicit path is given.
const (
	EnvConfigPath = "SQUAD_CONFIG"
	EnvAddr       = "SQUAD_ADDR"
	EnvProvider   = "SQUAD_PROVIDER"
	EnvModel      = "SQUAD_MODEL"
	EnvLogLevel   = "SQUAD_LOG_LEVEL"
	EnvLogFormat  = "SQUAD_LOG_FORMAT"
)

// Config carries everything the server binary needs to wire the service.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// Provider selects the model backend: "anthropic", "openai" or "mock".
	Provider string `yaml:"provider"`
	// Model optionally overrides the backend's default model id.
	Model string `yaml:"model"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "json" or "text".
	LogFormat string `yaml:"log_format"`
	// PromptOverrides replaces responder default prompts at startup, keyed by
	// responder id.
	PromptOverrides map[string]string `yaml:"prompt_overrides"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Addr:      ":8080",
		Provider:  "anthropic",
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load builds the effective configuration: defaults, then the YAML file (the
// given path, or $SQUAD_CONFIG when empty), then environment variables. A
// missing .env file or config file is not an error; an unreadable or
// malformed config file is.
func Load(path string) (*Config, error) {
	// Seed the environment from .env when present.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}

// ApplyOverrides installs the configured prompt overrides on the registry.
// An override naming an unknown responder id is an error.
func (c *Config) ApplyOverrides(registry *responder.Registry) error {
	for id, prompt := range c.PromptOverrides {
		p := prompt
		if err := registry.SetOverride(responder.ID(id), &p); err != nil {
			return fmt.Errorf("prompt override: %w", err)
		}
	}
	return nil
}
