// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     config
// Description: Configuration loading from TOML/YAML files and environment
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "BOOKSTORE_"

// Proxy backends
const (
	ProxyBackendMemory = "memory"
	ProxyBackendSQLite = "sqlite"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Proxy   ProxyConfig   `toml:"proxy" yaml:"proxy"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name   string `toml:"name" yaml:"name"`
	Locale string `toml:"locale" yaml:"locale" env:"LOCALE"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" yaml:"format" env:"LOG_FORMAT"`
}

// OutputConfig controls how demo output is decorated
type OutputConfig struct {
	Headings bool `toml:"headings" yaml:"headings" env:"HEADINGS"`
	Width    int  `toml:"width" yaml:"width" env:"WIDTH"`
}

// ProxyConfig selects the real subject behind the caching proxy demo
type ProxyConfig struct {
	Backend string `toml:"backend" yaml:"backend" env:"PROXY_BACKEND"`
	DSN     string `toml:"dsn" yaml:"dsn" env:"PROXY_DSN"`
}

// Default returns the built-in configuration with environment overrides applied
func Default() (*Config, error) {
	cfg := &Config{Output: OutputConfig{Headings: true}}
	return finish(cfg)
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("config file not found").
				WithCode(errors.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, "failed to read config").WithCode(errors.CodeConfigError)
	}

	cfg := &Config{Output: OutputConfig{Headings: true}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config").
			WithCode(errors.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	return finish(cfg)
}

// LoadFromEnv loads the file named by BOOKSTORE_CONFIG or the first default
// location that exists; without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default()
}

// DefaultPaths lists the locations LoadFromEnv searches
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
		"./config.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "bookstore", "config.toml"))
	}
	return paths
}

func finish(cfg *Config) (*Config, error) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "failed to apply environment").
			WithCode(errors.CodeInvalidConfig).
			WithOperation("config.env")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "Bookstore Patterns"
	}
	if c.General.Locale == "" {
		c.General.Locale = "uk"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	if c.Output.Width == 0 {
		c.Output.Width = 72
	}

	if c.Proxy.Backend == "" {
		c.Proxy.Backend = ProxyBackendMemory
	}
	if c.Proxy.DSN == "" {
		c.Proxy.DSN = "file:bookinfo?mode=memory&cache=shared"
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Proxy.Backend {
	case ProxyBackendMemory, ProxyBackendSQLite:
	default:
		return errors.New("unknown proxy backend").
			WithCode(errors.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("backend", c.Proxy.Backend)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text", "console":
	default:
		return errors.New("unknown log format").
			WithCode(errors.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", c.Logging.Format)
	}

	if c.Output.Width < 20 {
		return errors.New("output width must be at least 20").
			WithCode(errors.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("width", c.Output.Width)
	}
	return nil
}
