// Package config loads Pressroom server configuration from an optional
// YAML file with environment-variable overrides. The configuration is
// explicitly constructed and passed to the components that need it; there
// is no process-wide configuration handle.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is where the config file is looked up unless
	// PRESSROOM_CONFIG_DIR overrides it.
	DefaultConfigDir = "/etc/pressroom"

	// ConfigFileName is the name of the YAML config file.
	ConfigFileName = "pressroom.yml"
)

// Config holds all Pressroom server settings.
type Config struct {
	// BindAddress is the address the HTTP server listens on.
	BindAddress string

	// Port is the HTTP server listen port.
	Port string

	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string

	// TokenSecret is the HMAC secret used to sign session tokens.
	TokenSecret string

	// TokenTTL is the validity window of issued session tokens.
	TokenTTL time.Duration

	// LogLevel controls database query logging ("debug" enables it).
	LogLevel string

	// sources tracks where each value came from: "default", "file" or
	// "env".
	sources map[string]string
}

// Attribute represents a configuration attribute with its value and source.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// fileConfig is the YAML shape of the config file.
type fileConfig struct {
	BindAddress string `yaml:"bind_address"`
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	TokenSecret string `yaml:"token_secret"`
	TokenTTL    string `yaml:"token_ttl"`
	LogLevel    string `yaml:"log_level"`
}

func newDefault() *Config {
	return &Config{
		BindAddress: "0.0.0.0",
		Port:        "8000",
		TokenTTL:    24 * time.Hour,
		LogLevel:    "info",
		sources: map[string]string{
			"bind_address": "default",
			"port":         "default",
			"token_ttl":    "default",
			"log_level":    "default",
		},
	}
}

// Load reads configuration from the config file (if present) and the
// environment. Environment variables win over file values, which win over
// defaults.
func Load() (*Config, error) {
	dir := os.Getenv("PRESSROOM_CONFIG_DIR")
	if dir == "" {
		dir = DefaultConfigDir
	}
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the given YAML file path. A missing
// file is not an error; the defaults and environment still apply.
func LoadFile(path string) (*Config, error) {
	cfg := newDefault()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := cfg.applyFile(&fc); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// no config file; defaults + env only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(fc *fileConfig) error {
	if fc.BindAddress != "" {
		c.BindAddress = fc.BindAddress
		c.sources["bind_address"] = "file"
	}
	if fc.Port != "" {
		c.Port = fc.Port
		c.sources["port"] = "file"
	}
	if fc.DatabaseURL != "" {
		c.DatabaseURL = fc.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if fc.TokenSecret != "" {
		c.TokenSecret = fc.TokenSecret
		c.sources["token_secret"] = "file"
	}
	if fc.TokenTTL != "" {
		ttl, err := time.ParseDuration(fc.TokenTTL)
		if err != nil {
			return fmt.Errorf("bad token_ttl: %w", err)
		}
		c.TokenTTL = ttl
		c.sources["token_ttl"] = "file"
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
		c.sources["log_level"] = "file"
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BIND_ADDRESS"); v != "" {
		c.BindAddress = v
		c.sources["bind_address"] = "env"
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
		c.sources["port"] = "env"
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
		c.sources["database_url"] = "env"
	}
	if v := os.Getenv("PRESSROOM_TOKEN_SECRET"); v != "" {
		c.TokenSecret = v
		c.sources["token_secret"] = "env"
	}
	if v := os.Getenv("PRESSROOM_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("bad PRESSROOM_TOKEN_TTL: %w", err)
		}
		c.TokenTTL = ttl
		c.sources["token_ttl"] = "env"
	}
	if v := os.Getenv("PRESSROOM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
		c.sources["log_level"] = "env"
	}
	return nil
}

// Validate checks that the settings required to run the server are present.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required (set DATABASE_URL)")
	}
	if c.TokenSecret == "" {
		return fmt.Errorf("token_secret is required (set PRESSROOM_TOKEN_SECRET)")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}
	return nil
}

// Addr returns the bind address and port joined for http.Server.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// Attributes returns all settings with their effective values and sources,
// for `pressctl config show`. Secrets are redacted.
func (c *Config) Attributes() []Attribute {
	redact := func(v string) string {
		if v == "" {
			return ""
		}
		return "[REDACTED]"
	}

	attrs := []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.source("bind_address")},
		{Name: "port", Value: c.Port, Source: c.source("port")},
		{Name: "database_url", Value: redact(c.DatabaseURL), Source: c.source("database_url")},
		{Name: "token_secret", Value: redact(c.TokenSecret), Source: c.source("token_secret")},
		{Name: "token_ttl", Value: c.TokenTTL.String(), Source: c.source("token_ttl")},
		{Name: "log_level", Value: c.LogLevel, Source: c.source("log_level")},
	}

	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

func (c *Config) source(name string) string {
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "unset"
}
