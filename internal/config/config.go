// Package config provides configuration loading for habitlog.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete habitlog configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// WebDir is the static frontend directory; empty disables static serving.
	WebDir  string        `yaml:"web_dir"`
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Driver is one of "sqlite", "postgres", "memory".
	Driver string `yaml:"driver"`
	// Path is the database file for the sqlite driver.
	Path string `yaml:"path"`
	// URL is the connection string for the postgres driver.
	URL string `yaml:"url"`
}

// ExportConfig configures the share-directory delivery target.
type ExportConfig struct {
	// Dir is where exported artifacts are written.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:    ":8080",
		WebDir:  "web",
		Storage: StorageConfig{Driver: "sqlite", Path: "habitlog.db"},
		Export:  ExportConfig{Dir: "export"},
	}
}

// Load reads the yaml file at path (when non-empty) over the defaults, then
// applies environment overrides, then validates.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Addr = env("HABITLOG_ADDR", c.Addr)
	c.WebDir = env("HABITLOG_WEB_DIR", c.WebDir)
	c.Storage.Driver = env("HABITLOG_STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.Path = env("HABITLOG_STORAGE_PATH", c.Storage.Path)
	c.Storage.URL = env("HABITLOG_DATABASE_URL", c.Storage.URL)
	c.Export.Dir = env("HABITLOG_EXPORT_DIR", c.Export.Dir)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Storage.URL == "" {
			return fmt.Errorf("storage.url is required for the postgres driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
