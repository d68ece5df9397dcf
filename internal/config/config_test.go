package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitlog/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "habitlog.db", cfg.Storage.Path)
	assert.Equal(t, "export", cfg.Export.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitlog.yaml")
	raw := "addr: \":9090\"\nstorage:\n  driver: memory\nexport:\n  dir: /tmp/exports\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	// untouched keys keep their defaults
	assert.Equal(t, "web", cfg.WebDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HABITLOG_ADDR", ":7070")
	t.Setenv("HABITLOG_STORAGE_DRIVER", "postgres")
	t.Setenv("HABITLOG_DATABASE_URL", "postgres://localhost/habitlog")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/habitlog", cfg.Storage.URL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr bool
	}{
		{"valid defaults", func(c *config.Config) {}, false},
		{"missing addr", func(c *config.Config) { c.Addr = "" }, true},
		{"sqlite without path", func(c *config.Config) { c.Storage.Path = "" }, true},
		{"postgres without url", func(c *config.Config) { c.Storage.Driver = "postgres" }, true},
		{"memory needs nothing", func(c *config.Config) { c.Storage.Driver = "memory" }, false},
		{"unknown driver", func(c *config.Config) { c.Storage.Driver = "redis" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
