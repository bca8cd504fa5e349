package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	yaml := `
port: "9000"
storage:
  driver: mongo
  mongo_uri: mongodb://db:27017
admin:
  password: from-file
upload:
  cloud_name: demo
  preset: unsigned
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("PORTFOLIO_ADMIN__PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://db:27017", cfg.Storage.MongoURI)
	assert.Equal(t, "portfolio", cfg.Storage.MongoDatabase, "unset keys keep defaults")
	assert.Equal(t, "from-env", cfg.Admin.Password)
	assert.Equal(t, "demo", cfg.Upload.CloudName)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }},
		{"mongo without uri", func(c *Config) { c.Storage.Driver = DriverMongo; c.Storage.MongoURI = "" }},
		{"sqlite without path", func(c *Config) { c.Storage.SQLitePath = "" }},
		{"half upload config", func(c *Config) { c.Upload.CloudName = "demo" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
