package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "portfolio.yaml"

type Driver string

const (
	DriverMemory Driver = "memory"
	DriverMongo  Driver = "mongo"
	DriverSQLite Driver = "sqlite"
)

type Config struct {
	Port    string  `koanf:"port"`
	Storage Storage `koanf:"storage"`
	Admin   Admin   `koanf:"admin"`
	Upload  Upload  `koanf:"upload"`
}

type Storage struct {
	Driver        Driver `koanf:"driver"`
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`
	SQLitePath    string `koanf:"sqlite_path"`
}

type Admin struct {
	// Password guards the admin pages. It is a shared deterrent, not a
	// secret; see package auth.
	Password string `koanf:"password"`
}

type Upload struct {
	CloudName string `koanf:"cloud_name"`
	Preset    string `koanf:"preset"`
	Endpoint  string `koanf:"endpoint"`
}

func DefaultConfig() *Config {
	return &Config{
		Port: "7521",
		Storage: Storage{
			Driver:        DriverSQLite,
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "portfolio",
			SQLitePath:    "data/portfolio.db",
		},
		Admin: Admin{Password: "admin"},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). Nested keys use a double
// underscore: PORTFOLIO_STORAGE__DRIVER -> storage.driver.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

var validDrivers = map[Driver]bool{
	DriverMemory: true,
	DriverMongo:  true,
	DriverSQLite: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if !validDrivers[c.Storage.Driver] {
		return fmt.Errorf("invalid storage.driver %q: must be one of memory, mongo, sqlite", c.Storage.Driver)
	}
	if c.Storage.Driver == DriverMongo && c.Storage.MongoURI == "" {
		return fmt.Errorf("storage.mongo_uri is required for the mongo driver")
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.SQLitePath == "" {
		return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
	}
	if (c.Upload.CloudName == "") != (c.Upload.Preset == "") {
		return fmt.Errorf("upload.cloud_name and upload.preset must be set together")
	}
	return nil
}
