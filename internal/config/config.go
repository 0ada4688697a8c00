// Package config loads application configuration from a YAML file with
// environment variable overrides, so the same binary runs locally, in Docker,
// and in CI without edits.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage driver names accepted in config.
const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Storage struct {
		Driver       string `yaml:"driver"`        // json or postgres
		SnapshotPath string `yaml:"snapshot_path"` // json driver only
	} `yaml:"storage"`
	Database struct {
		ConnStr  string `yaml:"conn_str"` // takes precedence over the parts below
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; everything has a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("SNAPSHOT_PATH"); v != "" {
		cfg.Storage.SnapshotPath = v
	}
	if v := os.Getenv("DB_CONN_STR"); v != "" {
		cfg.Database.ConnStr = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		cfg.Database.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverJSON
	}
	if cfg.Storage.SnapshotPath == "" {
		cfg.Storage.SnapshotPath = "data/bancaflow.json"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.Password == "" {
		cfg.Database.Password = "postgres"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "bancaflow"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Storage.Driver != DriverJSON && c.Storage.Driver != DriverPostgres {
		return fmt.Errorf("storage.driver must be %q or %q, got %q", DriverJSON, DriverPostgres, c.Storage.Driver)
	}
	if c.Storage.Driver == DriverJSON && c.Storage.SnapshotPath == "" {
		return fmt.Errorf("storage.snapshot_path is required for the json driver")
	}
	return nil
}

// ConnString builds the postgres connection string. An explicit conn_str
// wins over the individual parts (Docker friendly).
func (c *Config) ConnString() string {
	if c.Database.ConnStr != "" {
		return c.Database.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name)
}
