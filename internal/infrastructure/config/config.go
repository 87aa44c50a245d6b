// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for ficha configuration and data.
	DefaultConfigDir = ".ficha"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultShareOrigin is the web client the share links point at.
	DefaultShareOrigin = "https://ficha-nova-eden.vercel.app"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Storage StorageConfig `yaml:"storage,omitempty"`
	Share   ShareConfig   `yaml:"share,omitempty"`
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// StorageConfig selects the local key-value backend holding the roster.
type StorageConfig struct {
	// Driver is "sqlite" or "bolt".
	Driver string `yaml:"driver,omitempty"`
	// Path is the database file. Relative paths are resolved against the
	// config directory.
	Path string `yaml:"path,omitempty"`
}

// ShareConfig holds settings for share links.
type ShareConfig struct {
	Origin string `yaml:"origin,omitempty"`
}

// CatalogConfig points at an optional skill catalog file replacing the built-in one.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: DriverSQLite,
		},
		Share: ShareConfig{
			Origin: DefaultShareOrigin,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from the .ficha directory in the given path.
// A missing config file is not an error; defaults are used instead.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverBolt:
	default:
		return fmt.Errorf("unsupported storage driver %q (use %q or %q)", c.Storage.Driver, DriverSQLite, DriverBolt)
	}
	if c.Share.Origin == "" {
		return fmt.Errorf("share origin cannot be empty")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FICHA_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("FICHA_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("FICHA_SHARE_ORIGIN"); v != "" {
		c.Share.Origin = v
	}
	if v := os.Getenv("FICHA_CATALOG_PATH"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// StoragePath returns the database file for the configured driver.
func (c *Config) StoragePath(basePath string) string {
	path := c.Storage.Path
	if path == "" {
		path = "roster.db"
		if c.Storage.Driver == DriverBolt {
			path = "roster.bolt"
		}
	}
	if filepath.IsAbs(path) || path == ":memory:" {
		return path
	}
	return filepath.Join(ConfigDir(basePath), path)
}

// ConfigDir returns the path to the .ficha config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a ficha config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// EnsureDir creates the .ficha directory if needed.
func EnsureDir(basePath string) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
