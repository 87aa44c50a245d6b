package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Ficha de Nova Eden configuration

storage:
  driver: sqlite          # sqlite or bolt
  # path: roster.db       # relative to .ficha/

share:
  origin: https://ficha-nova-eden.vercel.app

# catalog:
#   path: skills.yaml     # replaces the built-in skill list

log:
  level: warn             # or set LOG_LEVEL
  format: text            # text or json (or set LOG_FORMAT)
`

// WriteDefault creates the .ficha directory and writes a default config file.
func WriteDefault(basePath string) error {
	if err := EnsureDir(basePath); err != nil {
		return err
	}

	configFile := ConfigFilePath(basePath)
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	if err := EnsureDir(basePath); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ConfigFilePath(basePath), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
