package config

import (
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/csstheme/internal/log"
	"gopkg.in/yaml.v3"
)

// yamlConfigFiles are tried in order, relative to the project root
var yamlConfigFiles = []string{
	filepath.Join(".config", "css-theme.yaml"),
	filepath.Join(".config", "css-theme.yml"),
}

// ReadYAML reads configuration from .config/css-theme.{yaml,yml}.
// Returns nil if no config file exists (not an error).
func ReadYAML(rootPath string) (*Config, error) {
	for _, name := range yamlConfigFiles {
		path := filepath.Join(rootPath, name)

		data, err := os.ReadFile(path) //nolint:gosec // G304: reading the project's own config file
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		log.Debug("Loaded configuration from %s", path)
		return &cfg, nil
	}

	return nil, nil
}
