// Package config loads css-theme project configuration.
//
// Configuration is read from the "cssTheme" key of package.json, falling back
// to .config/css-theme.yaml (or .yml). Flags given on the command line take
// precedence over file configuration.
package config

import (
	"maps"
)

// PackageJSONKey is the package.json field holding css-theme configuration
const PackageJSONKey = "cssTheme"

// Config is css-theme project configuration
type Config struct {
	// ThemePath is the base directory theme() paths resolve against
	ThemePath string `yaml:"themePath"`
	// Suffix is appended to the theme path before resolution, e.g. "-dark"
	Suffix string `yaml:"suffix"`
	// Files are paths or doublestar patterns of the documents to process
	Files []string `yaml:"files"`
	// Options are passed through to theme resolvers
	Options map[string]any `yaml:"options"`
}

// Load reads configuration for the project at rootPath.
// Returns nil if no configuration exists (not an error).
func Load(rootPath string) (*Config, error) {
	if rootPath == "" {
		return nil, nil
	}

	cfg, err := ReadPackageJSON(rootPath)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	return ReadYAML(rootPath)
}

// Merge returns the file configuration overlaid with the non-zero fields of
// flags. file may be nil.
func Merge(file *Config, flags Config) Config {
	var merged Config
	if file != nil {
		merged = *file
		merged.Files = append([]string(nil), file.Files...)
		merged.Options = maps.Clone(file.Options)
	}

	if flags.ThemePath != "" {
		merged.ThemePath = flags.ThemePath
	}
	if flags.Suffix != "" {
		merged.Suffix = flags.Suffix
	}
	if len(flags.Files) > 0 {
		merged.Files = flags.Files
	}
	if len(flags.Options) > 0 {
		if merged.Options == nil {
			merged.Options = make(map[string]any, len(flags.Options))
		}
		maps.Copy(merged.Options, flags.Options)
	}

	return merged
}
