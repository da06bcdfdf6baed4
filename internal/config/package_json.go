package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// readPackageJSONFile reads and parses package.json from the given root path.
// Returns the parsed JSON as a map, or nil if the file doesn't exist.
func readPackageJSONFile(rootPath string) (map[string]any, error) {
	packageJSONPath := filepath.Join(rootPath, "package.json")

	data, err := os.ReadFile(packageJSONPath) //nolint:gosec // G304: reading the project's own package.json
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	// Parse as JSONC (allows comments)
	data = jsonc.ToJSON(data)

	var pkgJSON map[string]any
	if err := json.Unmarshal(data, &pkgJSON); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	return pkgJSON, nil
}

// extractConfigMap extracts the cssTheme configuration map.
// Returns nil if the field doesn't exist (not an error).
func extractConfigMap(pkgJSON map[string]any) (map[string]any, error) {
	raw, ok := pkgJSON[PackageJSONKey]
	if !ok {
		return nil, nil
	}

	configMap, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object", PackageJSONKey)
	}

	return configMap, nil
}

// parseFilesField parses the files field, accepting a single string or an
// array of strings. Non-string entries are ignored.
func parseFilesField(configMap map[string]any) []string {
	switch v := configMap["files"].(type) {
	case string:
		return []string{v}
	case []any:
		var files []string
		for _, item := range v {
			if str, ok := item.(string); ok {
				files = append(files, str)
			}
		}
		return files
	}
	return nil
}

// buildConfig constructs a Config from the parsed configuration map
func buildConfig(configMap map[string]any) (*Config, error) {
	cfg := &Config{
		Files: parseFilesField(configMap),
	}

	if themePath, ok := configMap["themePath"].(string); ok {
		cfg.ThemePath = themePath
	}
	if suffix, ok := configMap["suffix"].(string); ok {
		cfg.Suffix = suffix
	}

	if raw, ok := configMap["options"]; ok {
		options, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s.options must be an object", PackageJSONKey)
		}
		cfg.Options = options
	}

	return cfg, nil
}

// ReadPackageJSON reads cssTheme configuration from package.json.
// Returns nil if there is no package.json or it has no cssTheme key.
func ReadPackageJSON(rootPath string) (*Config, error) {
	pkgJSON, err := readPackageJSONFile(rootPath)
	if err != nil || pkgJSON == nil {
		return nil, err
	}

	configMap, err := extractConfigMap(pkgJSON)
	if err != nil || configMap == nil {
		return nil, err
	}

	return buildConfig(configMap)
}
