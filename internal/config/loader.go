package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads a configuration file on top of the defaults.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses configuration data on top of the defaults.
//
// The format is determined by the file extension in path, or defaults to YAML
// if the path is empty or has an unknown extension. The document is checked
// against the config schema before it is decoded; fields it leaves out keep
// their default values.
func ParseConfig(data []byte, path string) (*Config, error) {
	config := Default()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		var doc interface{}
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("failed to parse JSON config: %w", err)
			}
		}
		if err := checkSchema(doc); err != nil {
			return nil, err
		}
		if doc != nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse JSON config: %w", err)
			}
		}
	default:
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
		if err := checkSchema(doc); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	return config, nil
}
