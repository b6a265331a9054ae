package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported as the source of a config that came from the
// binary itself rather than a file.
const SourceEmbedded = "embedded"

// Resolve loads the session configuration and reports which file it came
// from, or SourceEmbedded.
// Search order: customPath -> ~/.dasher/dasher.yaml -> ./configs/dasher.yaml -> embedded default
//
// When a file in the search path fails to load, its path is reported along
// with the error.
func Resolve(customPath string) (DasherConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory. A missing
	// file is skipped; a file that exists but does not load is an error.
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", "dasher.yaml")} {
		if path == "" {
			continue
		}
		cfg, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDasherYAML)
	if err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates a single config file.
func LoadFile(path string) (DasherConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DasherConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig, so a file only needs the keys
// it changes, and validates the result.
func Parse(data []byte) (DasherConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg DasherConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "dasher.yaml")
}
