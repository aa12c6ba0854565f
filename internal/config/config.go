// Package config loads the optional desksync configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// File holds the on-disk configuration. Every field is optional; unset
// fields fall back to built-in defaults, and CLI flags override both.
type File struct {
	// SteamPath overrides the auto-detected Steam installation directory.
	SteamPath string `yaml:"steam_path"`
	// ApplicationsDir overrides where launcher files are written.
	ApplicationsDir string `yaml:"applications_dir"`
	// SkipKeywords replaces the default name-keyword exclusion set.
	SkipKeywords []string `yaml:"skip_keywords"`
	// IgnoredAppIDs replaces the default app-ID exclusion set.
	IgnoredAppIDs []string `yaml:"ignored_app_ids"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "desksync", configFileName)
}

// Load reads the config file at path. A missing file is not an error;
// it yields an empty File so defaults apply.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &f, nil
}
