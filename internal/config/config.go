// Package config loads the optional studyblocks config file. Flags and
// environment variables always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LLMConfig selects the extraction backend in the config file.
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

// ExportConfig holds calendar export preferences.
type ExportConfig struct {
	CalendarName string `yaml:"calendar_name,omitempty"`
}

// Config models ~/.config/studyblocks/config.yaml.
type Config struct {
	DB     string       `yaml:"db,omitempty"`
	LLM    LLMConfig    `yaml:"llm,omitempty"`
	Export ExportConfig `yaml:"export,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/studyblocks/config.yaml, falling
// back to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studyblocks", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error;
// it yields the zero Config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the default location.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}
