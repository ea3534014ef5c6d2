package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
)

const (
	DefaultListName   = "TODO.json"
	ProjectConfigFile = ".todo.toml"
)

// Environment variables that override file settings.
const (
	EnvListName  = "TODO_LIST_NAME"
	EnvLogLevel  = "TODO_LOG_LEVEL"
	EnvLogFormat = "TODO_LOG_FORMAT"
	EnvColor     = "TODO_COLOR"
)

// Config holds the settings for one invocation.
type Config struct {
	ListName  string `toml:"list_name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Color     bool   `toml:"color"`
}

// Default returns the built-in configuration. Color follows terminal
// detection.
func Default() *Config {
	return &Config{
		ListName:  DefaultListName,
		LogLevel:  "info",
		LogFormat: "text",
		Color:     !color.NoColor,
	}
}

// Load builds a Config in priority order:
// 1. Defaults
// 2. User config file (<user config dir>/todo/config.toml)
// 3. Project config file (.todo.toml in dir)
// 4. Environment variables
// Command-line flags are applied by the caller on top of the result.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if path := UserConfigFile(); path != "" {
		if err := loadFileIfExists(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	projectFile := filepath.Join(dir, ProjectConfigFile)
	if err := loadFileIfExists(cfg, projectFile); err != nil {
		return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UserConfigFile returns the per-user config path, or "" if the user
// config directory cannot be determined.
func UserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.toml")
}

func loadFileIfExists(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvListName); v != "" {
		cfg.ListName = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvColor, v, err)
		}
		cfg.Color = enabled
	}
	return nil
}
