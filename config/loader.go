package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	dirName  = ".studytracker"
	fileName = "config.yaml"
)

var (
	backends   = []string{"file", "sqlite", "memory"}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Load merges configuration from, in increasing priority: defaults, the global
// file, the workspace file, an explicit file and STUDYTRACKER_* environment variables
func Load(workspaceDir, explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)

	// Missing global/workspace files are fine
	for _, path := range []string{GlobalConfigPath(), WorkspaceConfigPath(workspaceDir)} {
		if path == "" {
			continue
		}
		if err := mergeFile(v, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if explicitPath != "" {
		if err := mergeFile(v, explicitPath); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("STUDYTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(cfg.Storage.Backend)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component understands
func (c *Config) Validate() error {
	if !slices.Contains(backends, c.Storage.Backend) {
		return fmt.Errorf("invalid storage.backend %q (use %s)", c.Storage.Backend, strings.Join(backends, ", "))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("invalid log.level %q (use %s)", c.Log.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("invalid log.format %q (use %s)", c.Log.Format, strings.Join(logFormats, ", "))
	}
	return nil
}

func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// GlobalConfigPath returns the path to the global config file, or "" without a home dir
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dirName, fileName)
}

// WorkspaceConfigPath returns the path to the workspace config file
func WorkspaceConfigPath(workspaceDir string) string {
	if workspaceDir == "" {
		return ""
	}
	return filepath.Join(workspaceDir, dirName, fileName)
}
