package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

const defaultConfigYAML = `# studytracker configuration

storage:
  # "file" (JSON file), "sqlite" or "memory" (nothing is kept)
  backend: file
  # Optional location override; defaults to .studytracker/storage.json
  # (or storage.db for sqlite) inside the workspace
  # path: /path/to/storage.json

log:
  # debug, info, warn or error
  level: warn
  # text or json
  format: text
  # Optional log file; the dashboard only logs when this is set
  # file: .studytracker/studytracker.log
`

// WriteDefault writes a commented default configuration to path.
// An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}
