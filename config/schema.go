package config

// Config represents the full studytracker configuration
type Config struct {
	// Where sessions are kept
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Diagnostics logging
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"`
	Path    string `yaml:"path,omitempty" mapstructure:"path"`
}

// LogConfig configures the slog logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file,omitempty" mapstructure:"file"`
}
