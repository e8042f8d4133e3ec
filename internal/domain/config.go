package domain

import "path/filepath"

// Config file names.
const (
	ConfigFileName        = "config.toml"
	ProjectConfigFileName = ".khepri.toml"
)

// Config represents the application configuration.
type Config struct {
	Warnings []string      `toml:"-"`
	Command  CommandConfig `toml:"command"`
	Log      LogConfig     `toml:"log"`
}

// CommandConfig holds settings from the [command] section.
type CommandConfig struct {
	Type string `toml:"type,omitempty"` // Command type used when none is given on the command line
}

// LogConfig holds settings from the [log] section.
// Fields are ordered to minimize memory padding.
type LogConfig struct {
	Level      string `toml:"level,omitempty"`        // debug, info, warn, error
	File       string `toml:"file,omitempty"`         // Log file path; empty disables file logging
	MaxSizeMB  int    `toml:"max_size_mb,omitempty"`  // Rotate after this many megabytes
	MaxBackups int    `toml:"max_backups,omitempty"`  // Rotated files to keep
	MaxAgeDays int    `toml:"max_age_days,omitempty"` // Days to keep rotated files
	Compress   bool   `toml:"compress,omitempty"`     // Gzip rotated files
}

// NewDefaultConfig returns the configuration used when no file sets a value.
func NewDefaultConfig() *Config {
	return &Config{
		Command: CommandConfig{
			Type: string(DefaultCommandType),
		},
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// CommandType returns the configured default command type.
func (c *Config) CommandType() CommandType {
	if t := ParseCommandType(c.Command.Type); !t.IsZero() {
		return t
	}
	return DefaultCommandType
}

// LoadConfigOptions selects which config sources are merged.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigSourceKind names where a config file lives.
type ConfigSourceKind string

// Config source kinds, in merge order.
const (
	ConfigSourceGlobal  ConfigSourceKind = "global"
	ConfigSourceProject ConfigSourceKind = "project"
)

// ConfigSource describes one config file location.
type ConfigSource struct {
	Kind   ConfigSourceKind
	Path   string
	Exists bool
}

// GlobalConfigDir returns the khepri directory under the given config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "khepri")
}
