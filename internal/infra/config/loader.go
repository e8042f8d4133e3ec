// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .khepri.toml (usually the working directory)
	globalConfDir string // Path to global config directory (e.g., ~/.config/khepri)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- project (later takes precedence)
	for _, src := range l.Sources() {
		if src.Kind == domain.ConfigSourceGlobal && opts.IgnoreGlobal {
			continue
		}
		if src.Kind == domain.ConfigSourceProject && opts.IgnoreProject {
			continue
		}
		if src.Path == "" {
			continue
		}

		cfg, err := loadFile(src.Path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		base = mergeConfigs(base, cfg)
	}

	return base, nil
}

// Sources returns the config file locations in merge order.
func (l *Loader) Sources() []domain.ConfigSource {
	var globalPath string
	if l.globalConfDir != "" {
		globalPath = filepath.Join(l.globalConfDir, domain.ConfigFileName)
	}
	projectPath := filepath.Join(l.projectDir, domain.ProjectConfigFileName)

	return []domain.ConfigSource{
		{Kind: domain.ConfigSourceGlobal, Path: globalPath, Exists: fileExists(globalPath)},
		{Kind: domain.ConfigSourceProject, Path: projectPath, Exists: fileExists(projectPath)},
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config paths are fixed locations
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Zero values mean "not set" so that mergeConfigs keeps lower-precedence values.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "command":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "type":
						if s, ok := v.(string); ok {
							res.Command.Type = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [command]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					case "file":
						if s, ok := v.(string); ok {
							res.Log.File = s
						}
					case "max_size_mb":
						if n, ok := v.(int64); ok {
							res.Log.MaxSizeMB = int(n)
						}
					case "max_backups":
						if n, ok := v.(int64); ok {
							res.Log.MaxBackups = int(n)
						}
					case "max_age_days":
						if n, ok := v.(int64); ok {
							res.Log.MaxAgeDays = int(n)
						}
					case "compress":
						if b, ok := v.(bool); ok {
							res.Log.Compress = b
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Command:  base.Command,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Command.Type != "" {
		result.Command.Type = override.Command.Type
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Log.MaxSizeMB != 0 {
		result.Log.MaxSizeMB = override.Log.MaxSizeMB
	}
	if override.Log.MaxBackups != 0 {
		result.Log.MaxBackups = override.Log.MaxBackups
	}
	if override.Log.MaxAgeDays != 0 {
		result.Log.MaxAgeDays = override.Log.MaxAgeDays
	}
	if override.Log.Compress {
		result.Log.Compress = override.Log.Compress
	}

	return result
}
