package domain

import "context"

// ProcessLauncher starts an external process and waits for it to exit.
type ProcessLauncher interface {
	// Run executes cmd and returns the child's exit code.
	// A process that could not be started yields a *LaunchError, never a
	// made-up exit code.
	Run(ctx context.Context, cmd *ExecCommand) (int, error)
}

// DocumentLoader converts structured documents into flat configuration maps.
type DocumentLoader interface {
	// LoadFile reads the document at path and flattens it.
	LoadFile(path string) (map[string]string, error)
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)

	// Sources returns the config file locations in merge order.
	Sources() []ConfigSource
}
