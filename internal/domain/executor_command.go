package domain

import (
	"context"
	"errors"
	"maps"
)

// ExecutableFilePathKey is the configuration key holding the program to run.
const ExecutableFilePathKey = "executableFilePath"

// ExitCodeConfigurationMissing is returned by Execute when there is nothing to run.
const ExitCodeConfigurationMissing = 1

// Command is the contract shared by every command variant.
// A Command is populated by its single owner and executed once.
type Command interface {
	// SetConfiguration replaces the configuration map.
	SetConfiguration(cfg map[string]string)

	// Configuration returns the configuration map, or nil if none was set.
	Configuration() map[string]string

	// AddPositionalParameter appends a positional parameter.
	AddPositionalParameter(p PositionalParameter)

	// AddOption appends an option.
	AddOption(o Option)

	// PositionalParameters returns the positional parameters in insertion order.
	PositionalParameters() []PositionalParameter

	// Options returns the options in insertion order.
	Options() []Option

	// Execute runs the command and returns its exit code.
	Execute(ctx context.Context) (int, error)
}

// ExecutorCommand runs the program named by its configuration with its
// positional parameters and options as arguments.
type ExecutorCommand struct {
	launcher    ProcessLauncher
	config      map[string]string
	positionals []PositionalParameter
	options     []Option
}

// Ensure ExecutorCommand implements Command.
var _ Command = (*ExecutorCommand)(nil)

// NewExecutorCommand creates an empty ExecutorCommand that launches through launcher.
func NewExecutorCommand(launcher ProcessLauncher) *ExecutorCommand {
	return &ExecutorCommand{
		launcher:    launcher,
		positionals: []PositionalParameter{},
		options:     []Option{},
	}
}

// SetConfiguration replaces the configuration map with a copy of cfg.
func (c *ExecutorCommand) SetConfiguration(cfg map[string]string) {
	if cfg == nil {
		c.config = nil
		return
	}
	c.config = maps.Clone(cfg)
}

// Configuration returns the configuration map.
func (c *ExecutorCommand) Configuration() map[string]string {
	return c.config
}

// AddPositionalParameter appends p.
func (c *ExecutorCommand) AddPositionalParameter(p PositionalParameter) {
	c.positionals = append(c.positionals, p)
}

// AddOption appends o.
func (c *ExecutorCommand) AddOption(o Option) {
	c.options = append(c.options, o)
}

// PositionalParameters returns the positional parameters in insertion order.
func (c *ExecutorCommand) PositionalParameters() []PositionalParameter {
	return c.positionals
}

// Options returns the options in insertion order.
func (c *ExecutorCommand) Options() []Option {
	return c.options
}

// Execute linearizes the command and launches it.
// A missing or empty configuration is not an error: it returns
// ExitCodeConfigurationMissing without launching anything.
func (c *ExecutorCommand) Execute(ctx context.Context) (int, error) {
	execCmd, err := Linearize(c)
	if errors.Is(err, ErrConfigurationMissing) {
		return ExitCodeConfigurationMissing, nil
	}
	if err != nil {
		return ExitCodeConfigurationMissing, err
	}
	return c.launcher.Run(ctx, execCmd)
}
