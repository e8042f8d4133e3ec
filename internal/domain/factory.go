package domain

import (
	"maps"
	"slices"
)

// CommandBuilder constructs an empty Command of one variant.
type CommandBuilder func(launcher ProcessLauncher) Command

// CommandFactory builds commands by type.
// New variants are added with Register; callers keep calling Create.
type CommandFactory struct {
	launcher ProcessLauncher
	builders map[CommandType]CommandBuilder
}

// NewCommandFactory creates a factory with the built-in variants registered.
func NewCommandFactory(launcher ProcessLauncher) *CommandFactory {
	f := &CommandFactory{
		launcher: launcher,
		builders: make(map[CommandType]CommandBuilder),
	}
	f.Register(CommandTypeExecutor, func(l ProcessLauncher) Command {
		return NewExecutorCommand(l)
	})
	return f
}

// Register adds or replaces the builder for t.
func (f *CommandFactory) Register(t CommandType, builder CommandBuilder) {
	f.builders[t] = builder
}

// Create returns a new, empty command of type t.
func (f *CommandFactory) Create(t CommandType) (Command, error) {
	builder, ok := f.builders[t]
	if !ok {
		return nil, &UnsupportedCommandTypeError{Value: t}
	}
	return builder(f.launcher), nil
}

// Types returns the registered command types in sorted order.
func (f *CommandFactory) Types() []CommandType {
	types := slices.Collect(maps.Keys(f.builders))
	slices.Sort(types)
	return types
}
