package shared

import (
	"fmt"
	"maps"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
)

// CommandSpec describes a command to assemble.
type CommandSpec struct {
	Configuration map[string]string // Entries applied on top of the loaded document
	ConfigPath    string             // Document to flatten into the configuration (optional)
	Type          domain.CommandType // Command variant; empty uses the app config default
	Positionals   []string           // Positional parameter values, in order
	Options       []domain.Option    // Options, in order
}

// CommandBuilder assembles domain commands from a CommandSpec.
type CommandBuilder struct {
	factory      *domain.CommandFactory
	documents    domain.DocumentLoader
	configLoader domain.ConfigLoader
}

// NewCommandBuilder creates a new CommandBuilder.
// configLoader may be nil, in which case the default command type is used.
func NewCommandBuilder(
	factory *domain.CommandFactory,
	documents domain.DocumentLoader,
	configLoader domain.ConfigLoader,
) *CommandBuilder {
	return &CommandBuilder{
		factory:      factory,
		documents:    documents,
		configLoader: configLoader,
	}
}

// Build creates and populates a command.
// When neither a document nor configuration entries are given, the command
// is left without configuration.
func (b *CommandBuilder) Build(spec CommandSpec) (domain.Command, error) {
	cfg, err := b.configuration(spec)
	if err != nil {
		return nil, err
	}

	cmd, err := b.factory.Create(b.commandType(spec.Type))
	if err != nil {
		return nil, err
	}

	if cfg != nil {
		cmd.SetConfiguration(cfg)
	}
	for _, v := range spec.Positionals {
		cmd.AddPositionalParameter(domain.NewPositionalParameter(v))
	}
	for _, o := range spec.Options {
		cmd.AddOption(o)
	}
	return cmd, nil
}

func (b *CommandBuilder) configuration(spec CommandSpec) (map[string]string, error) {
	var cfg map[string]string
	if spec.ConfigPath != "" {
		doc, err := b.documents.LoadFile(spec.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		cfg = maps.Clone(doc)
	}

	if len(spec.Configuration) > 0 {
		if cfg == nil {
			cfg = make(map[string]string, len(spec.Configuration))
		}
		maps.Copy(cfg, spec.Configuration)
	}
	return cfg, nil
}

func (b *CommandBuilder) commandType(t domain.CommandType) domain.CommandType {
	if !t.IsZero() {
		return t
	}
	if b.configLoader != nil {
		if cfg, err := b.configLoader.Load(); err == nil {
			return cfg.CommandType()
		}
	}
	return domain.DefaultCommandType
}
