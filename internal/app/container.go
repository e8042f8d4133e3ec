// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/JesseSandvik/Khepri-Black/internal/infra/config"
	"github.com/JesseSandvik/Khepri-Black/internal/infra/document"
	"github.com/JesseSandvik/Khepri-Black/internal/infra/launcher"
	"github.com/JesseSandvik/Khepri-Black/internal/infra/logging"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase/shared"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the CLI was started in; holds the project config
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Launcher     domain.ProcessLauncher
	Documents    domain.DocumentLoader
	ConfigLoader domain.ConfigLoader

	// Pointer fields
	Factory *domain.CommandFactory
	Logger  *slog.Logger
	logFile io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// Children launched by the container inherit the current process's streams.
func New(dir string) *Container {
	cfg := Config{WorkDir: dir}

	configLoader := config.NewLoader(cfg.WorkDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig() // use defaults; `config show` reports the error
	}

	logger := logging.New(appConfig.Log, os.Stderr)
	processLauncher := launcher.NewClient()

	return &Container{
		Launcher:     processLauncher,
		Documents:    document.NewFlattener(),
		ConfigLoader: configLoader,
		Factory:      domain.NewCommandFactory(processLauncher),
		Logger:       logger.Logger,
		logFile:      logger,
		Config:       cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	processLauncher domain.ProcessLauncher,
	documents domain.DocumentLoader,
	configLoader domain.ConfigLoader,
	logger *slog.Logger,
) *Container {
	return &Container{
		Launcher:     processLauncher,
		Documents:    documents,
		ConfigLoader: configLoader,
		Factory:      domain.NewCommandFactory(processLauncher),
		Logger:       logger,
		Config:       cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// commandBuilder returns the shared command builder.
func (c *Container) commandBuilder() *shared.CommandBuilder {
	return shared.NewCommandBuilder(c.Factory, c.Documents, c.ConfigLoader)
}

// UseCase factory methods

// RunCommandUseCase returns a new RunCommand use case.
func (c *Container) RunCommandUseCase() *usecase.RunCommand {
	return usecase.NewRunCommand(c.commandBuilder(), c.Logger)
}

// PreviewCommandUseCase returns a new PreviewCommand use case.
func (c *Container) PreviewCommandUseCase() *usecase.PreviewCommand {
	return usecase.NewPreviewCommand(c.commandBuilder())
}

// FlattenDocumentUseCase returns a new FlattenDocument use case.
func (c *Container) FlattenDocumentUseCase() *usecase.FlattenDocument {
	return usecase.NewFlattenDocument(c.Documents)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}
