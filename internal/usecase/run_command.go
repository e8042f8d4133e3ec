// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase/shared"
	"github.com/google/uuid"
)

// RunCommandInput contains the parameters for running a command.
type RunCommandInput struct {
	Spec shared.CommandSpec
}

// RunCommandOutput contains the result of running a command.
type RunCommandOutput struct {
	RunID    string // Identifier attached to every log record of this run
	ExitCode int    // Exit code of the child, or 1 when there was nothing to run
}

// RunCommand is the use case for assembling a command and executing it.
type RunCommand struct {
	builder *shared.CommandBuilder
	logger  *slog.Logger
}

// NewRunCommand creates a new RunCommand use case.
func NewRunCommand(builder *shared.CommandBuilder, logger *slog.Logger) *RunCommand {
	return &RunCommand{
		builder: builder,
		logger:  logger,
	}
}

// Execute builds the command described by in and runs it.
// A child that exits non-zero is reported through the output, not as an error.
func (uc *RunCommand) Execute(ctx context.Context, in RunCommandInput) (*RunCommandOutput, error) {
	runID := uuid.Must(uuid.NewV7()).String()
	log := uc.logger.With("run_id", runID)

	cmd, err := uc.builder.Build(in.Spec)
	if err != nil {
		return nil, fmt.Errorf("build command: %w", err)
	}

	if execCmd, err := domain.Linearize(cmd); err == nil {
		log.Info("command started", "program", execCmd.Program, "args", len(execCmd.Args))
	} else {
		log.Debug("command not runnable", "error", err)
	}

	code, err := cmd.Execute(ctx)
	if err != nil {
		log.Error("command failed", "error", err)
		return nil, fmt.Errorf("run command: %w", err)
	}

	if len(cmd.Configuration()) == 0 {
		log.Warn("no configuration given, nothing was run")
	}
	log.Info("command finished", "exit_code", code)

	return &RunCommandOutput{
		RunID:    runID,
		ExitCode: code,
	}, nil
}
