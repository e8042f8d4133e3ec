package usecase

import (
	"context"
	"fmt"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase/shared"
)

// PreviewCommandInput contains the parameters for previewing a command.
type PreviewCommandInput struct {
	Spec shared.CommandSpec
}

// PreviewCommandOutput contains the argument vector that would be launched.
type PreviewCommandOutput struct {
	Tokens []string
}

// PreviewCommand is the use case for showing a command's arguments without running it.
type PreviewCommand struct {
	builder *shared.CommandBuilder
}

// NewPreviewCommand creates a new PreviewCommand use case.
func NewPreviewCommand(builder *shared.CommandBuilder) *PreviewCommand {
	return &PreviewCommand{builder: builder}
}

// Execute builds the command and returns its linearized arguments.
func (uc *PreviewCommand) Execute(_ context.Context, in PreviewCommandInput) (*PreviewCommandOutput, error) {
	cmd, err := uc.builder.Build(in.Spec)
	if err != nil {
		return nil, fmt.Errorf("build command: %w", err)
	}

	execCmd, err := domain.Linearize(cmd)
	if err != nil {
		return nil, err
	}

	return &PreviewCommandOutput{Tokens: execCmd.Tokens()}, nil
}
