// Package launcher provides process execution functionality.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
)

// Client implements domain.ProcessLauncher interface.
type Client struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewClient creates a launcher whose children inherit the current process's
// standard streams.
func NewClient() *Client {
	return &Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewClientWithStreams creates a launcher that connects children to the given streams.
// A nil stream leaves the child's corresponding descriptor attached to the null device.
func NewClientWithStreams(stdin io.Reader, stdout, stderr io.Writer) *Client {
	return &Client{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Ensure Client implements domain.ProcessLauncher interface.
var _ domain.ProcessLauncher = (*Client)(nil)

// Run starts cmd, waits for it to exit and returns its exit code.
// A child that ran and exited non-zero is not an error. A child killed by a
// signal reports 128 + the signal number unless ctx ended first.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand) (int, error) {
	if cmd == nil || cmd.Program == "" {
		return -1, domain.ErrEmptyCommand
	}

	// #nosec G204 - running the configured program is the purpose of this client
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	execCmd.Stdin = c.stdin
	execCmd.Stdout = c.stdout
	execCmd.Stderr = c.stderr

	err := execCmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ws, ok := exitErr.Sys().(syscall.WaitStatus)
		if !ok || !ws.Signaled() {
			return exitErr.ExitCode(), nil
		}
		// A kill after ctx ended is ours, not the child's.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return -1, fmt.Errorf("run %s: %w", cmd.Program, ctxErr)
		}
		return signalExitCode(ws.Signal()), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, fmt.Errorf("run %s: %w", cmd.Program, ctxErr)
	}

	return -1, &domain.LaunchError{Program: cmd.Program, Err: err}
}

// signalExitCode reports a signal death the way POSIX shells do: 128 + signal number.
func signalExitCode(sig syscall.Signal) int {
	return 128 + int(sig)
}
