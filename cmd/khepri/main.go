// Package main is the entry point for the khepri CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JesseSandvik/Khepri-Black/internal/app"
	"github.com/JesseSandvik/Khepri-Black/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(exitCode(run(), os.Stderr))
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container := app.New(cwd)
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// exitCode maps the result of run to a process exit status and reports
// errors on w. A child's exit status is passed through silently.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			_, _ = fmt.Fprintln(w, exitErr.Err)
		}
		return exitErr.Code
	}

	_, _ = fmt.Fprintln(w, err)
	return 1
}
