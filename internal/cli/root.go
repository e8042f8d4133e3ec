// Package cli provides the command-line interface for khepri.
package cli

import (
	"fmt"

	"github.com/JesseSandvik/Khepri-Black/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupCommand = "command"
	groupSetup   = "setup"
)

// NewRootCommand creates the root command for khepri.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "khepri",
		Short: "Assemble and run external commands from configuration documents",
		Long: `khepri builds an argument vector from a configuration document
(JSON, YAML or TOML), positional parameters and options, then runs the
configured executable and exits with its exit code.

The document must provide an executableFilePath key. Positional parameters
are passed first, followed by option values, each in the order given.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// `config show` returns the error itself
				c.Logger.Warn("app config could not be loaded, using defaults", "error", err)
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupCommand, Title: "Command Execution:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupCommand

	argsCmd := newArgsCommand(c)
	argsCmd.GroupID = groupCommand

	flattenCmd := newFlattenCommand(c)
	flattenCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(runCmd, argsCmd, flattenCmd, configCmd)

	return root
}
