package cli

import (
	"fmt"

	"github.com/JesseSandvik/Khepri-Black/internal/app"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Inspect khepri configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var ignoreGlobal, ignoreProject bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.
Use --ignore-global or --ignore-project to exclude specific sources for debugging.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{
				IgnoreGlobal:  ignoreGlobal,
				IgnoreProject: ignoreProject,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, src := range out.Sources {
				switch {
				case src.Path == "":
					_, _ = fmt.Fprintf(w, "- %s: (unavailable)\n", src.Kind)
				case src.Exists:
					_, _ = fmt.Fprintf(w, "- %s: %s\n", src.Kind, src.Path)
				default:
					_, _ = fmt.Fprintf(w, "- %s: %s (not found)\n", src.Kind, src.Path)
				}
			}

			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			data, err := toml.Marshal(out.EffectiveConfig)
			if err != nil {
				return fmt.Errorf("format config: %w", err)
			}
			_, _ = w.Write(data)

			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreGlobal, "ignore-global", false, "Ignore global configuration")
	cmd.Flags().BoolVar(&ignoreProject, "ignore-project", false, "Ignore project configuration (.khepri.toml)")

	return cmd
}
