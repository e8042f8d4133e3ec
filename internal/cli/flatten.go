package cli

import (
	"fmt"

	"github.com/JesseSandvik/Khepri-Black/internal/app"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase"
	"github.com/spf13/cobra"
)

// newFlattenCommand creates the flatten command.
func newFlattenCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <file>",
		Short: "Show the configuration entries a document produces",
		Long: `Flatten a JSON, YAML or TOML document into the key=value entries
that run uses as configuration. Nested objects become dotted keys and array
elements are numbered from 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.FlattenDocumentUseCase().Execute(cmd.Context(), usecase.FlattenDocumentInput{
				Path: args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, e := range out.Entries {
				_, _ = fmt.Fprintf(w, "%s=%s\n", e.Key, e.Value)
			}
			return nil
		},
	}
}
