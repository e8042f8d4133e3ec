package cli

import (
	"fmt"
	"strings"

	"github.com/JesseSandvik/Khepri-Black/internal/app"
	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase/shared"
	"github.com/spf13/cobra"
)

// commandFlags holds the flags shared by run and args.
type commandFlags struct {
	configPath  string
	commandType string
	sets        []string
	options     []string
}

func (f *commandFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Configuration document (.json, .yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&f.commandType, "type", "t", "", "Command type (default from config, then \"executor\")")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Set a configuration entry as key=value (repeatable)")
	cmd.Flags().StringArrayVarP(&f.options, "option", "o", nil, "Add an option as name=value or a bare value; only the value is passed, values starting with - are passed whole (repeatable)")
}

// spec converts the flags and positional arguments into a CommandSpec.
func (f *commandFlags) spec(args []string) (shared.CommandSpec, error) {
	cfg, err := parseSets(f.sets)
	if err != nil {
		return shared.CommandSpec{}, err
	}

	options := make([]domain.Option, 0, len(f.options))
	for _, raw := range f.options {
		options = append(options, parseOption(raw))
	}

	return shared.CommandSpec{
		Configuration: cfg,
		ConfigPath:    f.configPath,
		Type:          domain.ParseCommandType(f.commandType),
		Positionals:   args,
		Options:       options,
	}, nil
}

// parseSets parses key=value configuration entries.
func parseSets(sets []string) (map[string]string, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	cfg := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		cfg[key] = value
	}
	return cfg, nil
}

// parseOption parses "name=value" or a bare value.
// A leading "=" marks a bare value that itself contains "=". Values starting
// with "-" are kept whole so "--foo=bar" reaches the child unchanged.
func parseOption(raw string) domain.Option {
	if strings.HasPrefix(raw, "-") {
		return domain.NewOption("", raw)
	}
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return domain.NewOption("", raw)
	}
	return domain.NewOption(name, value)
}

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var flags commandFlags

	cmd := &cobra.Command{
		Use:   "run [flags] [--] [positional...]",
		Short: "Run the configured executable",
		Long: `Run the executable named by executableFilePath with the given
positional parameters followed by option values.

khepri exits with the executable's exit code. When no configuration is
given it exits with status 1 without running anything.`,
		Example: `  khepri run -c echo.json "Hello, world!"
  khepri run --set executableFilePath=echo Hello -o greeting=World!`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := flags.spec(args)
			if err != nil {
				return err
			}

			out, err := c.RunCommandUseCase().Execute(cmd.Context(), usecase.RunCommandInput{Spec: spec})
			if err != nil {
				return err
			}
			if out.ExitCode != 0 {
				return &ExitError{Code: out.ExitCode}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// newArgsCommand creates the args command.
func newArgsCommand(c *app.Container) *cobra.Command {
	var flags commandFlags

	cmd := &cobra.Command{
		Use:   "args [flags] [--] [positional...]",
		Short: "Print the argument vector run would launch",
		Long: `Assemble the command exactly as run does and print one token per
line, program first, without launching anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := flags.spec(args)
			if err != nil {
				return err
			}

			out, err := c.PreviewCommandUseCase().Execute(cmd.Context(), usecase.PreviewCommandInput{Spec: spec})
			if err != nil {
				return err
			}

			printTokens(cmd.OutOrStdout(), out.Tokens)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
