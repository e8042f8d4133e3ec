package domain

// Linearize turns a command into the argument vector handed to the launcher.
//
// The program comes from the executableFilePath configuration key. Positional
// parameter values follow in insertion order, then option values in insertion
// order. Parameters and options without a value contribute nothing.
func Linearize(cmd Command) (*ExecCommand, error) {
	cfg := cmd.Configuration()
	if len(cfg) == 0 {
		return nil, ErrConfigurationMissing
	}

	program := cfg[ExecutableFilePathKey]
	if program == "" {
		return nil, ErrMissingExecutablePath
	}

	positionals := cmd.PositionalParameters()
	options := cmd.Options()
	args := make([]string, 0, len(positionals)+len(options))

	for _, p := range positionals {
		if p.IsSet() {
			args = append(args, p.Value)
		}
	}
	for _, o := range options {
		if o.IsSet() {
			args = append(args, o.Value)
		}
	}

	return &ExecCommand{Program: program, Args: args}, nil
}
