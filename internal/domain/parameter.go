package domain

// PositionalParameter is an argument identified only by its position in the command.
// An empty Value means the parameter is absent and contributes no token.
type PositionalParameter struct {
	Value string
}

// NewPositionalParameter creates a positional parameter with the given value.
func NewPositionalParameter(value string) PositionalParameter {
	return PositionalParameter{Value: value}
}

// IsSet reports whether the parameter carries a value.
func (p PositionalParameter) IsSet() bool {
	return p.Value != ""
}

// Option is a named argument unit.
// Only Value is rendered into the argument vector; Name is kept for callers
// that want to inspect or display it.
type Option struct {
	Name  string
	Value string
}

// NewOption creates an option with the given name and value.
func NewOption(name, value string) Option {
	return Option{Name: name, Value: value}
}

// IsSet reports whether the option carries a value.
func (o Option) IsSet() bool {
	return o.Value != ""
}
