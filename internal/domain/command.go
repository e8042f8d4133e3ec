package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Args    []string
}

// Tokens returns the full argument vector, program first.
func (c *ExecCommand) Tokens() []string {
	tokens := make([]string, 0, len(c.Args)+1)
	tokens = append(tokens, c.Program)
	return append(tokens, c.Args...)
}
