package domain

import "strings"

// CommandType selects which Command variant the factory builds.
type CommandType string

// Known command types.
const (
	CommandTypeExecutor CommandType = "executor"
)

// DefaultCommandType is used when neither the caller nor the app config names a type.
const DefaultCommandType = CommandTypeExecutor

// ParseCommandType normalizes s into a CommandType.
// It does not check that a builder exists; the factory does that.
func ParseCommandType(s string) CommandType {
	return CommandType(strings.ToLower(strings.TrimSpace(s)))
}

// String returns the string representation of the CommandType.
func (t CommandType) String() string { return string(t) }

// IsZero reports whether no type was given.
func (t CommandType) IsZero() bool { return t == "" }
