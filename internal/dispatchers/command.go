package dispatchers

import "strings"

const (
	DefaultUsage       = "No usage provided"
	DefaultSyntax      = "No syntax provided"
	DefaultDescription = "No description provided"
)

// Command is a named unit of behavior invocable by text name.
//
// Name must be stable and non-empty; the registry compares names
// case-insensitively. Execute returns an error to signal failure; the engine
// does not catch it, it reaches the executor's task boundary unchanged.
type Command interface {
	Name() string
	Execute(ctx *InvocationContext) error
}

// Usager is implemented by commands that document a one-line usage.
type Usager interface {
	Usage() string
}

// Syntaxer is implemented by commands that document their syntax.
type Syntaxer interface {
	Syntax() string
}

// Describer is implemented by commands that carry a longer description.
type Describer interface {
	Description() string
}

// UsageOf returns the command usage or DefaultUsage.
func UsageOf(cmd Command) string {
	if u, ok := cmd.(Usager); ok {
		if s := u.Usage(); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return DefaultUsage
}

// SyntaxOf returns the command syntax or DefaultSyntax.
func SyntaxOf(cmd Command) string {
	if u, ok := cmd.(Syntaxer); ok {
		if s := u.Syntax(); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return DefaultSyntax
}

// DescriptionOf returns the command description or DefaultDescription.
func DescriptionOf(cmd Command) string {
	if u, ok := cmd.(Describer); ok {
		if s := u.Description(); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return DefaultDescription
}
