package usage

import "fmt"

// UnknownCommand is returned by one-shot dispatch when no command matched.
func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("parallax: '%s' is not a registered command. See 'help'.", command),
	}
}
