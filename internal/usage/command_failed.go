package usage

import "fmt"

// CommandFailed wraps an error returned by a command's Execute.
func CommandFailed(command string, err error) *Error {
	return &Error{
		Kind:    ErrCommandFailed,
		Message: fmt.Sprintf("parallax: command '%s' failed: %v", command, err),
		Err:     err,
	}
}
