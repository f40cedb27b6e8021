package dispatchers

import (
	"errors"
	"fmt"
)

var (
	ErrNilInputSource   = errors.New("dispatchers: input source is required")
	ErrNilOutputSink    = errors.New("dispatchers: output sink is required")
	ErrNilParser        = errors.New("dispatchers: command parser is required")
	ErrNilExecutor      = errors.New("dispatchers: command executor is required")
	ErrNilCommand       = errors.New("dispatchers: command is nil")
	ErrEmptyCommandName = errors.New("dispatchers: command name is empty")
	ErrAlreadyRunning   = errors.New("dispatchers: engine already running")
)

// DispatchError is what the reader hands the executor when a submitted line
// fails. Err is the command's error, unchanged.
type DispatchError struct {
	Line string
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatchers: %q: %v", e.Line, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
