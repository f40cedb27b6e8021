package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrMissingArgument
	ErrUnknownCommand
	ErrCommandFailed
	ErrInvalidConfigKey
	ErrInvalidConfigValue
	ErrFailedConfigPath
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Command failed
//	  - Failed config path
//
//	Exit 2: User input errors
//	  - Missing argument
//	  - Invalid config key
//	  - Invalid config value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrMissingArgument:    2,
	ErrUnknownCommand:     1,
	ErrCommandFailed:      1,
	ErrInvalidConfigKey:   2,
	ErrInvalidConfigValue: 2,
	ErrFailedConfigPath:   1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
