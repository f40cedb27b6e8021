package usage

import "fmt"

// InvalidConfigKey is returned for keys outside the configuration catalog.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("parallax: '%s' is not a valid config key. See 'parallax config list'.", key),
	}
}

// InvalidConfigValue is returned when a config value cannot be used.
func InvalidConfigValue(key, value, expected string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigValue,
		Message: fmt.Sprintf("parallax: invalid value '%s' for %s (expected %s)", value, key, expected),
	}
}

// FailedConfigPath is returned when the config file location cannot be resolved or read.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("parallax: cannot use config file: %v", err),
		Err:     err,
	}
}
