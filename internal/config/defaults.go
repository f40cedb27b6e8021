package config

import (
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/paths"
)

// Defaults holds the in-code value of every catalog key. Values are
// functions because some depend on the environment.
var Defaults = map[string]func() string{}

func init() {
	for _, key := range domain.ConfigKeys {
		value := key.Default
		Defaults[key.Name] = func() string { return value }
	}
	Defaults["log_file"] = paths.LogFilePath
}

// Get returns the value for key from the default config file, falling back
// to the default. The bool reports whether the key was found in either.
func Get(key string) (string, bool) {
	return NewProvider().Get(key)
}

// GetAll returns the defaults merged with the default config file.
func GetAll() (map[string]string, error) {
	return NewProvider().GetAll()
}

func defaultValues() map[string]string {
	values := make(map[string]string, len(Defaults))
	for key, fn := range Defaults {
		values[key] = fn()
	}
	return values
}
