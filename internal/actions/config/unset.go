package config

import (
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/usage"
)

// Unset removes key from the config file so its default applies again.
func Unset(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	values, err := deps.Values()
	if err != nil {
		return usage.FailedConfigPath(err)
	}
	if _, ok := values[key]; !ok {
		_, _ = deps.Printf("%s is not set\n", key)
		return nil
	}

	if err := deps.Unset(key); err != nil {
		return usage.FailedConfigPath(err)
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
