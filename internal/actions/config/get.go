package config

import (
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/usage"
)

// Get prints the effective value of one key.
func Get(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)
	_, _ = deps.Println(value)
	return nil
}
