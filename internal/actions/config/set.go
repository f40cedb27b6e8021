package config

import (
	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/usage"
)

// Set validates and stores key=value in the config file.
func Set(args []string, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key, value := args[0], args[1]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	current, err := deps.GetAll()
	if err != nil {
		return err
	}
	current[key] = value
	if _, err := config.Load(current); err != nil {
		return err
	}

	values, err := deps.Values()
	if err != nil {
		return usage.FailedConfigPath(err)
	}
	_, existed := values[key]

	if err := deps.Set(key, value); err != nil {
		return usage.FailedConfigPath(err)
	}

	action := "added"
	if existed {
		action = "updated"
	}
	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}
