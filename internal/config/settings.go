package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/log"
	"github.com/footprint-tools/parallax/internal/usage"
)

// EnvPrefix prefixes environment overrides: PARALLAX_LOG_LEVEL=debug wins
// over log_level in the config file.
const EnvPrefix = "PARALLAX_"

// Executor names accepted by the executor key.
const (
	ExecutorInline    = "inline"
	ExecutorGoroutine = "goroutine"
	ExecutorSingle    = "single"
	ExecutorPool      = "pool"
)

// Parser names accepted by the parser key.
const (
	ParserSimple = "simple"
	ParserShell  = "shell"
)

// Color modes accepted by the color key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings is the validated, typed view of the configuration.
type Settings struct {
	Executor     string
	Workers      int
	QueueSize    int
	Parser       string
	DispatchLock dispatchers.LockPolicy
	Suggestions  int
	EnableLog    bool
	LogLevel     log.Level
	LogFile      string
	Color        string
	ColorTheme   string

	// Colors carries the raw color_* keys for the style package.
	Colors map[string]string
}

// Load validates values into Settings. Keys missing from values take their
// default, and PARALLAX_<KEY> environment variables override both.
func Load(values map[string]string) (Settings, error) {
	return LoadWithOverrides(values, nil)
}

// LoadWithOverrides is Load with a last layer, typically command-line flags,
// that wins over the environment.
func LoadWithOverrides(values, overrides map[string]string) (Settings, error) {
	get := func(key string) string {
		if v, ok := overrides[key]; ok {
			return strings.TrimSpace(v)
		}
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			return strings.TrimSpace(v)
		}
		if v, ok := values[key]; ok {
			return strings.TrimSpace(v)
		}
		if fn, ok := Defaults[key]; ok {
			return fn()
		}
		return ""
	}

	var (
		s   Settings
		err error
	)

	if s.Executor, err = oneOf("executor", get("executor"),
		ExecutorInline, ExecutorGoroutine, ExecutorSingle, ExecutorPool); err != nil {
		return Settings{}, err
	}
	if s.Workers, err = intAtLeast("workers", get("workers"), 1); err != nil {
		return Settings{}, err
	}
	if s.QueueSize, err = intAtLeast("queue_size", get("queue_size"), 0); err != nil {
		return Settings{}, err
	}
	if s.Parser, err = oneOf("parser", get("parser"), ParserSimple, ParserShell); err != nil {
		return Settings{}, err
	}

	lock := get("dispatch_lock")
	if s.DispatchLock, err = dispatchers.ParseLockPolicy(lock); err != nil {
		return Settings{}, usage.InvalidConfigValue("dispatch_lock", lock, "hold or snapshot")
	}

	if s.Suggestions, err = intAtLeast("suggestions", get("suggestions"), 0); err != nil {
		return Settings{}, err
	}

	enable := get("enable_log")
	if s.EnableLog, err = strconv.ParseBool(enable); err != nil {
		return Settings{}, usage.InvalidConfigValue("enable_log", enable, "true or false")
	}

	level, err := oneOf("log_level", strings.ToLower(get("log_level")), "debug", "info", "warn", "error")
	if err != nil {
		return Settings{}, err
	}
	s.LogLevel = log.ParseLevel(level)
	s.LogFile = get("log_file")

	if s.Color, err = oneOf("color", strings.ToLower(get("color")), ColorAuto, ColorAlways, ColorNever); err != nil {
		return Settings{}, err
	}
	s.ColorTheme = get("color_theme")

	s.Colors = map[string]string{"color_theme": s.ColorTheme}
	for _, key := range domain.ConfigKeys {
		if strings.HasPrefix(key.Name, "color_") && key.Name != "color_theme" {
			if v := get(key.Name); v != "" {
				s.Colors[key.Name] = v
			}
		}
	}

	return s, nil
}

func oneOf(key, value string, allowed ...string) (string, error) {
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", usage.InvalidConfigValue(key, value, strings.Join(allowed, ", "))
}

func intAtLeast(key, value string, min int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < min {
		return 0, usage.InvalidConfigValue(key, value, "an integer >= "+strconv.Itoa(min))
	}
	return n, nil
}
