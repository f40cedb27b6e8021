package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `parallax config list`
	Hidden      bool   // Hidden keys are not shown in config list
	HideIfEmpty bool   // Only show in config list if explicitly set
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in `parallax config list`.
var ConfigKeys = []ConfigKey{
	// Dispatch
	{
		Name:        "executor",
		Default:     "single",
		Description: "Execution strategy: inline, goroutine, single, pool",
		Section:     "Dispatch",
	},
	{
		Name:        "workers",
		Default:     "4",
		Description: "Worker count for the pool executor",
		Section:     "Dispatch",
	},
	{
		Name:        "queue_size",
		Default:     "64",
		Description: "Pending task capacity for single and pool executors",
		Section:     "Dispatch",
	},
	{
		Name:        "parser",
		Default:     "simple",
		Description: "Command line parser: simple, shell",
		Section:     "Dispatch",
	},
	{
		Name:        "dispatch_lock",
		Default:     "hold",
		Description: "Registry lock during execution: hold, snapshot",
		Section:     "Dispatch",
	},
	{
		Name:        "suggestions",
		Default:     "3",
		Description: "Similar command names offered on a miss (0 disables)",
		Section:     "Dispatch",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "log_file",
		Default:     "", // Set dynamically to paths.LogFilePath()
		Description: "Path to the log file",
		Section:     "Logging",
		HideIfEmpty: true,
	},
	// Display
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored output: auto, always, never",
		Section:     "Display",
	},
	{
		Name:        "color_theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean (optionally -dark or -light)",
		Section:     "Display",
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255 or bold)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255 or bold)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "color_success",
		Description: "Override success color from current theme (ANSI 0-255 or bold)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from current theme (ANSI 0-255 or bold)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted color from current theme (ANSI 0-255 or bold)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Override header color from current theme (ANSI 0-255 or bold)",
		Section:     "Display",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}
