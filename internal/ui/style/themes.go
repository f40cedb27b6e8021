package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
}

// Themes contains the built-in color themes.
// Dark variants use bright colors, light variants dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
	},

	// Mono keeps errors readable without hue: bold where it matters.
	"mono-dark": {
		Success: "252",
		Warning: "bold",
		Error:   "bold",
		Info:    "250",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-light": {
		Success: "236",
		Warning: "bold",
		Error:   "bold",
		Info:    "238",
		Muted:   "245",
		Header:  "bold",
	},

	"ocean-dark": {
		Success: "79",
		Warning: "222",
		Error:   "210",
		Info:    "81",
		Muted:   "244",
		Header:  "bold",
	},
	"ocean-light": {
		Success: "29",
		Warning: "136",
		Error:   "160",
		Info:    "25",
		Muted:   "244",
		Header:  "bold",
	},
}

// colorConfigKeys maps config key names to ColorConfig fields.
var colorConfigKeys = map[string]func(*ColorConfig, string){
	"color_success": func(c *ColorConfig, v string) { c.Success = v },
	"color_warning": func(c *ColorConfig, v string) { c.Warning = v },
	"color_error":   func(c *ColorConfig, v string) { c.Error = v },
	"color_info":    func(c *ColorConfig, v string) { c.Info = v },
	"color_muted":   func(c *ColorConfig, v string) { c.Muted = v },
	"color_header":  func(c *ColorConfig, v string) { c.Header = v },
}

// IsDarkBackground reports whether the terminal background is dark.
// termenv assumes dark when it cannot tell.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from cfg.
// Resolution priority:
//  1. Environment variable (PARALLAX_COLOR_*)
//  2. Config value
//  3. Theme value (from color_theme)
//  4. Default theme for the detected background
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if env := os.Getenv("PARALLAX_COLOR_THEME"); env != "" {
		themeName = env
	} else if v := cfg["color_theme"]; v != "" {
		themeName = v
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, set := range colorConfigKeys {
		if env := os.Getenv("PARALLAX_" + strings.ToUpper(key)); env != "" {
			set(&result, env)
			continue
		}
		if v := cfg[key]; v != "" {
			set(&result, v)
		}
	}

	return result
}
