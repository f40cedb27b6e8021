// Package theme lists and switches the console color themes.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/parallax/internal/ui/style"
	"github.com/footprint-tools/parallax/internal/usage"
)

const defaultTheme = "default"

// List prints every theme with a color preview, marking the current one.
func List(_ []string, deps Deps) error {
	current, _ := deps.Get("color_theme")
	if current == "" {
		current = defaultTheme
	}

	_, _ = deps.Println("Available themes (* = current)")
	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current || deps.Resolve(name) == current {
			marker = "* "
		}
		_, _ = deps.Printf("%s%-10s %s\n", marker, name, renderColorPreview(deps.Themes[deps.Resolve(name)]))
	}
	_, _ = deps.Println("Use 'theme set <name>' to change. Append -dark or -light to pin a variant.")
	return nil
}

// Set stores the theme in the config file and applies it right away.
func Set(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("theme")
	}

	name := args[0]
	if _, ok := deps.Themes[deps.Resolve(name)]; !ok {
		return usage.InvalidConfigValue("color_theme", name, "one of "+strings.Join(deps.ThemeNames, ", "))
	}

	if err := deps.Set("color_theme", name); err != nil {
		return usage.FailedConfigPath(err)
	}
	if deps.Apply != nil {
		deps.Apply(name)
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(name))
	return nil
}

// renderColorPreview returns colored text samples for a theme. Previews
// are rendered even when console styling is off.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted)
}
