package theme

import (
	"fmt"

	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/ui/style"
)

type Deps struct {
	Get        func(string) (string, bool)
	Set        func(key, value string) error
	Apply      func(name string)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	ThemeNames []string
	Themes     map[string]style.ColorConfig
	Resolve    func(string) string
}

// ProviderDeps stores the theme in p and restyles the running console with
// it, keeping any color_* overrides p holds.
func ProviderDeps(p domain.ConfigProvider) Deps {
	return Deps{
		Get: p.Get,
		Set: p.Set,
		Apply: func(name string) {
			colors := map[string]string{}
			if values, err := p.GetAll(); err == nil {
				if s, err := config.Load(values); err == nil {
					colors = s.Colors
				}
			}
			colors["color_theme"] = name
			style.Init(style.Enabled(), colors)
		},
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		ThemeNames: style.BaseThemeNames,
		Themes:     style.Themes,
		Resolve:    style.ResolveThemeName,
	}
}
