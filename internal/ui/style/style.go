// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoColorEnvVar disables styling like NO_COLOR, for parallax only.
const NoColorEnvVar = "PARALLAX_NO_COLOR"

type palette struct {
	colors  ColorConfig
	success lipgloss.Style
	warning lipgloss.Style
	errorS  lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
}

// current is nil while styling is disabled.
var current atomic.Pointer[palette]

// Init enables or disables styling. NO_COLOR and PARALLAX_NO_COLOR, when
// set to any non-empty value, disable styling regardless of enable.
//
// cfg supplies color_theme and color_* overrides; nil means the default theme.
func Init(enable bool, cfg map[string]string) {
	if !enable || os.Getenv("NO_COLOR") != "" || os.Getenv(NoColorEnvVar) != "" {
		current.Store(nil)
		return
	}

	// ANSI256 covers both the basic 16 colors and the extended palette.
	lipgloss.SetColorProfile(termenv.ANSI256)

	colors := LoadColorConfig(cfg)
	current.Store(&palette{
		colors:  colors,
		success: makeStyle(colors.Success),
		warning: makeStyle(colors.Warning),
		errorS:  makeStyle(colors.Error),
		info:    makeStyle(colors.Info),
		muted:   makeStyle(colors.Muted),
		header:  makeStyle(colors.Header),
	})
}

// GetColors returns the active colors, or the zero value when disabled.
func GetColors() ColorConfig {
	if p := current.Load(); p != nil {
		return p.colors
	}
	return ColorConfig{}
}

// makeStyle accepts "bold" or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(text string, pick func(*palette) lipgloss.Style) string {
	p := current.Load()
	if p == nil {
		return text
	}
	return pick(p).Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return current.Load() != nil
}

// Success styles text for successful operations.
func Success(text string) string {
	return render(text, func(p *palette) lipgloss.Style { return p.success })
}

// Warning styles text for warning messages.
func Warning(text string) string {
	return render(text, func(p *palette) lipgloss.Style { return p.warning })
}

// Error styles text for error messages.
func Error(text string) string {
	return render(text, func(p *palette) lipgloss.Style { return p.errorS })
}

// Info styles text for informational messages.
func Info(text string) string {
	return render(text, func(p *palette) lipgloss.Style { return p.info })
}

// Header styles section headers and titles.
func Header(text string) string {
	return render(text, func(p *palette) lipgloss.Style { return p.header })
}

// Muted styles secondary information.
func Muted(text string) string {
	return render(text, func(p *palette) lipgloss.Style { return p.muted })
}
