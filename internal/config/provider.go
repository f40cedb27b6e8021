package config

import (
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/log"
	"github.com/footprint-tools/parallax/internal/paths"
)

// Provider reads and edits one config file and implements domain.ConfigProvider.
// The zero path means the default location (see paths.ConfigFilePath),
// resolved on every call.
type Provider struct {
	path string
}

// NewProvider returns a provider for the default config file.
func NewProvider() *Provider {
	return &Provider{}
}

// NewProviderAt returns a provider for the config file at path.
func NewProviderAt(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the config file this provider works on.
func (p *Provider) Path() (string, error) {
	if p.path != "" {
		return p.path, nil
	}
	return paths.ConfigFilePath()
}

// Values returns only what the file sets, without defaults.
func (p *Provider) Values() (map[string]string, error) {
	path, err := p.Path()
	if err != nil {
		return nil, err
	}
	return ReadFile(path)
}

// Get returns the file value for key, falling back to the default.
func (p *Provider) Get(key string) (string, bool) {
	values, err := p.Values()
	if err != nil {
		log.Debug("config: reading values for %s: %v", key, err)
	}
	if value, ok := values[key]; ok {
		return value, true
	}

	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// GetAll returns the defaults overridden by the file. A file that cannot be
// read yields the defaults alone.
func (p *Provider) GetAll() (map[string]string, error) {
	result := defaultValues()

	values, err := p.Values()
	if err != nil {
		log.Warn("config: using defaults: %v", err)
		return result, nil
	}

	for key, value := range values {
		result[key] = value
	}
	return result, nil
}

// Set writes key=value under the file lock.
func (p *Provider) Set(key, value string) error {
	return p.edit(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes key under the file lock.
func (p *Provider) Unset(key string) error {
	return p.edit(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func (p *Provider) edit(change func([]string) []string) error {
	path, err := p.Path()
	if err != nil {
		return err
	}
	if FormatOf(path) != FormatRC {
		return ErrReadOnlyFormat
	}

	return WithLock(path, func() error {
		lines, err := ReadLinesFrom(path)
		if err != nil {
			return err
		}
		return WriteLinesTo(path, change(lines))
	})
}

// Settings loads and validates the typed settings from this file, the
// defaults and the PARALLAX_* environment.
func (p *Provider) Settings() (Settings, error) {
	values, err := p.Values()
	if err != nil {
		return Settings{}, err
	}

	merged := defaultValues()
	for key, value := range values {
		merged[key] = value
	}
	return Load(merged)
}

var _ domain.ConfigProvider = (*Provider)(nil)
