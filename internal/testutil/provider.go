package testutil

import (
	"maps"
	"sync"

	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/domain"
)

// MemProvider is a domain.ConfigProvider over a map, with the catalog
// defaults behind it.
type MemProvider struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemProvider returns a provider holding a copy of values.
func NewMemProvider(values map[string]string) *MemProvider {
	p := &MemProvider{values: map[string]string{}}
	maps.Copy(p.values, values)
	return p
}

func (p *MemProvider) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key]; ok {
		return v, true
	}
	if fn, ok := config.Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

func (p *MemProvider) GetAll() (map[string]string, error) {
	all := map[string]string{}
	for key, fn := range config.Defaults {
		all[key] = fn()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	maps.Copy(all, p.values)
	return all, nil
}

func (p *MemProvider) Values() (map[string]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.values), nil
}

func (p *MemProvider) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	return nil
}

func (p *MemProvider) Unset(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
	return nil
}

var _ domain.ConfigProvider = (*MemProvider)(nil)
