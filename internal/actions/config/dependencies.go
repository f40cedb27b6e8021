package config

import (
	"fmt"

	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/domain"
)

// Deps are the configuration operations and printers an action uses.
type Deps struct {
	Get     func(string) (string, bool)
	GetAll  func() (map[string]string, error)
	Values  func() (map[string]string, error)
	Set     func(key, value string) error
	Unset   func(key string) error
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

// DefaultDeps works on the default config file and prints to stdout.
func DefaultDeps() Deps {
	return ProviderDeps(config.NewProvider())
}

// ProviderDeps works on p and prints to stdout.
func ProviderDeps(p domain.ConfigProvider) Deps {
	return Deps{
		Get:     p.Get,
		GetAll:  p.GetAll,
		Values:  p.Values,
		Set:     p.Set,
		Unset:   p.Unset,
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}
