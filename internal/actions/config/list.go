package config

import (
	"github.com/footprint-tools/parallax/internal/domain"
)

// List prints every visible key with its effective value, in catalog order.
// Optional keys are only listed when they have a value.
func List(_ []string, deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return err
	}

	for _, key := range domain.VisibleConfigKeys() {
		value := values[key.Name]
		if key.HideIfEmpty && value == "" {
			continue
		}
		_, _ = deps.Printf("%s=%s\n", key.Name, value)
	}
	return nil
}
