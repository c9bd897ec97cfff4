package category

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Default is one entry of the catalogue seeded into new businesses.
type Default struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`
}

type catalogue struct {
	Categories []Default `yaml:"categories"`
}

var (
	defaults     []Default
	defaultsOnce sync.Once
	defaultsErr  error
)

// Defaults returns the default category catalogue in file order.
// The embedded file is parsed once; every kind must be known.
func Defaults() ([]Default, error) {
	defaultsOnce.Do(func() {
		defaults, defaultsErr = parseDefaults(defaultsYAML)
	})
	if defaultsErr != nil {
		return nil, defaultsErr
	}
	out := make([]Default, len(defaults))
	copy(out, defaults)
	return out, nil
}

func parseDefaults(data []byte) ([]Default, error) {
	var c catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse default categories: %w", err)
	}
	for i, d := range c.Categories {
		if d.Name == "" {
			return nil, fmt.Errorf("default category %d has no name", i)
		}
		kind, err := ParseKind(string(d.Kind))
		if err != nil {
			return nil, fmt.Errorf("default category %q: %w", d.Name, err)
		}
		c.Categories[i].Kind = kind
	}
	return c.Categories, nil
}
