package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/pacman.yaml
var defaultPacManYAML []byte

//go:embed defaults/mspacman.yaml
var defaultMsPacManYAML []byte

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant Variant) []byte {
	switch variant {
	case VariantPacMan:
		return defaultPacManYAML
	case VariantMsPacMan:
		return defaultMsPacManYAML
	default:
		return nil
	}
}

// Default returns the embedded default configuration of a variant.
func Default(variant Variant) (VariantConfig, error) {
	var cfg VariantConfig
	data := GetDefaultYAML(variant)
	if data == nil {
		return cfg, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, variant)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded config %s: %w", variant, err)
	}
	return cfg, nil
}
