package config

import (
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// ParseStyleFlags turns repeated key=value flags into a style override map.
// Values stay strings; the style resolver coerces them to the option type.
func ParseStyleFlags(pairs []string) (map[string]any, error) {
	overrides := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid style override %q, expected key=value", pair)
		}
		overrides[key] = strings.TrimSpace(value)
	}
	return overrides, nil
}

// LayerStyles merges override maps left to right, later layers winning.
func LayerStyles(layers ...map[string]any) (map[string]any, error) {
	merged := make(map[string]any)
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge style overrides: %w", err)
		}
	}
	return merged, nil
}
