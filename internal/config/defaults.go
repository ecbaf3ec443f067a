package config

import (
	_ "embed"
)

//go:embed defaults/flippy.yaml
var defaultFlippyYAML []byte

// DefaultFlippyConfig returns the hardcoded default configuration.
func DefaultFlippyConfig() FlippyConfig {
	return FlippyConfig{
		Geometry: GeometryConfig{
			Scale:     50,
			Tolerance: 2,
		},
		Animation: AnimationConfig{
			FlipMs:      150,
			DisappearMs: 250,
			Easing:      "in-out-quad",
		},
		Generator: GeneratorConfig{
			StartMoves:         3,
			BiasResample:       0.25,
			MoveIncreaseChance: 0.1,
		},
		Viewport: ViewportConfig{
			CellWidth:  4,
			CellHeight: 8, // Terminal cells are about twice as tall as wide
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlippyYAML
}
