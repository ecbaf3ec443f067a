package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flippy/internal/tween"
)

const configFile = "flippy.yaml"

// LoadFlippy loads the game configuration.
// Search order: customPath -> ~/.flippy/configs/flippy.yaml -> ./configs/flippy.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadFlippy(customPath string) (FlippyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFlippyConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultFlippyConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFlippyYAML)
	if err != nil {
		return DefaultFlippyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data on top of the hardcoded defaults and sanitizes the result.
func parse(data []byte) (FlippyConfig, error) {
	cfg := DefaultFlippyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize replaces out-of-range values with their defaults.
func (c *FlippyConfig) sanitize() {
	def := DefaultFlippyConfig()

	if c.Geometry.Scale <= 0 {
		c.Geometry.Scale = def.Geometry.Scale
	}
	if c.Geometry.Tolerance < 0 {
		c.Geometry.Tolerance = def.Geometry.Tolerance
	}
	if c.Animation.FlipMs <= 0 {
		c.Animation.FlipMs = def.Animation.FlipMs
	}
	if c.Animation.DisappearMs <= 0 {
		c.Animation.DisappearMs = def.Animation.DisappearMs
	}
	if _, ok := tween.EasingByName(c.Animation.Easing); !ok || c.Animation.Easing == "" {
		c.Animation.Easing = def.Animation.Easing
	}
	if c.Generator.StartMoves < 0 {
		c.Generator.StartMoves = def.Generator.StartMoves
	}
	if c.Generator.BiasResample <= 0 || c.Generator.BiasResample > 1 {
		c.Generator.BiasResample = def.Generator.BiasResample
	}
	if c.Generator.MoveIncreaseChance < 0 || c.Generator.MoveIncreaseChance > 1 {
		c.Generator.MoveIncreaseChance = def.Generator.MoveIncreaseChance
	}
	if c.Viewport.CellWidth <= 0 {
		c.Viewport.CellWidth = def.Viewport.CellWidth
	}
	if c.Viewport.CellHeight <= 0 {
		c.Viewport.CellHeight = def.Viewport.CellHeight
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flippy", "configs", filename)
}

// ApplyFlippyPreset modifies the config based on a difficulty preset.
func ApplyFlippyPreset(cfg *FlippyConfig, preset DifficultyPreset) {
	if moves := StartMovesForPreset(preset); moves > 0 {
		cfg.Generator.StartMoves = moves
	}

	if IsFixedPreset(preset) {
		cfg.Generator.MoveIncreaseChance = 0
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Geometry.Tolerance = 3
	case DifficultyHard:
		cfg.Generator.MoveIncreaseChance = 0.2
	}
}
