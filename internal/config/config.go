// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"time"

	"github.com/jbeda/geom"
)

// FlippyConfig contains all configuration for the polygon game.
type FlippyConfig struct {
	Geometry  GeometryConfig  `yaml:"geometry"`
	Animation AnimationConfig `yaml:"animation"`
	Generator GeneratorConfig `yaml:"generator"`
	Viewport  ViewportConfig  `yaml:"viewport"`
}

// GeometryConfig defines polygon size and match tolerance.
type GeometryConfig struct {
	Scale     float64 `yaml:"scale"`     // Maximum vertex distance from the center, world units
	Tolerance float64 `yaml:"tolerance"` // Per-coordinate slack when matching the target
}

// AnimationConfig defines flip and level-end animation timing.
type AnimationConfig struct {
	FlipMs      int    `yaml:"flip_ms"`
	DisappearMs int    `yaml:"disappear_ms"`
	Easing      string `yaml:"easing"` // linear, out-quad or in-out-quad
}

// GeneratorConfig defines level generation and progression.
type GeneratorConfig struct {
	StartMoves         int     `yaml:"start_moves"`
	BiasResample       float64 `yaml:"bias_resample"`
	MoveIncreaseChance float64 `yaml:"move_increase_chance"`
}

// ViewportConfig maps terminal cells to world units.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// FlipDuration returns the flip animation length.
func (a AnimationConfig) FlipDuration() time.Duration {
	return time.Duration(a.FlipMs) * time.Millisecond
}

// DisappearDuration returns the level-end animation length.
func (a AnimationConfig) DisappearDuration() time.Duration {
	return time.Duration(a.DisappearMs) * time.Millisecond
}

// World returns the world-space rectangle covered by a cols x rows cell area.
func (v ViewportConfig) World(cols, rows int) geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: 0, Y: 0},
		Max: geom.Coord{X: float64(cols) * v.CellWidth, Y: float64(rows) * v.CellHeight},
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Move count never grows
)

// ParsePreset converts a CLI value to a preset. Unknown values return "",
// which keeps the loaded config as is.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// StartMovesForPreset returns the first level's move count for a preset,
// or 0 if the preset does not override it.
func StartMovesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 2
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables move growth.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
