package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if cfg != DefaultFlippyConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultFlippyConfig())
	}
}

func TestLoadFlippyDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadFlippy("")
	if err != nil {
		t.Fatalf("LoadFlippy() error = %v", err)
	}
	if cfg != DefaultFlippyConfig() {
		t.Errorf("LoadFlippy() = %+v, expected defaults", cfg)
	}
}

func TestLoadFlippyPrecedence(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "flippy.yaml"), "generator:\n  start_moves: 7\n")
	cfg, _ := LoadFlippy("")
	if cfg.Generator.StartMoves != 7 {
		t.Errorf("local config: StartMoves = %d, expected 7", cfg.Generator.StartMoves)
	}

	writeFile(t, filepath.Join(home, ".flippy", "configs", "flippy.yaml"), "generator:\n  start_moves: 9\n")
	cfg, _ = LoadFlippy("")
	if cfg.Generator.StartMoves != 9 {
		t.Errorf("user config: StartMoves = %d, expected 9", cfg.Generator.StartMoves)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "generator:\n  start_moves: 11\n")
	cfg, err := LoadFlippy(custom)
	if err != nil {
		t.Fatalf("LoadFlippy(custom) error = %v", err)
	}
	if cfg.Generator.StartMoves != 11 {
		t.Errorf("custom config: StartMoves = %d, expected 11", cfg.Generator.StartMoves)
	}
}

func TestLoadFlippyPartialKeepsDefaults(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, custom, "animation:\n  flip_ms: 300\n")

	cfg, err := LoadFlippy(custom)
	if err != nil {
		t.Fatalf("LoadFlippy() error = %v", err)
	}
	if cfg.Animation.FlipMs != 300 {
		t.Errorf("FlipMs = %d, expected 300", cfg.Animation.FlipMs)
	}
	def := DefaultFlippyConfig()
	if cfg.Animation.DisappearMs != def.Animation.DisappearMs || cfg.Geometry != def.Geometry {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadFlippyErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadFlippy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should return an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "geometry: [not, a, map\n")
	cfg, err := LoadFlippy(bad)
	if err == nil {
		t.Error("malformed custom file should return an error")
	}
	if cfg != DefaultFlippyConfig() {
		t.Error("failed load should still return usable defaults")
	}
}

func TestSanitize(t *testing.T) {
	cfg := FlippyConfig{
		Geometry:  GeometryConfig{Scale: -1, Tolerance: -2},
		Generator: GeneratorConfig{StartMoves: -3, BiasResample: 2, MoveIncreaseChance: -0.5},
	}
	cfg.sanitize()

	if cfg != DefaultFlippyConfig() {
		t.Errorf("sanitize() = %+v, expected defaults", cfg)
	}

	zero := FlippyConfig{Generator: GeneratorConfig{StartMoves: 0, BiasResample: 0.5, MoveIncreaseChance: 0}}
	zero.sanitize()
	if zero.Generator.StartMoves != 0 || zero.Generator.MoveIncreaseChance != 0 {
		t.Error("zero moves and zero growth are valid settings")
	}
}

func TestApplyFlippyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		startMoves int
		chance     float64
	}{
		{DifficultyEasy, 2, 0.1},
		{DifficultyNormal, 3, 0.1},
		{DifficultyHard, 5, 0.2},
		{DifficultyFixed, 3, 0},
		{"", 3, 0.1},
	}

	for _, tc := range tests {
		cfg := DefaultFlippyConfig()
		ApplyFlippyPreset(&cfg, tc.preset)
		if cfg.Generator.StartMoves != tc.startMoves {
			t.Errorf("%q: StartMoves = %d, expected %d", tc.preset, cfg.Generator.StartMoves, tc.startMoves)
		}
		if cfg.Generator.MoveIncreaseChance != tc.chance {
			t.Errorf("%q: MoveIncreaseChance = %v, expected %v", tc.preset, cfg.Generator.MoveIncreaseChance, tc.chance)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should disable growth")
	}
}

func TestViewportWorld(t *testing.T) {
	v := DefaultFlippyConfig().Viewport
	r := v.World(80, 20)
	if r.Width() != 320 || r.Height() != 160 {
		t.Errorf("World(80, 20) = %vx%v, expected 320x160", r.Width(), r.Height())
	}
}
