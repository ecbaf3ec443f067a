// Package flippy implements the polygon flipping puzzle: flip the filled shape
// across its own edges until it covers the outlined target.
package flippy

import (
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/level"
	"github.com/vovakirdan/flippy/internal/tween"
)

// EventLevelDone is attached to the disappear animation that ends a level.
const EventLevelDone tween.Kind = "flippy.level_done"

// Minimum playable screen size.
const (
	minScreenW = 30
	minScreenH = 12
)

// Game implements one shape's endless run of levels.
type Game struct {
	shape   Shape
	rng     *rand.Rand
	tick    uint64
	runtime core.RuntimeConfig
	cfg     config.FlippyConfig
	ownCfg  bool // cfg was given to the constructor, skip loading

	anim  *tween.Manager
	round *level.Round
	lvl   *level.Level

	play     core.Rect // Play area in screen cells
	viewport geom.Rect // Play area in world units
	canvas   *core.Screen
	cursorX  int // Cursor cell inside the play area
	cursorY  int

	ending   bool // Disappear animation running
	giveUp   bool // Forfeit requested, applied once the shape is at rest
	paused   bool
	tooSmall bool
	err      error
}

// Package-level settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startMoves       int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartMoves overrides the first level's move count. 0 keeps the config value.
func SetStartMoves(moves int) {
	startMoves = moves
}

// New creates a game for the given shape. Configuration is loaded on Reset.
func New(shape Shape) *Game {
	return &Game{shape: shape}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(shape Shape, cfg config.FlippyConfig) *Game {
	return &Game{shape: shape, cfg: cfg, ownCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.shape.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.shape.Title
}

// Reset starts a new run at level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.ownCfg {
		loaded, err := config.LoadFlippy(configPath)
		if err != nil {
			g.err = err
		}
		if difficultyPreset != "" {
			config.ApplyFlippyPreset(&loaded, difficultyPreset)
		}
		g.cfg = loaded
	}

	moves := g.cfg.Generator.StartMoves
	if startMoves > 0 {
		moves = startMoves
	}

	easing, ok := tween.EasingByName(g.cfg.Animation.Easing)
	if !ok {
		easing = tween.EaseInOutQuad
	}

	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.anim = tween.NewManager(easing)
	g.round = level.NewRound(g.shape.Vertices, moves)
	g.paused = false
	g.layout(cfg.ScreenW, cfg.ScreenH)
	g.cursorX = g.play.W / 2
	g.cursorY = g.play.H / 2

	if !g.tooSmall {
		g.newLevel()
	}
}

// Resize adapts the play area to a new screen size, keeping the current level.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout(width, height)
	g.cursorX = core.Clamp(g.cursorX, 0, core.Max(g.play.W-1, 0))
	g.cursorY = core.Clamp(g.cursorY, 0, core.Max(g.play.H-1, 0))

	if !g.tooSmall && g.lvl == nil && g.round != nil {
		g.newLevel()
	}
}

// layout computes the play area: row 0 is the HUD, the last row holds key
// hints and the box border takes one cell on each side.
func (g *Game) layout(width, height int) {
	g.tooSmall = width < minScreenW || height < minScreenH
	g.play = core.NewRect(0, 1, width, height-2).Inset(1)
	g.viewport = g.cfg.Viewport.World(g.play.W, g.play.H)
	if g.canvas == nil {
		g.canvas = core.NewScreen(g.play.W, g.play.H)
	} else {
		g.canvas.Resize(g.play.W, g.play.H)
	}
}

// newLevel generates the current round's level.
func (g *Game) newLevel() {
	g.anim.Clear()
	g.ending = false
	g.giveUp = false

	lvl, err := level.Generate(g.rng, level.Params{
		Vertices: g.shape.Vertices,
		Moves:    g.round.Moves,
		Viewport: g.viewport,
		Scale:    g.cfg.Geometry.Scale,
		Resample: g.cfg.Generator.BiasResample,
	}, level.RandomBias(g.rng, g.viewport))
	if err != nil {
		g.err = err
		return
	}
	g.lvl = lvl
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.lvl == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var result core.StepResult

	if !g.ending {
		result.Flipped = g.handleInput(in)
	}

	for _, ev := range g.anim.Update(g.runtime.TickDuration()) {
		if g.lvl.Start.Settle(ev) {
			continue
		}
		// One notification per vertex arrives; the first one ends the level
		if ev.Kind == EventLevelDone && ev.Owner == g.lvl.Start && g.ending {
			g.round.Next(g.rng, g.cfg.Generator.MoveIncreaseChance)
			g.newLevel()
			result.LevelCleared = true
		}
	}

	if !g.ending && !g.lvl.Start.IsLocked() {
		switch {
		case g.giveUp:
			g.round.Forfeit()
			g.endLevel()
		case g.lvl.Start.Equals(g.lvl.Target, g.cfg.Geometry.Tolerance):
			g.endLevel()
		}
	}

	result.State = g.State()
	return result
}

// handleInput moves the cursor and requests flips. Returns true if a flip
// was accepted.
func (g *Game) handleInput(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionLeft):
		g.cursorX--
	case in.Has(core.ActionRight):
		g.cursorX++
	}
	switch {
	case in.Has(core.ActionUp):
		g.cursorY--
	case in.Has(core.ActionDown):
		g.cursorY++
	}
	g.cursorX = core.Clamp(g.cursorX, 0, g.play.W-1)
	g.cursorY = core.Clamp(g.cursorY, 0, g.play.H-1)

	if in.Has(core.ActionNewLevel) {
		g.giveUp = true
		return false
	}
	if g.giveUp {
		return false
	}

	var target geom.Coord
	switch {
	case in.Click != nil && g.play.Contains(in.Click.X, in.Click.Y):
		g.cursorX = in.Click.X - g.play.X
		g.cursorY = in.Click.Y - g.play.Y
		target = g.worldAt(g.cursorX, g.cursorY)
	case in.Has(core.ActionFlip):
		target = g.worldAt(g.cursorX, g.cursorY)
	default:
		return false
	}

	if !g.lvl.Start.RequestFlip(target, g.anim, g.cfg.Animation.FlipDuration()) {
		return false
	}
	g.round.RecordMove()
	return true
}

// endLevel shrinks the shape away; the next level starts when it is gone.
func (g *Game) endLevel() {
	g.ending = true
	note := tween.Event{Kind: EventLevelDone, Owner: g.lvl.Start}
	g.lvl.Start.RequestDisappear(note, g.anim, g.cfg.Animation.DisappearDuration())
}

// worldAt returns the world position of the center of a play-area cell.
// World Y points up, so row 0 is the top of the viewport.
func (g *Game) worldAt(col, row int) geom.Coord {
	return geom.Coord{
		X: (float64(col) + 0.5) * g.cfg.Viewport.CellWidth,
		Y: (float64(g.play.H-row) - 0.5) * g.cfg.Viewport.CellHeight,
	}
}

// cellAt maps a world position to play-area cell space.
func (g *Game) cellAt(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: p.X / g.cfg.Viewport.CellWidth,
		Y: float64(g.play.H) - p.Y/g.cfg.Viewport.CellHeight,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Paused: g.paused || g.tooSmall,
	}
	if g.round != nil {
		state.Score = g.round.Banked()
		state.Level = g.round.Level
	}
	return state
}

// Err returns the last configuration or generation error, if any.
func (g *Game) Err() error {
	return g.err
}
