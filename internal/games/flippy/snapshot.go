package flippy

import "github.com/jbeda/geom"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateFlipping    GameStateType = "flipping"
	StateLevelEnding GameStateType = "level_ending"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Shape     string
	Level     int
	Moves     int
	MovesMade int
	Score     float64 // Running score including the current level
	Start     []geom.Coord
	Target    []geom.Coord
	CursorX   int
	CursorY   int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.ending:
		state = StateLevelEnding
	case g.lvl != nil && g.lvl.Start.IsLocked():
		state = StateFlipping
	}

	s := Snapshot{
		Tick:    g.tick,
		Shape:   g.shape.ID,
		CursorX: g.cursorX,
		CursorY: g.cursorY,
		State:   state,
	}
	if g.round != nil {
		s.Level = g.round.Level
		s.Moves = g.round.Moves
		s.MovesMade = g.round.MovesMade
		s.Score = g.round.Score()
	}
	if g.lvl != nil {
		s.Start = g.lvl.Start.Vertices()
		s.Target = g.lvl.Target.Vertices()
	}
	return s
}
