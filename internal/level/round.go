package level

import (
	"math"
	"math/rand"
)

// MoveIncreaseChance is the probability that a completed level adds one move
// to the next level.
const MoveIncreaseChance = 0.1

// Round tracks progression across levels of one game.
type Round struct {
	Vertices  int
	Moves     int // Moves used to generate the current level
	MovesMade int
	Level     int
	score     float64 // Sum of finished level scores
}

// NewRound starts at level 1 with the given shape and move count.
func NewRound(vertices, moves int) *Round {
	return &Round{Vertices: vertices, Moves: moves, Level: 1}
}

// LevelScore is the current level's contribution: 1 when solved in at most
// Moves flips, shrinking as more flips are made. A level generated with no
// moves is already solved and scores 1 unless forfeited.
func (r *Round) LevelScore() float64 {
	if r.Moves <= 0 {
		// Moves/max(Moves, MovesMade) is 0/0 here; a free solve counts as 1
		if r.Forfeited() {
			return 0
		}
		return 1
	}
	made := r.MovesMade
	if made < r.Moves {
		made = r.Moves
	}
	return float64(r.Moves) / float64(made)
}

// Score returns finished levels plus the current level's score.
func (r *Round) Score() float64 {
	return r.score + r.LevelScore()
}

// Banked returns the score of finished levels only.
func (r *Round) Banked() float64 {
	return r.score
}

// RecordMove counts one accepted flip.
func (r *Round) RecordMove() {
	if r.MovesMade < math.MaxInt {
		r.MovesMade++
	}
}

// Forfeit gives up the current level so it contributes (almost) nothing.
func (r *Round) Forfeit() {
	r.MovesMade = math.MaxInt
}

// Forfeited reports whether the current level was given up.
func (r *Round) Forfeited() bool {
	return r.MovesMade == math.MaxInt
}

// Next banks the current level, advances the level number and, with
// probability chance, adds a move. A chance outside [0, 1] uses
// MoveIncreaseChance.
func (r *Round) Next(rng *rand.Rand, chance float64) {
	if chance < 0 || chance > 1 {
		chance = MoveIncreaseChance
	}

	r.score += r.LevelScore()
	r.Level++
	r.MovesMade = 0
	if rng.Float64() < chance {
		r.Moves++
	}
}
