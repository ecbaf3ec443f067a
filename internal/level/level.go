// Package level builds start/target polygon pairs and tracks round
// progression (moves, level number and the accumulated score).
package level

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/vovakirdan/flippy/internal/polygon"
)

// BiasResample is the per-axis probability of re-randomizing the bias point
// before each generated move. Keeping the bias mostly fixed makes consecutive
// moves push the shape the same way instead of undoing each other.
const BiasResample = 0.25

// ErrEmptyViewport is returned when the viewport has no area to place a level in.
var ErrEmptyViewport = errors.New("level: viewport is empty")

// Params configures a generated level.
type Params struct {
	Vertices int
	Moves    int
	Viewport geom.Rect
	Scale    float64 // Polygon scale in world units; 0 uses polygon.DefaultScale

	// Resample overrides BiasResample when in (0, 1].
	Resample float64
}

// Level is a generated puzzle: the player flips Start until it matches Target.
type Level struct {
	Start  *polygon.Polygon
	Target *polygon.Polygon
	Bias   geom.Coord // Bias point after the last generated move
	Moves  int
}

// Generate builds a target centered on the viewport, clones it and flips the
// clone params.Moves times toward a slowly drifting bias point.
func Generate(rng *rand.Rand, params Params, bias geom.Coord) (*Level, error) {
	vp := params.Viewport
	if vp.Width() <= 0 || vp.Height() <= 0 {
		return nil, ErrEmptyViewport
	}
	if params.Moves < 0 {
		return nil, fmt.Errorf("level: negative move count %d", params.Moves)
	}

	resample := params.Resample
	if resample <= 0 || resample > 1 {
		resample = BiasResample
	}

	center := geom.Coord{
		X: vp.Min.X + vp.Width()/2,
		Y: vp.Min.Y + vp.Height()/2,
	}

	target, err := polygon.New(rng, params.Vertices, center, params.Scale)
	if err != nil {
		return nil, fmt.Errorf("level: cannot build target: %w", err)
	}
	start := polygon.Clone(target)

	for i := 0; i < params.Moves; i++ {
		if rng.Float64() < resample {
			bias.X = vp.Min.X + rng.Float64()*vp.Width()
		}
		if rng.Float64() < resample {
			bias.Y = vp.Min.Y + rng.Float64()*vp.Height()
		}
		start.FlipInstant(bias)
	}

	return &Level{
		Start:  start,
		Target: target,
		Bias:   bias,
		Moves:  params.Moves,
	}, nil
}

// RandomBias returns a uniformly random point inside the viewport.
func RandomBias(rng *rand.Rand, viewport geom.Rect) geom.Coord {
	return geom.Coord{
		X: viewport.Min.X + rng.Float64()*viewport.Width(),
		Y: viewport.Min.Y + rng.Float64()*viewport.Height(),
	}
}
