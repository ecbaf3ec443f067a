package level

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/jbeda/geom"

	"github.com/vovakirdan/flippy/internal/polygon"
)

var testViewport = geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: 400, Y: 300}}

func generate(t *testing.T, seed int64, vertices, moves int) *Level {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	lvl, err := Generate(rng, Params{Vertices: vertices, Moves: moves, Viewport: testViewport}, RandomBias(rng, testViewport))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return lvl
}

func TestGenerateQuadThreeMoves(t *testing.T) {
	const runs = 100
	differ := 0

	for seed := int64(0); seed < runs; seed++ {
		lvl := generate(t, seed, 4, 3)

		if got := len(lvl.Start.Coords()); got != 8 {
			t.Fatalf("seed %d: len(Start.Coords()) = %d, expected 8", seed, got)
		}
		if got := len(lvl.Target.Coords()); got != 8 {
			t.Fatalf("seed %d: len(Target.Coords()) = %d, expected 8", seed, got)
		}
		if !lvl.Start.EqualsWithinTolerance(lvl.Target) {
			differ++
		}
	}

	if differ < runs*95/100 {
		t.Errorf("start differed from target in %d/%d runs, expected nearly all", differ, runs)
	}
}

func TestGenerateZeroMoves(t *testing.T) {
	lvl := generate(t, 3, 5, 0)
	if !lvl.Start.Equals(lvl.Target, 0) {
		t.Error("zero moves should leave start identical to target")
	}
	if lvl.Start == lvl.Target {
		t.Error("start and target must be distinct polygons")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, 77, 6, 5)
	b := generate(t, 77, 6, 5)

	if !a.Start.Equals(b.Start, 0) || !a.Target.Equals(b.Target, 0) {
		t.Error("same seed should generate identical levels")
	}
	if a.Bias != b.Bias {
		t.Errorf("Bias = %v and %v, expected identical", a.Bias, b.Bias)
	}
}

func TestGenerateTargetCentered(t *testing.T) {
	center := geom.Coord{X: 200, Y: 150}
	for n := 3; n <= 6; n++ {
		lvl := generate(t, int64(n), n, 2)
		if !lvl.Target.Contains(center) {
			t.Errorf("n=%d: target %v does not contain viewport center", n, lvl.Target.Vertices())
		}
		if !testViewport.ContainsRect(lvl.Target.Bounds()) {
			t.Errorf("n=%d: target bounds %v outside viewport", n, lvl.Target.Bounds())
		}
	}
}

func TestGenerateBiasStaysInViewport(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		lvl := generate(t, seed, 4, 10)
		b := lvl.Bias
		if b.X < testViewport.Min.X || b.X > testViewport.Max.X || b.Y < testViewport.Min.Y || b.Y > testViewport.Max.Y {
			t.Errorf("seed %d: bias %v outside viewport", seed, b)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"too few vertices", Params{Vertices: 2, Moves: 1, Viewport: testViewport}, polygon.ErrTooFewVertices},
		{"empty viewport", Params{Vertices: 4, Moves: 1}, ErrEmptyViewport},
	}

	for _, tc := range tests {
		_, err := Generate(rng, tc.params, geom.Coord{})
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: Generate() error = %v, expected %v", tc.name, err, tc.want)
		}
	}

	if _, err := Generate(rng, Params{Vertices: 4, Moves: -1, Viewport: testViewport}, geom.Coord{}); err == nil {
		t.Error("negative moves: expected an error")
	}
}
