package core

import (
	"testing"

	"github.com/jbeda/geom"
)

func countRune(s *Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestDrawLineHorizontal(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawLine(geom.Coord{X: 1.5, Y: 1.5}, geom.Coord{X: 6.5, Y: 1.5}, '*', ColorRed)

	for x := 1; x <= 6; x++ {
		if s.Get(x, 1) != '*' {
			t.Errorf("DrawLine: expected '*' at (%d, 1), got %q", x, s.Get(x, 1))
		}
	}
	if got := countRune(s, '*'); got != 6 {
		t.Errorf("DrawLine set %d cells, expected 6", got)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawLine(geom.Coord{X: 0.5, Y: 0.5}, geom.Coord{X: 4.5, Y: 4.5}, '\\', ColorDefault)

	for i := 0; i < 5; i++ {
		if s.Get(i, i) != '\\' {
			t.Errorf("DrawLine: expected diagonal at (%d, %d)", i, i)
		}
	}
}

func TestDrawLinePoint(t *testing.T) {
	s := NewScreen(3, 3)
	p := geom.Coord{X: 1.2, Y: 2.7}
	s.DrawLine(p, p, 'o', ColorDefault)
	if s.Get(1, 2) != 'o' {
		t.Error("zero-length line should set its cell")
	}
}

func TestFillTriangleWinding(t *testing.T) {
	a := geom.Coord{X: 0, Y: 0}
	b := geom.Coord{X: 8, Y: 0}
	c := geom.Coord{X: 0, Y: 8}

	cw := NewScreen(10, 10)
	cw.FillTriangle(a, b, c, '#', ColorGreen)
	ccw := NewScreen(10, 10)
	ccw.FillTriangle(a, c, b, '#', ColorGreen)

	if cw.String() != ccw.String() {
		t.Error("FillTriangle should not depend on winding")
	}
	// Cell centers (x+.5, y+.5) with x+y+1 <= 8
	if got := countRune(cw, '#'); got != 36 {
		t.Errorf("FillTriangle filled %d cells, expected 36", got)
	}
	if cw.Get(0, 0) != '#' || cw.Get(8, 8) == '#' {
		t.Error("FillTriangle filled the wrong corner")
	}
}

func TestFillTriangleClipped(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillTriangle(geom.Coord{X: -10, Y: -10}, geom.Coord{X: 20, Y: -10}, geom.Coord{X: -10, Y: 20}, '#', ColorDefault)

	if got := countRune(s, '#'); got != 16 {
		t.Errorf("covering triangle filled %d cells, expected 16", got)
	}
}

func TestFillPolygonSquare(t *testing.T) {
	s := NewScreen(8, 8)
	square := []geom.Coord{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}}
	s.FillPolygon(square, '#', ColorBlue)

	if got := countRune(s, '#'); got != 16 {
		t.Errorf("FillPolygon filled %d cells, expected 16", got)
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if s.GetCell(x, y).Color != ColorBlue {
				t.Errorf("cell (%d, %d) not filled", x, y)
			}
		}
	}
}

func TestDrawPolygonClosed(t *testing.T) {
	s := NewScreen(8, 8)
	square := []geom.Coord{{X: 1.5, Y: 1.5}, {X: 5.5, Y: 1.5}, {X: 5.5, Y: 5.5}, {X: 1.5, Y: 5.5}}
	s.DrawPolygon(square, '+', ColorDefault)

	// Perimeter of a 5x5 block
	if got := countRune(s, '+'); got != 16 {
		t.Errorf("DrawPolygon set %d cells, expected 16", got)
	}
	if s.Get(3, 3) == '+' {
		t.Error("outline should not fill the interior")
	}
}
