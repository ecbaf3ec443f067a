package core

import (
	"math"

	"github.com/jbeda/geom"
)

// Rasterization works in cell space: x grows right, y grows down and the cell
// (col, row) covers [col, col+1) x [row, row+1).

// DrawLine draws a line segment between two cell-space points.
func (s *Screen) DrawLine(a, b geom.Coord, r rune, c Color) {
	d := b.Minus(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		s.SetColored(cellOf(a.X), cellOf(a.Y), r, c)
		return
	}

	for i := 0; i <= steps; i++ {
		p := a.Plus(d.Times(float64(i) / float64(steps)))
		s.SetColored(cellOf(p.X), cellOf(p.Y), r, c)
	}
}

// DrawPolygon draws the closed outline through verts.
func (s *Screen) DrawPolygon(verts []geom.Coord, r rune, c Color) {
	n := len(verts)
	for i := 0; i < n; i++ {
		s.DrawLine(verts[i], verts[(i+1)%n], r, c)
	}
}

// FillTriangle fills every cell whose center lies inside the triangle abc.
// Either winding is accepted.
func (s *Screen) FillTriangle(a, b, cc geom.Coord, r rune, c Color) {
	minX := Clamp(cellOf(math.Min(a.X, math.Min(b.X, cc.X))), 0, s.width-1)
	maxX := Clamp(cellOf(math.Max(a.X, math.Max(b.X, cc.X))), 0, s.width-1)
	minY := Clamp(cellOf(math.Min(a.Y, math.Min(b.Y, cc.Y))), 0, s.height-1)
	maxY := Clamp(cellOf(math.Max(a.Y, math.Max(b.Y, cc.Y))), 0, s.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := geom.Coord{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			e0 := edgeSide(a, b, p)
			e1 := edgeSide(b, cc, p)
			e2 := edgeSide(cc, a, p)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				s.SetColored(x, y, r, c)
			}
		}
	}
}

// FillPolygon fills a convex polygon as a triangle fan from its first vertex.
func (s *Screen) FillPolygon(verts []geom.Coord, r rune, c Color) {
	for i := 1; i+1 < len(verts); i++ {
		s.FillTriangle(verts[0], verts[i], verts[i+1], r, c)
	}
}

func edgeSide(a, b, p geom.Coord) float64 {
	ab := b.Minus(a)
	ap := p.Minus(a)
	return ab.X*ap.Y - ab.Y*ap.X
}

func cellOf(v float64) int {
	return int(math.Floor(v))
}
