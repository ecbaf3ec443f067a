package flippy

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/vovakirdan/flippy/internal/core"
)

// Visual characters for rendering
const (
	ShapeChar  = '█'
	TargetChar = '·'
	CursorChar = '+'
)

const hintText = "click/space: flip  arrows: aim  n: new level  p: pause  q: quit"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-2), core.ColorGray)

	if g.lvl != nil {
		g.canvas.Clear()
		g.canvas.FillPolygon(g.toCells(g.lvl.Start.Vertices()), ShapeChar, core.ColorCyan)
		g.canvas.DrawPolygon(g.toCells(g.lvl.Target.Vertices()), TargetChar, core.ColorOrange)
		if !g.ending {
			g.canvas.SetColored(g.cursorX, g.cursorY, CursorChar, core.ColorYellow)
		}
		dst.Blit(g.canvas, g.play.X, g.play.Y)
	}

	dst.DrawTextCentered(dst.Height()-1, hintText, core.ColorGray)

	switch {
	case g.err != nil:
		dst.DrawTextCentered(dst.Height()/2, g.err.Error(), core.ColorRed)
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - p: resume  b: menu ", core.ColorYellow)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

// renderHUD draws level, moves and the running score.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.round == nil {
		return
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Level: %d", g.round.Level), core.ColorRed)

	moves := fmt.Sprintf("%s  Moves: %d/%d", g.shape.Title, g.round.MovesMade, g.round.Moves)
	if g.round.Forfeited() {
		moves = fmt.Sprintf("%s  Moves: -/%d", g.shape.Title, g.round.Moves)
	}
	dst.DrawTextCentered(0, moves, core.ColorDefault)

	dst.DrawTextRight(0, 1, fmt.Sprintf("Score: %.2f", g.round.Score()), core.ColorRed)
}

// toCells maps world vertices to canvas cell space.
func (g *Game) toCells(verts []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(verts))
	for i, v := range verts {
		out[i] = g.cellAt(v)
	}
	return out
}
