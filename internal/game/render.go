package game

import (
	"fmt"

	"github.com/vovakirdan/tui-mergetris/internal/core"
)

const (
	cellWidth  = 4  // screen columns per board cell
	panelWidth = 22 // side panel to the right of the board
)

// tileColors cycles by exponent so every value tier stays readable on a
// 16-color terminal.
var tileColors = []core.Color{
	core.ColorCyan,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorMagenta,
	core.ColorBrightBlue,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightMagenta,
	core.ColorOrange,
	core.ColorBrightCyan,
	core.ColorBrightYellow,
}

func tileColor(v int) core.Color {
	exp := 0
	for v > 1 {
		v >>= 1
		exp++
	}
	return tileColors[(exp-1+len(tileColors))%len(tileColors)]
}

// formatTile renders a tile value into cellWidth runes.
func formatTile(v int) string {
	if v < 10000 {
		return fmt.Sprintf("%*d", cellWidth, v)
	}
	return fmt.Sprintf("%*dk", cellWidth-1, v/1024)
}

// Render draws the full frame into the screen buffer.
func (g *Game) Render(s *core.Screen) {
	s.Clear()

	if g.tooSmall {
		s.DrawTextCentered(s.Height()/2, "Terminal too small")
		s.DrawTextCentered(s.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d",
				g.board.Width()*cellWidth+2+panelWidth, g.board.Height()+3))
		return
	}

	g.renderBoard(s)
	g.renderPanel(s)

	if g.gameOver {
		g.renderOverlay(s, "GAME OVER", "press r to restart")
	} else if g.paused {
		g.renderOverlay(s, "PAUSED", "press p to resume")
	}
}

// boardToScreen converts board coordinates (y up) to screen coordinates
// inside the board box (y down).
func (g *Game) boardToScreen(x, y int) (int, int) {
	return 1 + x*cellWidth, 1 + (g.board.Height() - 1 - y)
}

func (g *Game) renderBoard(s *core.Screen) {
	w := g.board.Width()*cellWidth + 2
	h := g.board.Height() + 2
	s.DrawBox(0, 0, w, h)

	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			v := g.board.Get(x, y)
			if v == 0 {
				continue
			}
			sx, sy := g.boardToScreen(x, y)
			s.DrawTextColored(sx, sy, formatTile(v), tileColor(v))
		}
	}

	if g.piece == nil {
		return
	}

	// Ghost under the active piece, then the piece itself on top.
	ghost := g.piece.Ghost(g.board)
	for _, off := range ShapeOffsets(g.piece.Shape, g.piece.Rotation) {
		c := ghost.Add(off.X, off.Y)
		if !g.board.Inside(c.X, c.Y) {
			continue
		}
		sx, sy := g.boardToScreen(c.X, c.Y)
		s.SetColored(sx+cellWidth-1, sy, '·', core.ColorGray)
	}

	for i, c := range g.piece.Cells() {
		if !g.board.Inside(c.X, c.Y) {
			continue
		}
		sx, sy := g.boardToScreen(c.X, c.Y)
		s.DrawTextColored(sx, sy, formatTile(g.piece.Values[i]), tileColor(g.piece.Values[i]))
	}
}

func (g *Game) renderPanel(s *core.Screen) {
	px := g.board.Width()*cellWidth + 4
	y := 1

	s.DrawText(px, y, fmt.Sprintf("Score %8d", g.score.Score()))
	y++
	s.DrawText(px, y, fmt.Sprintf("High  %8d", g.score.HighScore()))
	y++
	s.DrawText(px, y, fmt.Sprintf("Level %8d", g.score.Level()))
	y++
	s.DrawText(px, y, fmt.Sprintf("Lines %8d", g.score.Lines()))
	y++
	if combo := g.score.Combo(); combo > 0 {
		s.DrawTextColored(px, y, fmt.Sprintf("Combo %7dx", combo), core.ColorBrightYellow)
	}
	y += 2

	s.DrawText(px, y, "Next")
	y++
	g.renderNext(s, px, y)
	y += 3

	if g.mode == ModeNormal {
		s.DrawText(px, y, "Power-ups")
		y++
		queue := g.powerups.Queue()
		if len(queue) == 0 {
			s.DrawTextColored(px, y, "(none)", core.ColorGray)
		} else {
			for i, kind := range queue {
				if px+i*2 >= s.Width() {
					break
				}
				s.SetColored(px+i*2, y, kind.Glyph(), core.ColorBrightCyan)
			}
		}
		y += 2

		for _, eff := range g.powerups.Effects() {
			secs := float64(eff.Remaining) / float64(g.runtime.TickRate)
			s.DrawTextColored(px, y, fmt.Sprintf("%s %.1fs", eff.Kind, secs), core.ColorBrightGreen)
			y++
		}
	}

	hy := s.Height() - 2
	s.DrawTextColored(px, hy-1, "a/d move  w rotate", core.ColorGray)
	s.DrawTextColored(px, hy, "s soft  spc drop  e use", core.ColorGray)
}

// renderNext draws the lookahead piece on a 4x2 mini grid.
func (g *Game) renderNext(s *core.Screen, px, py int) {
	if g.next == nil {
		return
	}
	for i, off := range ShapeOffsets(g.next.Shape, 0) {
		// Offsets span x in [-1,2] and y in [0,1]; flip y for the screen.
		sx := px + (off.X+1)*cellWidth
		sy := py + (1 - off.Y)
		s.DrawTextColored(sx, sy, formatTile(g.next.Values[i]), tileColor(g.next.Values[i]))
	}
}

func (g *Game) renderOverlay(s *core.Screen, title, hint string) {
	boardW := g.board.Width()*cellWidth + 2
	cy := (g.board.Height() + 2) / 2
	cx := (boardW - len(title)) / 2
	s.DrawTextColored(cx, cy, title, core.ColorBrightWhite)
	cx = (boardW - len(hint)) / 2
	s.DrawTextColored(cx, cy+1, hint, core.ColorGray)
}
