package game

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.loadErr != nil {
		g.renderOverlay(dst, "Level failed to load", g.loadErr.Error())
		return
	}

	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	// Draw overlays
	switch {
	case g.victory:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d — Press R to restart", g.score))
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), "Press Enter to continue")
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	levelName := ""
	if g.level != nil {
		levelName = g.level.Name
	}
	hud := fmt.Sprintf(" Pac-Man — Score: %d  Lives: %d  Level: %d/%d %s",
		g.score, g.lives, g.levelIndex+1, len(g.roster()), levelName)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and remaining pellets.
func (g *Game) renderMaze(dst *core.Screen) {
	for y := 0; y < g.mz.Height(); y++ {
		for x := 0; x < g.mz.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			if sx < 0 || sx >= dst.Width() || sy < 0 || sy >= dst.Height() {
				continue
			}

			if g.mz.Tile(c) == maze.TileWall {
				dst.SetCell(sx, sy, '#', core.ColorBlue)
				continue
			}

			switch g.pellets[c] {
			case maze.TilePellet:
				dst.SetCell(sx, sy, '·', core.ColorWhite)
			case maze.TilePowerPellet:
				// Power pellets pulse to stand out.
				color := core.ColorBrightYellow
				if (g.tick/5)%2 == 0 {
					color = core.ColorYellow
				}
				dst.SetCell(sx, sy, 'o', color)
			}
		}
	}
}

// renderPlayer draws the player at their reference cell.
func (g *Game) renderPlayer(dst *core.Screen) {
	c := g.player.Cell(g.mz)
	sx := g.mapOffsetX + c.X
	sy := g.mapOffsetY + c.Y
	if sx >= 0 && sx < dst.Width() && sy >= 0 && sy < dst.Height() {
		dst.SetCell(sx, sy, 'C', core.ColorBrightYellow)
	}
}

// renderGhosts draws each ghost with a glyph and color reflecting its
// mode: normal body color, frightened blue (white while blinking), or
// gray eyes when eaten.
func (g *Game) renderGhosts(dst *core.Screen) {
	for _, gh := range g.ghosts {
		c := gh.Cell(g.mz)
		sx := g.mapOffsetX + c.X
		sy := g.mapOffsetY + c.Y
		if sx < 0 || sx >= dst.Width() || sy < 0 || sy >= dst.Height() {
			continue
		}

		ch := 'M'
		color := gh.Color
		switch gh.Mode {
		case ModeFrightened:
			color = core.ColorBlue
			if gh.Blinking(g) {
				color = core.ColorBrightWhite
			}
		case ModeEaten:
			ch = '"'
			color = core.ColorGray
		}
		dst.SetCell(sx, sy, ch, color)
	}
}

// renderOverlay draws a centered overlay box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
