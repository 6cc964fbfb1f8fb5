package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

const hudHeight = 2

// drawGame draws one frame of the game into the screen buffer:
// HUD, bordered board, snake, food and any overlay.
func drawGame(dst *core.Screen, snap engine.Snapshot, cfg config.Game, title string, soundOn, paused bool) {
	dst.Clear()

	boardW := cfg.Board.Width
	boardH := cfg.Board.Height

	drawHUD(dst, snap, cfg, title, soundOn)

	// Board border box, centered horizontally below the HUD.
	offX := (dst.Width() - (boardW + 2)) / 2
	offY := hudHeight
	if offX < 0 {
		offX = 0
	}
	dst.DrawBox(offX, offY, boardW+2, boardH+2, core.ColorGray)

	// Food
	if snap.Food.In(boardW, boardH) {
		dst.SetCell(offX+1+snap.Food.X, offY+1+snap.Food.Y, '*', core.ColorBrightRed)
	}

	// Snake, head first
	for i, seg := range snap.Snake {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetCell(offX+1+seg.X, offY+1+seg.Y, r, c)
	}

	switch {
	case snap.State == engine.StateGameOver:
		drawOverlay(dst, "Game Over", "Press Space to restart")
	case paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawHUD draws the top status line.
func drawHUD(dst *core.Screen, snap engine.Snapshot, cfg config.Game, title string, soundOn bool) {
	hud := fmt.Sprintf(" %s — Score: %d", title, snap.Score)
	if cfg.Rules.TrackBest {
		hud += fmt.Sprintf("  Best: %d", snap.BestScore)
	}
	state := "off"
	if soundOn {
		state = "on"
	}
	hud += fmt.Sprintf("  Sound: %s", state)

	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
}

// drawOverlay draws a centered two-line message in a box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, line2, core.ColorWhite)
}
