package tui

import (
	"strings"

	"github.com/vovakirdan/pingpong/internal/core"
)

// Glyphs used to draw the playfield
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme *Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(theme.Cell(start).Render(run.String()))
		}
	}
	return sb.String()
}
