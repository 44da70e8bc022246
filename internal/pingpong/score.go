package pingpong

import (
	"fmt"

	"github.com/vovakirdan/pingpong/internal/core"
)

// Score is the on-canvas counter of paddle returns.
type Score struct {
	canvas core.Canvas
	id     core.ItemID
	value  int
	format string
}

func newScore(canvas core.Canvas, x, y, initial int, format, style string) *Score {
	s := &Score{canvas: canvas, value: initial, format: format}
	s.id = canvas.PlaceText(x, y, s.label(), style)
	return s
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Add increases the score and updates its label.
func (s *Score) Add(n int) {
	s.value += n
	s.canvas.SetText(s.id, s.label())
}

func (s *Score) label() string {
	return fmt.Sprintf(s.format, s.value)
}
