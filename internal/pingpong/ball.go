package pingpong

import (
	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// Ball moves a fixed (dx, dy) per tick and bounces off the top wall, the
// side walls and the paddle.
type Ball struct {
	canvas core.Canvas
	id     core.ItemID
	dx, dy int
}

func newBall(canvas core.Canvas, box core.Box, style string, dx, dy int) *Ball {
	return &Ball{
		canvas: canvas,
		id:     canvas.PlaceOval(box, style),
		dx:     dx,
		dy:     dy,
	}
}

// Bounds returns the ball's current box.
func (b *Ball) Bounds() core.Box {
	return b.canvas.Bounds(b.id)
}

// Velocity returns the current per-tick displacement.
func (b *Ball) Velocity() (dx, dy int) {
	return b.dx, b.dy
}

// InPlay reports whether the round can continue. Under MissExit the ball
// is in play until its top edge passes the bottom of the playfield; under
// MissPaddle it is out as soon as its top edge passes the paddle's bottom.
func (b *Ball) InPlay(rule config.MissRule, paddle core.Box) bool {
	top := b.Bounds().Top()
	if rule == config.MissPaddle && top > paddle.Bottom() {
		return false
	}
	return top <= b.canvas.Height()
}

// Move resolves collisions against the position before the move, then
// shifts the ball by its velocity. It reports whether the paddle returned
// the ball.
func (b *Ball) Move(paddle core.Box) (hit bool) {
	pos := b.Bounds()

	switch {
	case pos.Left() <= 0:
		b.dx = core.Abs(b.dx)
	case pos.Right() >= b.canvas.Width():
		b.dx = -core.Abs(b.dx)
	}

	switch {
	case pos.Top() <= 0:
		b.dy = core.Abs(b.dy)
	case pos.OverlapsX(paddle) && paddle.Top() <= pos.Bottom() && pos.Bottom() <= paddle.Bottom():
		b.dy = -core.Abs(b.dy)
		hit = true
	}

	b.canvas.MoveBy(b.id, b.dx, b.dy)
	return hit
}
