package pingpong

import "github.com/vovakirdan/pingpong/internal/core"

// Paddle is the player's horizontal bar at the bottom of the playfield.
type Paddle struct {
	canvas core.Canvas
	id     core.ItemID
	dxl    int // step for move-left, not positive
	dxr    int // step for move-right, not negative
}

func newPaddle(canvas core.Canvas, box core.Box, style string, dxl, dxr int) *Paddle {
	return &Paddle{
		canvas: canvas,
		id:     canvas.PlaceRect(box, style),
		dxl:    dxl,
		dxr:    dxr,
	}
}

// Bounds returns the paddle's current box.
func (p *Paddle) Bounds() core.Box {
	return p.canvas.Bounds(p.id)
}

// MoveLeft shifts the paddle by the left step unless it already touches the
// left wall. The step is shortened so the paddle never crosses the wall.
func (p *Paddle) MoveLeft() {
	b := p.Bounds()
	if b.Left() <= 0 {
		return
	}
	step := core.Max(p.dxl, -b.Left())
	p.canvas.MoveBy(p.id, step, 0)
}

// MoveRight shifts the paddle by the right step unless it already touches
// the right wall.
func (p *Paddle) MoveRight() {
	b := p.Bounds()
	w := p.canvas.Width()
	if b.Right() >= w {
		return
	}
	step := core.Min(p.dxr, w-b.Right())
	p.canvas.MoveBy(p.id, step, 0)
}
