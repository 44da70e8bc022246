// Package core provides fundamental types and utilities for the ping-pong game.
// It does not depend on any front-end (neither Bubble Tea nor Ebitengine), so
// round logic runs the same in the terminal, the desktop window and tests.
package core

// Box is an axis-aligned bounding box given by its corners.
// X grows to the right and Y grows downward, matching terminal and window
// coordinates. Edges are inclusive for collision purposes.
type Box struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewBox creates a box from its two corners.
func NewBox(x1, y1, x2, y2 int) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() int { return b.X1 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() int { return b.Y1 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() int { return b.X2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() int { return b.Y2 }

// Width returns the horizontal extent of the box.
func (b Box) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent of the box.
func (b Box) Height() int { return b.Y2 - b.Y1 }

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	return Box{X1: b.X1 + dx, Y1: b.Y1 + dy, X2: b.X2 + dx, Y2: b.Y2 + dy}
}

// OverlapsX reports whether the horizontal spans of two boxes touch or overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.X2 >= other.X1 && b.X1 <= other.X2
}

// Within reports whether the box lies entirely inside [0,w] x [0,h].
func (b Box) Within(w, h int) bool {
	return b.X1 >= 0 && b.Y1 >= 0 && b.X2 <= w && b.Y2 <= h
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
