package core

import "sort"

// ItemID identifies an item placed on a Canvas.
type ItemID int

// ItemKind tells renderers how to draw an item.
type ItemKind int

const (
	ItemRect ItemKind = iota
	ItemOval
	ItemText
)

// Canvas is the drawing surface a round places its paddle, ball and score on.
// Game logic only reasons about geometry and text; styles are opaque names
// resolved by the renderer.
type Canvas interface {
	PlaceRect(b Box, style string) ItemID
	PlaceOval(b Box, style string) ItemID
	PlaceText(x, y int, text, style string) ItemID
	Bounds(id ItemID) Box
	MoveBy(id ItemID, dx, dy int)
	SetText(id ItemID, text string)
	Text(id ItemID) string
	Width() int
	Height() int
}

// Item is a single placed shape or label.
type Item struct {
	ID    ItemID
	Kind  ItemKind
	Box   Box
	Text  string
	Style string
}

// Scene is the in-memory Canvas shared by the terminal and desktop renderers.
type Scene struct {
	width  int
	height int
	nextID ItemID
	items  map[ItemID]*Item
}

// Ensure Scene implements Canvas
var _ Canvas = (*Scene)(nil)

// NewScene creates an empty scene with the given playfield dimensions.
func NewScene(width, height int) *Scene {
	return &Scene{
		width:  width,
		height: height,
		nextID: 1,
		items:  make(map[ItemID]*Item),
	}
}

func (s *Scene) place(kind ItemKind, b Box, text, style string) ItemID {
	id := s.nextID
	s.nextID++
	s.items[id] = &Item{ID: id, Kind: kind, Box: b, Text: text, Style: style}
	return id
}

// PlaceRect adds a rectangle and returns its handle.
func (s *Scene) PlaceRect(b Box, style string) ItemID {
	return s.place(ItemRect, b, "", style)
}

// PlaceOval adds an oval inscribed in b and returns its handle.
func (s *Scene) PlaceOval(b Box, style string) ItemID {
	return s.place(ItemOval, b, "", style)
}

// PlaceText adds a label anchored at (x, y). Its box spans the text width.
func (s *Scene) PlaceText(x, y int, text, style string) ItemID {
	return s.place(ItemText, NewBox(x, y, x+len([]rune(text)), y+1), text, style)
}

// Bounds returns the item's current box. Unknown handles yield a zero box.
func (s *Scene) Bounds(id ItemID) Box {
	if it, ok := s.items[id]; ok {
		return it.Box
	}
	return Box{}
}

// MoveBy shifts an item. Unknown handles are ignored.
func (s *Scene) MoveBy(id ItemID, dx, dy int) {
	if it, ok := s.items[id]; ok {
		it.Box = it.Box.Translate(dx, dy)
	}
}

// SetText replaces a label's text and resizes its box to fit.
func (s *Scene) SetText(id ItemID, text string) {
	if it, ok := s.items[id]; ok {
		it.Text = text
		it.Box.X2 = it.Box.X1 + len([]rune(text))
	}
}

// Text returns a label's text.
func (s *Scene) Text(id ItemID) string {
	if it, ok := s.items[id]; ok {
		return it.Text
	}
	return ""
}

// Width returns the playfield width.
func (s *Scene) Width() int {
	return s.width
}

// Height returns the playfield height.
func (s *Scene) Height() int {
	return s.height
}

// Items returns copies of all items in placement order.
func (s *Scene) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Draw rasterizes the scene into a character screen.
// Rects and ovals fill the cells [X1,X2) x [Y1,Y2); labels are written at
// their anchor.
func (s *Scene) Draw(dst *Screen, fill, ball rune) {
	for _, it := range s.Items() {
		switch it.Kind {
		case ItemRect:
			dst.DrawBox(it.Box, fill, it.Style)
		case ItemOval:
			dst.DrawBox(it.Box, ball, it.Style)
		case ItemText:
			dst.DrawText(it.Box.X1, it.Box.Y1, it.Text, it.Style)
		}
	}
}
