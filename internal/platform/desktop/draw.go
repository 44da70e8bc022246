package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// Debug font cell size in pixels
const (
	glyphW = 6
	glyphH = 16
)

// palette resolves style names to window colors.
type palette struct {
	colors     map[string]color.Color
	background color.Color
	fallback   color.Color
}

func newPalette(docs *config.Documents) *palette {
	p := &palette{
		colors:     make(map[string]color.Color, len(docs.Styles)),
		background: color.Black,
		fallback:   color.White,
	}
	for name, s := range docs.Styles {
		if c, ok := core.ParseColor(s.Foreground); ok {
			p.colors[name] = c
		}
	}
	if bg, ok := docs.Styles[docs.App.Background]; ok {
		if c, ok := core.ParseColor(bg.Background); ok {
			p.background = c
		}
	}
	return p
}

// color returns the foreground color of the named style.
func (p *palette) color(style string) color.Color {
	if c, ok := p.colors[style]; ok {
		return c
	}
	return p.fallback
}

// Draw renders the current screen.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(g.palette.background)

	switch g.screen {
	case screenMain:
		g.drawMain(dst)
	case screenGame:
		g.drawScene(dst)
	case screenInfo:
		g.drawInfo(dst)
	case screenHelp:
		g.drawHelp(dst)
	}

	if g.status != "" && g.screen != screenGame {
		_, h := g.ScreenSize()
		ebitenutil.DebugPrintAt(dst, g.status, glyphW, h-glyphH-4)
	}
}

// drawScene draws every canvas item scaled to pixels.
func (g *Game) drawScene(dst *ebiten.Image) {
	scale := float32(g.docs.App.Scale)

	for _, item := range g.scene.Items() {
		b := item.Box
		x, y := float32(b.X1)*scale, float32(b.Y1)*scale
		w := float32(max(b.Width(), 1)) * scale
		h := float32(max(b.Height(), 1)) * scale
		clr := g.palette.color(item.Style)

		switch item.Kind {
		case core.ItemRect:
			vector.DrawFilledRect(dst, x, y, w, h, clr, false)
		case core.ItemOval:
			vector.DrawFilledCircle(dst, x+w/2, y+h/2, min(w, h)/2, clr, true)
		case core.ItemText:
			ebitenutil.DebugPrintAt(dst, item.Text, int(x), int(y))
		}
	}
}

// printLines prints lines centered horizontally starting at row y.
func (g *Game) printLines(dst *ebiten.Image, y int, lines ...string) int {
	w, _ := g.ScreenSize()
	for _, line := range lines {
		x := (w - len(line)*glyphW) / 2
		ebitenutil.DebugPrintAt(dst, line, max(x, 0), y)
		y += glyphH
	}
	return y
}

func (g *Game) drawMain(dst *ebiten.Image) {
	y := g.printLines(dst, glyphH*2, g.docs.MainMenu.Title.Text, "")
	for i, l := range g.menuEntries() {
		line := "  " + l.Text + "  "
		if i == g.cursor {
			line = "> " + l.Text + " <"
		}
		y = g.printLines(dst, y, line)
	}
	g.printLines(dst, y+glyphH, "Player: "+g.player)
}

func (g *Game) drawInfo(dst *ebiten.Image) {
	t := g.docs.InfoMenu.Table
	lines := []string{t.HeaderLabel.Text, "", t.NameLabel.Text + " / " + t.ResultLabel.Text}
	if len(g.table) == 0 {
		lines = append(lines, "No results recorded yet.")
	}
	for i, r := range g.table {
		lines = append(lines, formatRow(i+1, r.Name, r.Result))
	}
	lines = append(lines, "", g.docs.InfoMenu.BackButton.Text)
	g.printLines(dst, glyphH*2, lines...)
}

func (g *Game) drawHelp(dst *ebiten.Image) {
	h := g.docs.HelpMenu
	lines := append([]string{h.HeaderLabel.Text, ""}, strings.Split(h.WrapperLabel.Text, "\n")...)
	lines = append(lines, "", h.BackButton.Text)
	g.printLines(dst, glyphH*2, lines...)
}

// formatRow renders one results table row.
func formatRow(rank int, name string, result int) string {
	return fmt.Sprintf("%2d. %-16s %6d", rank, name, result)
}
