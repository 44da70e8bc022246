package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/config"
)

// Style names the application looks up directly. Everything else is
// referenced by name from the documents.
const (
	styleSelected = "selected"
	styleStatus   = "status"
	styleError    = "error"
)

// Theme resolves style, font and position names from the configuration
// documents into lipgloss styles.
type Theme struct {
	styles    map[string]lipgloss.Style
	cells     map[string]lipgloss.Style // colors only, for playfield cells
	fonts     map[string]config.Font
	positions map[string]config.Position
	appStyle  string
}

// NewTheme builds a theme from the loaded documents.
func NewTheme(docs *config.Documents) *Theme {
	t := &Theme{
		styles:    make(map[string]lipgloss.Style, len(docs.Styles)),
		cells:     make(map[string]lipgloss.Style, len(docs.Styles)),
		fonts:     docs.Fonts,
		positions: docs.Positions,
		appStyle:  docs.App.Background,
	}
	for name, s := range docs.Styles {
		t.styles[name] = styleFrom(s)
		t.cells[name] = styleFrom(config.Style{Foreground: s.Foreground, Background: s.Background})
	}
	return t
}

func styleFrom(s config.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipgloss.Color(s.Background))
	}
	if s.Border {
		style = style.Border(lipgloss.RoundedBorder())
		if s.BorderFg != "" {
			style = style.BorderForeground(lipgloss.Color(s.BorderFg))
		}
	}
	return style
}

// Style returns the named style, or a plain style for unknown names.
func (t *Theme) Style(name string) lipgloss.Style {
	if s, ok := t.styles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Cell returns the colors of the named style without borders.
func (t *Theme) Cell(name string) lipgloss.Style {
	if s, ok := t.cells[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// App returns the application background style.
func (t *Theme) App() lipgloss.Style {
	return t.Style(t.appStyle)
}

// Frame returns the style for a screen container.
func (t *Theme) Frame(f config.Frame) lipgloss.Style {
	return t.position(t.Style(f.Style), f.Position)
}

// Label returns the combined style, font and position for a label.
func (t *Theme) Label(l config.Label) lipgloss.Style {
	return t.position(t.font(t.Style(l.Style), l.Font), l.Position)
}

// Selected returns a label's style with the selection colors applied.
func (t *Theme) Selected(l config.Label) lipgloss.Style {
	base := t.Label(l)
	sel, ok := t.styles[styleSelected]
	if !ok {
		return base.Reverse(true)
	}
	return base.Foreground(sel.GetForeground()).Background(sel.GetBackground())
}

// Font applies the named font to style.
func (t *Theme) font(style lipgloss.Style, name string) lipgloss.Style {
	f, ok := t.fonts[name]
	if !ok {
		return style
	}
	return style.Bold(f.Bold).Italic(f.Italic).Underline(f.Underline).Faint(f.Faint)
}

func (t *Theme) position(style lipgloss.Style, name string) lipgloss.Style {
	p, ok := t.positions[name]
	if !ok {
		return style
	}
	switch p.Align {
	case "left":
		style = style.Align(lipgloss.Left)
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	}
	if len(p.Padding) > 0 {
		style = style.Padding(p.Padding...)
	}
	if len(p.Margin) > 0 {
		style = style.Margin(p.Margin...)
	}
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	return style
}
