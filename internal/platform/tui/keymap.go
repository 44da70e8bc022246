package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// KeyMap defines the key bindings for every screen. Paddle keys come from
// the game document.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Abort  key.Binding
	Left   key.Binding
	Right  key.Binding
}

// NewKeyMap returns the bindings for the given game configuration.
func NewKeyMap(g config.Game) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit without saving"),
		),
		Left: key.NewBinding(
			key.WithKeys(g.Paddle.LeftKey),
			key.WithHelp(g.Paddle.LeftKey, "paddle left"),
		),
		Right: key.NewBinding(
			key.WithKeys(g.Paddle.RightKey),
			key.WithHelp(g.Paddle.RightKey, "paddle right"),
		),
	}
}

// MapGameKey translates a key to a round action. Repeated presses between
// two ticks collapse into one action per direction.
func (k KeyMap) MapGameKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// bindings is a help.KeyMap over a fixed list of bindings.
type bindings []key.Binding

// ShortHelp returns key bindings for the short help view.
func (b bindings) ShortHelp() []key.Binding {
	return b
}

// FullHelp returns key bindings for the full help view.
func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

func (k KeyMap) menuHelp() bindings {
	return bindings{k.Up, k.Down, k.Select, k.Abort}
}

func (k KeyMap) promptHelp() bindings {
	return bindings{k.Select, k.Back}
}

func (k KeyMap) gameHelp() bindings {
	return bindings{k.Left, k.Right, k.Back}
}

func (k KeyMap) screenHelp() bindings {
	return bindings{k.Up, k.Down, k.Back}
}
