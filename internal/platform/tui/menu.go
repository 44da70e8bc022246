package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/config"
)

// menuItem is an entry of the main menu.
type menuItem int

const (
	menuPlay menuItem = iota
	menuInfo
	menuHelp
	menuExit
)

// menuItems lists the main menu in display order.
var menuItems = []menuItem{menuPlay, menuInfo, menuHelp, menuExit}

func (m Model) menuLabel(item menuItem) config.Label {
	b := m.docs.MainMenu.Buttons
	switch item {
	case menuPlay:
		return b.Play
	case menuInfo:
		return b.Info
	case menuHelp:
		return b.Help
	default:
		return b.Exit
	}
}

// updateMain handles main menu navigation.
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.activate(menuItems[m.cursor])
	}
	return m, nil
}

func (m Model) activate(item menuItem) (tea.Model, tea.Cmd) {
	switch item {
	case menuPlay:
		m.prompt.SetValue(m.player)
		m.prompt.CursorEnd()
		m.screen = screenPrompt
		return m, m.prompt.Focus()
	case menuInfo:
		m.showInfo()
		return m, nil
	case menuHelp:
		m.screen = screenHelp
		return m, nil
	default:
		return m.exit()
	}
}

// updatePrompt asks for the player's name before a round.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.player = trimName(m.prompt.Value(), m.docs.App.DefaultPlayer)
		m.prompt.Blur()
		return m.startRound()
	case key.Matches(msg, m.keys.Back):
		m.prompt.Blur()
		m.screen = screenMain
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// updateHelp handles the help screen.
func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back, m.keys.Select) {
		m.screen = screenMain
	}
	return m, nil
}

func (m Model) viewMain() string {
	mm := m.docs.MainMenu

	lines := []string{m.theme.Label(mm.Title).Render(mm.Title.Text)}
	for i, item := range menuItems {
		l := m.menuLabel(item)
		style := m.theme.Label(l)
		if i == m.cursor {
			style = m.theme.Selected(l)
		}
		lines = append(lines, style.Render(l.Text))
	}

	return m.theme.Frame(mm.Frame).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) viewPrompt() string {
	mm := m.docs.MainMenu

	return m.theme.Frame(mm.Frame).Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Label(mm.Title).Render(mm.Title.Text),
		"Player name",
		m.prompt.View(),
	))
}

func (m Model) viewHelp() string {
	hm := m.docs.HelpMenu

	return m.theme.Frame(hm.Frame).Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Label(hm.HeaderLabel).Render(hm.HeaderLabel.Text),
		m.theme.Label(hm.WrapperLabel).Render(hm.WrapperLabel.Text),
		m.theme.Selected(hm.BackButton).Render(hm.BackButton.Text),
	))
}
