package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/ledger"
)

// Scoreboard layout constants
const (
	rankColumnWidth    = 4
	defaultColumnWidth = 16
)

// showInfo rebuilds the results table from the ledger's top rows. Viewing
// the table trims the ledger to those rows.
func (m *Model) showInfo() {
	rows := m.docs.InfoMenu.Table.Rows
	top := m.ledger.Top(rows)
	m.table = m.createTable(top)
	m.screen = screenInfo
	m.logger.Debug("results table shown", "rows", len(top))
}

// createTable creates the results table with configured column titles.
func (m Model) createTable(results []ledger.Result) table.Model {
	t := m.docs.InfoMenu.Table

	columns := []table.Column{
		{Title: "#", Width: rankColumnWidth},
		{Title: t.NameLabel.Text, Width: m.columnWidth(t.NameLabel)},
		{Title: t.ResultLabel.Text, Width: m.columnWidth(t.ResultLabel)},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Name,
			fmt.Sprintf("%d", r.Result),
		}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(t.Rows, 1)),
	)

	// Table styles
	frame := m.theme.Style(m.docs.InfoMenu.Frame.Style)
	header := m.theme.Cell(t.NameLabel.Style)
	cell := m.theme.Cell(t.ResultLabel.Style)
	selected := m.theme.Cell(styleSelected)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(header.GetForeground()).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(frame.GetBorderTopForeground()).
		BorderBottom(true).
		Bold(true)
	s.Cell = s.Cell.Foreground(cell.GetForeground())
	s.Selected = s.Selected.
		Foreground(selected.GetForeground()).
		Background(selected.GetBackground()).
		Bold(false)
	tbl.SetStyles(s)

	return tbl
}

func (m Model) columnWidth(l config.Label) int {
	if p, ok := m.docs.Positions[l.Position]; ok && p.Width > 0 {
		return p.Width
	}
	return defaultColumnWidth
}

// updateInfo handles the results screen.
func (m Model) updateInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.Select):
		m.screen = screenMain
		return m, nil
	case key.Matches(msg, m.keys.Up, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewInfo() string {
	im := m.docs.InfoMenu

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = m.theme.Style(styleStatus).
			Italic(true).
			Padding(1, 2).
			Render("No results recorded yet.")
	}

	return m.theme.Frame(im.Frame).Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Label(im.Table.HeaderLabel).Render(im.Table.HeaderLabel.Text),
		body,
		m.theme.Selected(im.BackButton).Render(im.BackButton.Text),
	))
}
