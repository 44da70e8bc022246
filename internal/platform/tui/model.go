package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/ledger"
	"github.com/vovakirdan/pingpong/internal/pingpong"
)

// screen is the currently visible screen.
type screen int

const (
	screenMain screen = iota
	screenPrompt
	screenGame
	screenInfo
	screenHelp
)

func (s screen) String() string {
	switch s {
	case screenMain:
		return "main"
	case screenPrompt:
		return "prompt"
	case screenGame:
		return "game"
	case screenInfo:
		return "info"
	case screenHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Options configures the terminal application.
type Options struct {
	Docs   *config.Documents
	Ledger *ledger.Ledger
	Logger *log.Logger
	Player string // pre-filled player name, empty for the app default
	Seed   int64  // RNG seed, 0 = time based
	Width  int    // initial terminal size, 0 if unknown
	Height int
}

// Model is the Bubble Tea model for the whole application.
type Model struct {
	docs   *config.Documents
	theme  *Theme
	keys   KeyMap
	help   help.Model
	ledger *ledger.Ledger
	logger *log.Logger
	rng    *rand.Rand

	screen screen
	cursor int
	prompt textinput.Model
	table  table.Model
	player string

	// Active round, nil outside screenGame
	session *pingpong.Session
	scene   *core.Scene
	buffer  *core.Screen
	input   core.InputFrame
	round   int

	status        string
	statusErr     bool
	persistFailed bool
	width         int
	height        int
	quitting      bool
}

// NewModel creates the application model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := opts.Ledger
	if l == nil {
		l = ledger.New(nil)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	player := opts.Player
	if player == "" {
		player = opts.Docs.App.DefaultPlayer
	}

	prompt := textinput.New()
	prompt.Placeholder = opts.Docs.App.DefaultPlayer
	prompt.CharLimit = 32
	prompt.Width = 24

	return Model{
		docs:   opts.Docs,
		theme:  NewTheme(opts.Docs),
		keys:   NewKeyMap(opts.Docs.Game),
		help:   help.New(),
		ledger: l,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
		screen: screenMain,
		prompt: prompt,
		player: player,
		input:  core.NewInputFrame(),
		width:  opts.Width,
		height: opts.Height,
	}
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.docs.App.Title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			m.logger.Warn("aborted, results not saved", "screen", m.screen)
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenMain:
			return m.updateMain(msg)
		case screenPrompt:
			return m.updatePrompt(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenInfo:
			return m.updateInfo(msg)
		case screenHelp:
			return m.updateHelp(msg)
		}
	}

	// Cursor blink and similar internal messages
	if m.screen == screenPrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startRound places a fresh round on a new scene and starts its ticks.
func (m Model) startRound() (tea.Model, tea.Cmd) {
	g := m.docs.Game

	m.scene = core.NewScene(g.Canvas.Width, g.Canvas.Height)
	m.buffer = core.NewScreen(g.Canvas.Width, g.Canvas.Height)
	m.session = pingpong.NewSession(g, m.scene, m.rng)
	m.session.Begin(m.player, &pingpong.Recorder{
		Ledger: m.ledger,
		Next:   pingpong.LogNavigator{Logger: m.logger},
	})
	m.input = core.NewInputFrame()
	m.round++
	m.screen = screenGame
	m.clearStatus()

	return m, tickCmd(m.round, m.session.Delay())
}

// updateGame collects paddle input between ticks.
func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapGameKey(msg); action {
	case core.ActionLeft, core.ActionRight:
		m.input.Set(action)
	case core.ActionBack:
		m.logger.Info("round abandoned", "player", m.player, "score", m.session.State().Score)
		m.leaveRound()
		m.setStatus("Round abandoned.")
	}
	return m, nil
}

// handleTick advances the active round. Ticks scheduled for another round
// are dropped, which also ends the tick chain of an abandoned round.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Round != m.round || m.screen != screenGame || m.session == nil {
		return m, nil
	}

	res := m.session.Step(m.input)
	m.input.Clear()

	if res.State.Over {
		result, _ := m.session.Result()
		m.leaveRound()
		m.setStatus(fmt.Sprintf("%s scored %d.", result.Name, result.Result))
		return m, nil
	}

	return m, tickCmd(m.round, m.session.Delay())
}

// leaveRound discards the round's objects and returns to the main menu.
func (m *Model) leaveRound() {
	m.session = nil
	m.scene = nil
	m.buffer = nil
	m.screen = screenMain
}

// exit persists the ledger and quits. If persisting fails the error is
// shown and a second exit quits without saving.
func (m Model) exit() (tea.Model, tea.Cmd) {
	if err := m.ledger.Persist(); err != nil {
		m.logger.Error("cannot persist results", "err", err)
		if m.persistFailed {
			m.logger.Warn("quitting without saving results", "entries", m.ledger.Len())
			m.quitting = true
			return m, tea.Quit
		}
		m.persistFailed = true
		m.setError(fmt.Sprintf("Saving results failed: %v. Choose Exit again to quit without saving.", err))
		return m, nil
	}

	m.logger.Info("results saved", "entries", m.ledger.Len())
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// View renders the current screen with the status line and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var keys bindings
	switch m.screen {
	case screenMain:
		body, keys = m.viewMain(), m.keys.menuHelp()
	case screenPrompt:
		body, keys = m.viewPrompt(), m.keys.promptHelp()
	case screenGame:
		body, keys = m.viewGame(), m.keys.gameHelp()
	case screenInfo:
		body, keys = m.viewInfo(), m.keys.screenHelp()
	case screenHelp:
		body, keys = m.viewHelp(), m.keys.screenHelp()
	}

	parts := []string{body}
	if m.status != "" {
		style := m.theme.Style(styleStatus)
		if m.statusErr {
			style = m.theme.Style(styleError)
		}
		parts = append(parts, style.Render(m.status))
	}
	parts = append(parts, m.theme.Style(styleStatus).Render(m.help.View(keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return m.theme.App().Render(content)
}

// viewGame draws the playfield inside its frame.
func (m Model) viewGame() string {
	if m.scene == nil {
		return ""
	}
	g := m.docs.Game

	m.buffer.Clear()
	m.scene.Draw(m.buffer, PaddleChar, BallChar)

	canvas := m.theme.Frame(config.Frame{Style: g.Canvas.Style, Position: g.Canvas.Position}).
		Render(RenderScreen(m.buffer, m.theme))
	player := m.theme.Style(styleStatus).Render("Player: " + m.player)

	return lipgloss.JoinVertical(lipgloss.Center, canvas, player)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// trimName normalizes a typed player name, falling back to fallback.
func trimName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	return name
}
