// Package desktop runs the game in a desktop window using Ebitengine. It
// shares the round logic, configuration and ledger with the terminal
// front-end; only drawing and key handling differ.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/ledger"
	"github.com/vovakirdan/pingpong/internal/pingpong"
)

// screen is the currently visible screen.
type screen int

const (
	screenMain screen = iota
	screenGame
	screenInfo
	screenHelp
)

// Options configures the desktop window.
type Options struct {
	Docs   *config.Documents
	Ledger *ledger.Ledger
	Logger *log.Logger
	Player string // empty for the app default
	Seed   int64  // 0 = time based
	Keys   KeySource
}

// Game implements ebiten.Game.
type Game struct {
	docs   *config.Documents
	ledger *ledger.Ledger
	logger *log.Logger
	rng    *rand.Rand
	keys   KeySource
	player string

	leftKey  ebiten.Key
	rightKey ebiten.Key

	screen screen
	cursor int
	table  []ledger.Result

	session *pingpong.Session
	scene   *core.Scene

	status        string
	persistFailed bool
	palette       *palette
}

// menuEntries are the main menu labels in display order.
func (g *Game) menuEntries() []config.Label {
	b := g.docs.MainMenu.Buttons
	return []config.Label{b.Play, b.Info, b.Help, b.Exit}
}

// New creates the desktop game. It fails when a paddle key has no desktop
// equivalent.
func New(opts Options) (*Game, error) {
	left, ok := keyByName(opts.Docs.Game.Paddle.LeftKey)
	if !ok {
		return nil, fmt.Errorf("desktop: unsupported left_key %q", opts.Docs.Game.Paddle.LeftKey)
	}
	right, ok := keyByName(opts.Docs.Game.Paddle.RightKey)
	if !ok {
		return nil, fmt.Errorf("desktop: unsupported right_key %q", opts.Docs.Game.Paddle.RightKey)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := opts.Ledger
	if l == nil {
		l = ledger.New(nil)
	}
	keys := opts.Keys
	if keys == nil {
		keys = ebitenKeys{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	player := opts.Player
	if player == "" {
		player = opts.Docs.App.DefaultPlayer
	}

	return &Game{
		docs:     opts.Docs,
		ledger:   l,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		keys:     keys,
		player:   player,
		leftKey:  left,
		rightKey: right,
		palette:  newPalette(opts.Docs),
	}, nil
}

// Update runs once per tick. During a round each update is one simulation
// step; key presses since the previous update become that step's input.
func (g *Game) Update() error {
	switch g.screen {
	case screenMain:
		return g.updateMain()
	case screenGame:
		g.updateGame()
	case screenInfo, screenHelp:
		if g.keys.JustPressed(ebiten.KeyEscape) || g.keys.JustPressed(ebiten.KeyEnter) {
			g.screen = screenMain
		}
	}
	return nil
}

func (g *Game) updateMain() error {
	entries := g.menuEntries()
	switch {
	case g.keys.JustPressed(ebiten.KeyArrowUp):
		if g.cursor > 0 {
			g.cursor--
		}
	case g.keys.JustPressed(ebiten.KeyArrowDown):
		if g.cursor < len(entries)-1 {
			g.cursor++
		}
	case g.keys.JustPressed(ebiten.KeyEnter):
		switch g.cursor {
		case 0:
			g.startRound()
		case 1:
			g.table = g.ledger.Top(g.docs.InfoMenu.Table.Rows)
			g.screen = screenInfo
		case 2:
			g.screen = screenHelp
		default:
			return g.exit()
		}
	}
	return nil
}

func (g *Game) startRound() {
	cfg := g.docs.Game
	g.scene = core.NewScene(cfg.Canvas.Width, cfg.Canvas.Height)
	g.session = pingpong.NewSession(cfg, g.scene, g.rng)
	g.session.Begin(g.player, &pingpong.Recorder{
		Ledger: g.ledger,
		Next:   pingpong.LogNavigator{Logger: g.logger},
	})
	g.status = ""
	g.screen = screenGame
}

func (g *Game) updateGame() {
	if g.keys.JustPressed(ebiten.KeyEscape) {
		g.logger.Info("round abandoned", "player", g.player, "score", g.session.State().Score)
		g.leaveRound()
		g.status = "Round abandoned."
		return
	}

	in := core.NewInputFrame()
	if g.keys.JustPressed(g.leftKey) {
		in.Set(core.ActionLeft)
	}
	if g.keys.JustPressed(g.rightKey) {
		in.Set(core.ActionRight)
	}

	if res := g.session.Step(in); res.State.Over {
		result, _ := g.session.Result()
		g.leaveRound()
		g.status = fmt.Sprintf("%s scored %d.", result.Name, result.Result)
	}
}

func (g *Game) leaveRound() {
	g.session = nil
	g.scene = nil
	g.screen = screenMain
}

// exit persists the ledger and ends the program. A failed save is shown
// once; exiting again quits without saving.
func (g *Game) exit() error {
	if err := g.ledger.Persist(); err != nil {
		g.logger.Error("cannot persist results", "err", err)
		if g.persistFailed {
			g.logger.Warn("quitting without saving results", "entries", g.ledger.Len())
			return ebiten.Termination
		}
		g.persistFailed = true
		g.status = fmt.Sprintf("Saving failed: %v. Exit again to quit.", err)
		return nil
	}
	g.logger.Info("results saved", "entries", g.ledger.Len())
	return ebiten.Termination
}

// Layout returns the logical screen size: the playfield scaled to pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize returns the window size in pixels.
func (g *Game) ScreenSize() (int, int) {
	scale := g.docs.App.Scale
	return g.docs.Game.Canvas.Width * scale, g.docs.Game.Canvas.Height * scale
}

// TPS returns the tick rate matching the configured round delay.
func TPS(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.DefaultTPS
	}
	tps := int((time.Second + delay/2) / delay)
	return max(tps, 1)
}

// Run opens the window and blocks until the player exits or closes it.
// Closing the window aborts without saving.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	w, h := g.ScreenSize()
	ebiten.SetWindowTitle(opts.Docs.App.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(TPS(opts.Docs.Game.Delay))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
