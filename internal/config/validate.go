package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/pingpong/internal/core"
)

var (
	// ErrInvalid marks a document that parsed but describes an unusable game.
	ErrInvalid = errors.New("invalid configuration")
	// ErrEmpty marks a document file with no content.
	ErrEmpty = errors.New("empty document")
)

// ReservedKeys are bound to menu and round control and cannot move the
// paddle.
var ReservedKeys = []string{"esc", "enter", "ctrl+c"}

// problems collects validation failures for one pass over the documents.
type problems []error

func (p *problems) addf(doc, field, format string, args ...any) {
	*p = append(*p, fmt.Errorf("config: %s: %s: %w: %s", doc, field, ErrInvalid, fmt.Sprintf(format, args...)))
}

// Validate checks the cross-document invariants the game relies on: the
// paddle and ball start inside the playfield, step sizes point the right way,
// velocity candidates are usable and every style, font and position a widget
// names exists.
func Validate(d *Documents) error {
	var p problems

	validateGame(&p, d)

	if d.InfoMenu.Table.Rows <= 0 {
		p.addf(DocInfoMenu, "table.rows", "must be positive, got %d", d.InfoMenu.Table.Rows)
	}

	switch d.Game.MissRule {
	case MissExit, MissPaddle:
	default:
		p.addf(DocGame, "miss_rule", "unknown rule %q (want %q or %q)", d.Game.MissRule, MissExit, MissPaddle)
	}

	validateRefs(&p, d)

	return errors.Join(p...)
}

func validateGame(p *problems, d *Documents) {
	g := d.Game
	w, h := g.Canvas.Width, g.Canvas.Height

	if w <= 0 || h <= 0 {
		p.addf(DocGame, "canvas", "dimensions must be positive, got %dx%d", w, h)
		return
	}
	if g.Delay <= 0 {
		p.addf(DocGame, "delay", "must be positive, got %s", g.Delay)
	}

	paddle := g.Paddle.Rectangle
	if paddle.X2 <= paddle.X1 || paddle.Y2 <= paddle.Y1 {
		p.addf(DocGame, "paddle.rectangle", "box must have positive size")
	} else if !shapeWithin(paddle, w, h) {
		p.addf(DocGame, "paddle.rectangle", "box must start inside the %dx%d canvas", w, h)
	}
	if g.Paddle.DXL > 0 {
		p.addf(DocGame, "paddle.dxl", "left step must not be positive, got %d", g.Paddle.DXL)
	}
	if g.Paddle.DXR < 0 {
		p.addf(DocGame, "paddle.dxr", "right step must not be negative, got %d", g.Paddle.DXR)
	}
	if strings.TrimSpace(g.Paddle.LeftKey) == "" || strings.TrimSpace(g.Paddle.RightKey) == "" {
		p.addf(DocGame, "paddle.left_key/right_key", "both keys must be bound")
	} else if g.Paddle.LeftKey == g.Paddle.RightKey {
		p.addf(DocGame, "paddle.left_key/right_key", "keys must differ, both are %q", g.Paddle.LeftKey)
	}
	validateKey(p, "paddle.left_key", g.Paddle.LeftKey)
	validateKey(p, "paddle.right_key", g.Paddle.RightKey)

	ball := g.Ball.Oval
	if ball.X2 <= ball.X1 || ball.Y2 <= ball.Y1 {
		p.addf(DocGame, "ball.oval", "box must have positive size")
	} else if !shapeWithin(ball, w, h) {
		p.addf(DocGame, "ball.oval", "box must start inside the %dx%d canvas", w, h)
	}
	validateCandidates(p, "ball.dx", g.Ball.DX)
	validateCandidates(p, "ball.dy", g.Ball.DY)

	if strings.Count(g.Score.Format, "%d") != 1 || strings.Count(g.Score.Format, "%") != 1 {
		p.addf(DocGame, "score.format", "must contain exactly one %%d verb, got %q", g.Score.Format)
	}
}

func validateKey(p *problems, field, name string) {
	if slices.Contains(ReservedKeys, strings.ToLower(strings.TrimSpace(name))) {
		p.addf(DocGame, field, "%q is reserved for menu control", name)
	}
}

func validateCandidates(p *problems, field string, values []int) {
	if len(values) == 0 {
		p.addf(DocGame, field, "needs at least one candidate")
		return
	}
	for _, v := range values {
		if v == 0 {
			p.addf(DocGame, field, "candidates must be non-zero")
			return
		}
	}
}

func shapeWithin(s Shape, w, h int) bool {
	return core.NewBox(s.X1, s.Y1, s.X2, s.Y2).Translate(s.X0, s.Y0).Within(w, h)
}

// validateRefs checks that every named style, font and position exists.
// Empty names mean "none" and are allowed.
func validateRefs(p *problems, d *Documents) {
	style := func(doc, field, name string) {
		if _, ok := d.Styles[name]; name != "" && !ok {
			p.addf(doc, field, "unknown style %q", name)
		}
	}
	font := func(doc, field, name string) {
		if _, ok := d.Fonts[name]; name != "" && !ok {
			p.addf(doc, field, "unknown font %q", name)
		}
	}
	position := func(doc, field, name string) {
		if _, ok := d.Positions[name]; name != "" && !ok {
			p.addf(doc, field, "unknown position %q", name)
		}
	}
	label := func(doc, field string, l Label) {
		style(doc, field+".style", l.Style)
		font(doc, field+".font", l.Font)
		position(doc, field+".position", l.Position)
	}
	frame := func(doc string, f Frame) {
		style(doc, "frame.style", f.Style)
		position(doc, "frame.position", f.Position)
	}

	style(DocApp, "background", d.App.Background)

	frame(DocMainMenu, d.MainMenu.Frame)
	label(DocMainMenu, "title", d.MainMenu.Title)
	label(DocMainMenu, "buttons.play_button", d.MainMenu.Buttons.Play)
	label(DocMainMenu, "buttons.info_button", d.MainMenu.Buttons.Info)
	label(DocMainMenu, "buttons.help_button", d.MainMenu.Buttons.Help)
	label(DocMainMenu, "buttons.exit_button", d.MainMenu.Buttons.Exit)

	frame(DocInfoMenu, d.InfoMenu.Frame)
	label(DocInfoMenu, "table.header_label", d.InfoMenu.Table.HeaderLabel)
	label(DocInfoMenu, "table.name_label", d.InfoMenu.Table.NameLabel)
	label(DocInfoMenu, "table.result_label", d.InfoMenu.Table.ResultLabel)
	label(DocInfoMenu, "back_button", d.InfoMenu.BackButton)

	frame(DocHelpMenu, d.HelpMenu.Frame)
	label(DocHelpMenu, "header_label", d.HelpMenu.HeaderLabel)
	label(DocHelpMenu, "wrapper_label", d.HelpMenu.WrapperLabel)
	label(DocHelpMenu, "back_button", d.HelpMenu.BackButton)

	style(DocGame, "canvas.style", d.Game.Canvas.Style)
	position(DocGame, "canvas.position", d.Game.Canvas.Position)
	style(DocGame, "paddle.rectangle.style", d.Game.Paddle.Rectangle.Style)
	style(DocGame, "ball.oval.style", d.Game.Ball.Oval.Style)
	style(DocGame, "score.style", d.Game.Score.Style)
	font(DocGame, "score.font", d.Game.Score.Font)
}
