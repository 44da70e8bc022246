// Package pingpong implements one round of the ping-pong game: a paddle at
// the bottom of the playfield, a ball bouncing off the walls and the paddle,
// and a score that counts paddle returns. Rendering is left to whatever
// core.Canvas the session is given.
//
// The front-ends own their clocks (tea.Tick in the terminal, Ebitengine's
// Update in the desktop window) and call Session.Step once per tick. Run,
// with a TickSource and an InputSource, is the headless loop for driving a
// round without a front-end, as the tests do.
package pingpong

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/ledger"
)

// Navigator is told when a round starts and ends. It decides what the
// player sees next.
type Navigator interface {
	OnRoundStart()
	OnRoundEnd(result ledger.Result)
}

// Snapshot captures a session's observable state.
type Snapshot struct {
	Paddle core.Box
	Ball   core.Box
	DX, DY int
	Score  int
	Ticks  int
	Over   bool
}

// Session owns the paddle, ball and score of a single round.
type Session struct {
	cfg    config.Game
	canvas core.Canvas

	paddle *Paddle
	ball   *Ball
	score  *Score

	player string
	nav    Navigator
	ticks  int
	over   bool
	result ledger.Result
}

// NewSession places the paddle, ball and score on canvas and draws the
// ball's velocity from the configured candidates using rng. A nil rng is
// seeded from the clock.
func NewSession(cfg config.Game, canvas core.Canvas, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{cfg: cfg, canvas: canvas}

	s.paddle = newPaddle(canvas, shapeBox(cfg.Paddle.Rectangle), cfg.Paddle.Rectangle.Style,
		cfg.Paddle.DXL, cfg.Paddle.DXR)
	s.ball = newBall(canvas, shapeBox(cfg.Ball.Oval), cfg.Ball.Oval.Style,
		pick(rng, cfg.Ball.DX), pick(rng, cfg.Ball.DY))
	s.score = newScore(canvas, cfg.Score.X, cfg.Score.Y, cfg.Score.Initial, cfg.Score.Format, cfg.Score.Style)

	return s
}

// shapeBox applies a shape's offset to its box.
func shapeBox(s config.Shape) core.Box {
	return core.NewBox(s.X1, s.Y1, s.X2, s.Y2).Translate(s.X0, s.Y0)
}

func pick(rng *rand.Rand, candidates []int) int {
	if len(candidates) == 0 {
		return 1
	}
	return candidates[rng.Intn(len(candidates))]
}

// Begin attributes the round to player and notifies nav that it started.
// nav may be nil.
func (s *Session) Begin(player string, nav Navigator) {
	s.player = player
	s.nav = nav
	if nav != nil {
		nav.OnRoundStart()
	}
}

// Step advances the round by one tick: the ball moves first, then the
// paddle applies at most one move per direction from in. Once the ball is
// out of play the round ends, the navigator receives the result, and every
// later call is a no-op.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.over {
		return core.StepResult{State: s.State()}
	}
	if !s.InPlay() {
		s.end()
		return core.StepResult{State: s.State()}
	}

	hit := s.ball.Move(s.paddle.Bounds())
	if hit {
		s.score.Add(1)
	}

	if in.Has(core.ActionLeft) {
		s.paddle.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.paddle.MoveRight()
	}
	s.ticks++

	if !s.InPlay() {
		s.end()
	}

	return core.StepResult{State: s.State(), Hit: hit}
}

func (s *Session) end() {
	s.over = true
	s.result = ledger.Result{Name: s.player, Result: s.score.Value()}
	if s.nav != nil {
		s.nav.OnRoundEnd(s.result)
	}
}

// InPlay reports whether the ball is still in play under the configured
// miss rule.
func (s *Session) InPlay() bool {
	return s.ball.InPlay(s.cfg.MissRule, s.paddle.Bounds())
}

// Over reports whether the round has ended.
func (s *Session) Over() bool {
	return s.over
}

// Result returns the round's result. ok is false while the round is running.
func (s *Session) Result() (result ledger.Result, ok bool) {
	return s.result, s.over
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score: s.score.Value(),
		Ticks: s.ticks,
		Over:  s.over,
	}
}

// Delay returns the configured time between ticks.
func (s *Session) Delay() time.Duration {
	return s.cfg.Delay
}

// Player returns the name the round is attributed to.
func (s *Session) Player() string {
	return s.player
}

// Snapshot returns positions, velocity and counters for tests and logging.
func (s *Session) Snapshot() Snapshot {
	dx, dy := s.ball.Velocity()
	return Snapshot{
		Paddle: s.paddle.Bounds(),
		Ball:   s.ball.Bounds(),
		DX:     dx,
		DY:     dy,
		Score:  s.score.Value(),
		Ticks:  s.ticks,
		Over:   s.over,
	}
}
