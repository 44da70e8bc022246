package pingpong

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/ledger"
)

func testConfig() config.Game {
	return config.Game{
		Canvas:   config.Canvas{Width: 60, Height: 20},
		Delay:    10 * time.Millisecond,
		MissRule: config.MissExit,
		Paddle: config.Paddle{
			Rectangle: config.Shape{X1: 0, Y1: 0, X2: 10, Y2: 1, X0: 25, Y0: 18},
			DXL:       -2,
			DXR:       2,
			LeftKey:   "left",
			RightKey:  "right",
		},
		Ball: config.Ball{
			Oval: config.Shape{X1: 0, Y1: 0, X2: 1, Y2: 1, X0: 30, Y0: 2},
			DX:   []int{-1, 1},
			DY:   []int{1},
		},
		Score: config.Score{X: 1, Y: 0, Initial: 0, Format: "%d"},
	}
}

func newTestSession(t *testing.T, cfg config.Game) (*Session, *core.Scene) {
	t.Helper()
	scene := core.NewScene(cfg.Canvas.Width, cfg.Canvas.Height)
	return NewSession(cfg, scene, rand.New(rand.NewSource(1))), scene
}

// placeBall moves the ball to box and overrides its velocity.
func placeBall(s *Session, scene *core.Scene, box core.Box, dx, dy int) {
	cur := s.ball.Bounds()
	scene.MoveBy(s.ball.id, box.X1-cur.X1, box.Y1-cur.Y1)
	s.ball.dx, s.ball.dy = dx, dy
}

// placePaddle moves the paddle so its left edge is at x.
func placePaddle(s *Session, scene *core.Scene, x int) {
	scene.MoveBy(s.paddle.id, x-s.paddle.Bounds().Left(), 0)
}

// navRecorder records navigator callbacks.
type navRecorder struct {
	started int
	ended   []ledger.Result
}

func (n *navRecorder) OnRoundStart()                  { n.started++ }
func (n *navRecorder) OnRoundEnd(result ledger.Result) { n.ended = append(n.ended, result) }

func TestNewSessionPlacement(t *testing.T) {
	cfg := testConfig()
	cfg.Score.Initial = 5
	cfg.Score.Format = "Score: %d"
	s, scene := newTestSession(t, cfg)

	snap := s.Snapshot()
	if snap.Paddle != core.NewBox(25, 18, 35, 19) {
		t.Errorf("paddle = %+v", snap.Paddle)
	}
	if snap.Ball != core.NewBox(30, 2, 31, 3) {
		t.Errorf("ball = %+v", snap.Ball)
	}
	if snap.DX != -1 && snap.DX != 1 {
		t.Errorf("dx = %d, expected a configured candidate", snap.DX)
	}
	if snap.DY != 1 {
		t.Errorf("dy = %d, expected 1", snap.DY)
	}
	if snap.Score != 5 {
		t.Errorf("score = %d, expected initial 5", snap.Score)
	}
	if got := scene.Text(s.score.id); got != "Score: 5" {
		t.Errorf("score label = %q", got)
	}
	if s.Delay() != 10*time.Millisecond {
		t.Errorf("Delay() = %s", s.Delay())
	}
	if _, ok := s.Result(); ok {
		t.Error("Result() should not be available before the round ends")
	}
}

func TestPaddleInverseMove(t *testing.T) {
	for _, x := range []int{2, 10, 25, 48} {
		s, scene := newTestSession(t, testConfig())
		placePaddle(s, scene, x)
		before := s.paddle.Bounds()

		s.paddle.MoveLeft()
		s.paddle.MoveRight()
		if got := s.paddle.Bounds(); got != before {
			t.Errorf("x=%d: left then right = %+v, expected %+v", x, got, before)
		}

		s.paddle.MoveRight()
		s.paddle.MoveLeft()
		if got := s.paddle.Bounds(); got != before {
			t.Errorf("x=%d: right then left = %+v, expected %+v", x, got, before)
		}
	}
}

func TestPaddleWalls(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		move     func(p *Paddle)
		expected int
	}{
		{"left wall is a no-op", 0, (*Paddle).MoveLeft, 0},
		{"left step clamped", 1, (*Paddle).MoveLeft, 0},
		{"left full step", 5, (*Paddle).MoveLeft, 3},
		{"right wall is a no-op", 50, (*Paddle).MoveRight, 50},
		{"right step clamped", 49, (*Paddle).MoveRight, 50},
		{"right full step", 40, (*Paddle).MoveRight, 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, scene := newTestSession(t, testConfig())
			placePaddle(s, scene, tc.start)

			tc.move(s.paddle)

			b := s.paddle.Bounds()
			if b.Left() != tc.expected {
				t.Errorf("left = %d, expected %d", b.Left(), tc.expected)
			}
			if b.Left() < 0 || b.Right() > 60 {
				t.Errorf("paddle left the playfield: %+v", b)
			}
		})
	}
}

func TestBallHorizontalBounce(t *testing.T) {
	tests := []struct {
		name       string
		x          int
		dx         int
		expectedDX int
	}{
		{"left wall forces right", 0, -1, 1},
		{"left wall keeps right", 0, 1, 1},
		{"right wall forces left", 59, 1, -1},
		{"right wall keeps left", 59, -1, -1},
		{"open field unchanged", 20, -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, scene := newTestSession(t, testConfig())
			placeBall(s, scene, core.NewBox(tc.x, 5, tc.x+1, 6), tc.dx, 1)

			s.Step(core.NewInputFrame())

			snap := s.Snapshot()
			if snap.DX != tc.expectedDX {
				t.Errorf("dx = %d, expected %d", snap.DX, tc.expectedDX)
			}
			if snap.Ball.Left() != tc.x+tc.expectedDX {
				t.Errorf("ball left = %d, expected %d", snap.Ball.Left(), tc.x+tc.expectedDX)
			}
		})
	}
}

func TestBallTopBounce(t *testing.T) {
	s, scene := newTestSession(t, testConfig())
	placeBall(s, scene, core.NewBox(20, 0, 21, 1), 1, -1)

	s.Step(core.NewInputFrame())

	snap := s.Snapshot()
	if snap.DY != 1 {
		t.Errorf("dy = %d, expected 1", snap.DY)
	}
	if snap.Ball.Top() != 1 {
		t.Errorf("ball top = %d, expected 1", snap.Ball.Top())
	}
}

func TestBallPaddleHit(t *testing.T) {
	tests := []struct {
		name    string
		ball    core.Box
		hit     bool
		afterDY int
	}{
		{"bottom on paddle top", core.NewBox(30, 17, 31, 18), true, -1},
		{"bottom inside paddle", core.NewBox(30, 18, 31, 19), true, -1},
		{"touching left corner", core.NewBox(24, 17, 25, 18), true, -1},
		{"touching right corner", core.NewBox(35, 17, 36, 18), true, -1},
		{"beside the paddle", core.NewBox(40, 17, 41, 18), false, 1},
		{"above the paddle", core.NewBox(30, 10, 31, 11), false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, scene := newTestSession(t, testConfig())
			placeBall(s, scene, tc.ball, 1, 1)

			res := s.Step(core.NewInputFrame())

			if res.Hit != tc.hit {
				t.Errorf("Hit = %v, expected %v", res.Hit, tc.hit)
			}
			snap := s.Snapshot()
			if snap.DY != tc.afterDY {
				t.Errorf("dy = %d, expected %d", snap.DY, tc.afterDY)
			}
			expectedScore := 0
			if tc.hit {
				expectedScore = 1
			}
			if snap.Score != expectedScore {
				t.Errorf("score = %d, expected %d", snap.Score, expectedScore)
			}
			if got := scene.Text(s.score.id); tc.hit && got != "1" {
				t.Errorf("score label = %q, expected \"1\"", got)
			}
		})
	}
}

func TestStepAppliesInputAfterBall(t *testing.T) {
	s, scene := newTestSession(t, testConfig())
	placeBall(s, scene, core.NewBox(30, 17, 31, 18), 1, 1)
	placePaddle(s, scene, 25)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	res := s.Step(in)

	// The collision saw the paddle where it was before the move
	if !res.Hit {
		t.Error("expected a paddle hit against the pre-move paddle")
	}
	if got := s.paddle.Bounds().Left(); got != 27 {
		t.Errorf("paddle left = %d, expected 27", got)
	}
}

func TestStepBothDirections(t *testing.T) {
	s, scene := newTestSession(t, testConfig())
	placePaddle(s, scene, 20)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	s.Step(in)

	if got := s.paddle.Bounds().Left(); got != 20 {
		t.Errorf("one move each way should cancel out, left = %d", got)
	}
}

func TestRoundTermination(t *testing.T) {
	// 400x600 playfield, paddle x:[150,250], ball x:[190,210] y:[580,600]
	// falling past the paddle's vertical span.
	cfg := config.Game{
		Canvas:   config.Canvas{Width: 400, Height: 600},
		Delay:    time.Millisecond,
		MissRule: config.MissExit,
		Paddle: config.Paddle{
			Rectangle: config.Shape{X1: 150, Y1: 560, X2: 250, Y2: 570},
			DXL:       -10,
			DXR:       10,
		},
		Ball: config.Ball{
			Oval: config.Shape{X1: 190, Y1: 580, X2: 210, Y2: 600},
			DX:   []int{1},
			DY:   []int{1},
		},
		Score: config.Score{Initial: 3, Format: "%d"},
	}
	s, _ := newTestSession(t, cfg)

	l := ledger.New(nil)
	nav := &navRecorder{}
	s.Begin("ann", &Recorder{Ledger: l, Next: nav})

	if nav.started != 1 {
		t.Errorf("OnRoundStart called %d times, expected 1", nav.started)
	}
	if !s.InPlay() {
		t.Fatal("ball with top 580 <= 600 should still be in play")
	}

	var ticks int
	for !s.Over() && ticks < 100 {
		s.Step(core.NewInputFrame())
		ticks++
	}

	if !s.Over() {
		t.Fatal("round should have ended")
	}
	// Top edge goes 580 -> 601 in 21 ticks
	if ticks != 21 {
		t.Errorf("round ended after %d ticks, expected 21", ticks)
	}
	if s.Snapshot().Ball.Top() != 601 {
		t.Errorf("ball top = %d, expected 601", s.Snapshot().Ball.Top())
	}

	expected := ledger.Result{Name: "ann", Result: 3}
	if got, ok := s.Result(); !ok || got != expected {
		t.Errorf("Result() = %v, %v; expected %v", got, ok, expected)
	}
	if !reflect.DeepEqual(l.Entries(), []ledger.Result{expected}) {
		t.Errorf("ledger = %v, expected the round result", l.Entries())
	}
	if !reflect.DeepEqual(nav.ended, []ledger.Result{expected}) {
		t.Errorf("OnRoundEnd calls = %v", nav.ended)
	}

	// Terminal state
	before := s.Snapshot()
	s.Step(core.NewInputFrame())
	if s.Snapshot() != before {
		t.Error("Step after the round ended should be a no-op")
	}
	if len(nav.ended) != 1 || l.Len() != 1 {
		t.Error("round end should be reported exactly once")
	}
}

func TestMissPaddleRule(t *testing.T) {
	cfg := testConfig()
	cfg.MissRule = config.MissPaddle
	s, scene := newTestSession(t, cfg)
	nav := &navRecorder{}
	s.Begin("bob", nav)

	// Top edge 19 is at the paddle's bottom: still in play
	placeBall(s, scene, core.NewBox(5, 19, 6, 20), 1, 1)
	if !s.InPlay() {
		t.Fatal("ball level with the paddle bottom should be in play")
	}

	s.Step(core.NewInputFrame())
	if !s.Over() {
		t.Error("ball below the paddle should end the round under the paddle rule")
	}
	if s.Snapshot().Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", s.Snapshot().Ticks)
	}
	if len(nav.ended) != 1 || nav.ended[0].Name != "bob" {
		t.Errorf("OnRoundEnd calls = %v", nav.ended)
	}

	// The same position under the exit rule keeps playing
	cfg.MissRule = config.MissExit
	s2, scene2 := newTestSession(t, cfg)
	placeBall(s2, scene2, core.NewBox(5, 19, 6, 20), 1, 1)
	s2.Step(core.NewInputFrame())
	if s2.Over() {
		t.Error("ball inside the playfield should stay in play under the exit rule")
	}
}

func TestStepOutOfPlayBeforeMove(t *testing.T) {
	s, scene := newTestSession(t, testConfig())
	placeBall(s, scene, core.NewBox(5, 21, 6, 22), 1, 1)

	s.Step(core.NewInputFrame())

	if !s.Over() {
		t.Error("ball already past the playfield should end the round")
	}
	snap := s.Snapshot()
	if snap.Ticks != 0 || snap.Ball.Top() != 21 {
		t.Errorf("ball should not move once out of play, snapshot = %+v", snap)
	}
}

func TestSessionDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical rounds
	inputs := make([]core.InputFrame, 200)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 7 {
		case 0:
			inputs[i].Set(core.ActionLeft)
		case 3:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func(seed int64) []Snapshot {
		cfg := testConfig()
		s := NewSession(cfg, core.NewScene(60, 20), rand.New(rand.NewSource(seed)))
		var trace []Snapshot
		for _, in := range inputs {
			s.Step(in)
			trace = append(trace, s.Snapshot())
			if s.Over() {
				break
			}
		}
		return trace
	}

	for _, seed := range []int64{1, 42, 12345} {
		a, b := run(seed), run(seed)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("seed %d: runs diverged", seed)
		}
	}
}

func TestVelocityMagnitudeIsConstant(t *testing.T) {
	cfg := testConfig()
	cfg.Ball.DX = []int{-2, 2}
	cfg.Ball.DY = []int{1}
	s, _ := newTestSession(t, cfg)

	for i := 0; i < 200 && !s.Over(); i++ {
		s.Step(core.NewInputFrame())
		snap := s.Snapshot()
		if core.Abs(snap.DX) != 2 || core.Abs(snap.DY) != 1 {
			t.Fatalf("tick %d: velocity (%d, %d) changed magnitude", i, snap.DX, snap.DY)
		}
	}
}
