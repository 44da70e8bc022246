package pingpong

import (
	"context"
	"time"

	"github.com/vovakirdan/pingpong/internal/core"
)

// TickSource paces a headless round run by Run. Wait blocks until the next tick is due or ctx
// is done.
type TickSource interface {
	Wait(ctx context.Context) error
}

// InputSource returns the input collected since the previous poll.
type InputSource interface {
	Poll() core.InputFrame
}

// Ticker is a TickSource backed by a time.Ticker, for running a round in
// real time without a front-end.
type Ticker struct {
	t *time.Ticker
}

// NewTicker creates a Ticker firing every d.
func NewTicker(d time.Duration) *Ticker {
	return &Ticker{t: time.NewTicker(d)}
}

// Wait blocks until the next tick or until ctx is done.
func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// Stop releases the underlying ticker.
func (t *Ticker) Stop() {
	t.t.Stop()
}

// Run drives s until the round ends. Each iteration waits for a tick, polls
// input, steps the session and calls refresh. Cancelling ctx aborts the
// round without producing a result.
func Run(ctx context.Context, s *Session, ticks TickSource, input InputSource, refresh func()) (core.GameState, error) {
	for !s.Over() {
		if err := ticks.Wait(ctx); err != nil {
			return s.State(), err
		}

		in := core.NewInputFrame()
		if input != nil {
			in = input.Poll()
		}
		s.Step(in)

		if refresh != nil {
			refresh()
		}
	}
	return s.State(), nil
}
