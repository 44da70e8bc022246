package core

// GameState represents the current state of a round.
type GameState struct {
	Score int  // Current score display value
	Ticks int  // Ticks simulated so far
	Over  bool // Whether the ball has left the playfield
}

// StepResult is returned by Session.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hit   bool // The ball was returned by the paddle this tick
}
