package pingpong

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/ledger"
)

// Recorder is a Navigator that appends every finished round to a ledger
// before handing the event on to Next.
type Recorder struct {
	Ledger *ledger.Ledger
	Next   Navigator
}

// OnRoundStart implements Navigator.
func (r *Recorder) OnRoundStart() {
	if r.Next != nil {
		r.Next.OnRoundStart()
	}
}

// OnRoundEnd implements Navigator.
func (r *Recorder) OnRoundEnd(result ledger.Result) {
	r.Ledger.Append(result)
	if r.Next != nil {
		r.Next.OnRoundEnd(result)
	}
}

// LogNavigator logs round boundaries.
type LogNavigator struct {
	Logger *log.Logger
}

// OnRoundStart implements Navigator.
func (n LogNavigator) OnRoundStart() {
	n.Logger.Debug("round started")
}

// OnRoundEnd implements Navigator.
func (n LogNavigator) OnRoundEnd(result ledger.Result) {
	n.Logger.Info("round finished", "player", result.Name, "result", result.Result)
}
