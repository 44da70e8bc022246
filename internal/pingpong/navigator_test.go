package pingpong

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/ledger"
)

func TestRecorderChains(t *testing.T) {
	l := ledger.New(nil)
	next := &navRecorder{}
	r := &Recorder{Ledger: l, Next: next}

	r.OnRoundStart()
	r.OnRoundEnd(ledger.Result{Name: "a", Result: 2})

	if next.started != 1 || len(next.ended) != 1 {
		t.Errorf("next navigator saw start=%d end=%d", next.started, len(next.ended))
	}
	if l.Len() != 1 {
		t.Errorf("ledger has %d entries, expected 1", l.Len())
	}
}

func TestLogNavigator(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	nav := LogNavigator{Logger: logger}

	nav.OnRoundStart()
	nav.OnRoundEnd(ledger.Result{Name: "ann", Result: 7})

	out := buf.String()
	if !strings.Contains(out, "round started") {
		t.Errorf("missing start line in %q", out)
	}
	if !strings.Contains(out, "player=ann") || !strings.Contains(out, "result=7") {
		t.Errorf("missing result fields in %q", out)
	}
}
