package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

func TestMapGameKey(t *testing.T) {
	g := config.Game{Paddle: config.Paddle{LeftKey: "a", RightKey: "d"}}
	keys := NewKeyMap(g)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft},
		{"right key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight},
		{"esc abandons", keyEsc, core.ActionBack},
		{"arrow not bound", keyLeft, core.ActionNone},
		// Ctrl+C is handled as an abort before round keys are mapped
		{"ctrl+c", keyCtrlC, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapGameKey(tc.msg); got != tc.want {
				t.Errorf("MapGameKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
