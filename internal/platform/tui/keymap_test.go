package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/engine"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want Action
	}{
		{"up", ActionUp},
		{"w", ActionUp},
		{"down", ActionDown},
		{"s", ActionDown},
		{"left", ActionLeft},
		{"a", ActionLeft},
		{"right", ActionRight},
		{"d", ActionRight},
		{" ", ActionRestart},
		{"r", ActionRestart},
		{"p", ActionPause},
		{"m", ActionSound},
		{"b", ActionBack},
		{"esc", ActionBack},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"x", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   engine.Direction
		ok     bool
	}{
		{ActionUp, engine.DirUp, true},
		{ActionDown, engine.DirDown, true},
		{ActionLeft, engine.DirLeft, true},
		{ActionRight, engine.DirRight, true},
		{ActionPause, 0, false},
		{ActionQuit, 0, false},
		{ActionNone, 0, false},
	}

	for _, tt := range tests {
		d, ok := tt.action.Direction()
		if ok != tt.ok {
			t.Errorf("Direction(%v) ok = %v, want %v", tt.action, ok, tt.ok)
			continue
		}
		if ok && d != tt.want {
			t.Errorf("Direction(%v) = %v, want %v", tt.action, d, tt.want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
