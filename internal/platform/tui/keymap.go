package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/engine"
)

// Action represents a semantic game action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart // Space or R - restart after game over
	ActionPause   // P - stop the ticker without touching engine state
	ActionSound   // M - toggle the sound cue flag
	ActionBack    // B, Escape - back to menu
	ActionQuit    // Q, Ctrl+C
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings:
// arrow keys and WASD steer, Space restarts.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "up", "w":
		return ActionUp
	case "down", "s":
		return ActionDown
	case "left", "a":
		return ActionLeft
	case "right", "d":
		return ActionRight
	case " ", "r":
		return ActionRestart
	case "p":
		return ActionPause
	case "m":
		return ActionSound
	case "b", "esc":
		return ActionBack
	}
	return ActionNone
}

// Direction converts a steering action to an engine direction.
// The second return value is false for non-steering actions.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.DirUp, true
	case ActionDown:
		return engine.DirDown, true
	case ActionLeft:
		return engine.DirLeft, true
	case ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
