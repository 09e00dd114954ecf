package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov87/snakepit/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to engine actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a steering action.
// Returns the action, whether a steering key was pressed at all, and
// whether the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action engine.Action, ok bool, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return engine.Idle, false, true
	}

	switch key {
	case "w", "up", "k":
		return engine.Up, true, false
	case "s", "down", "j":
		return engine.Down, true, false
	case "a", "left", "h":
		return engine.Left, true, false
	case "d", "right", "l":
		return engine.Right, true, false
	}

	return engine.Idle, false, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
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
	}

	return MenuActionNone
}
