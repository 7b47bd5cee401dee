package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case " ", "w", "k", "up":
		return core.ActionJump, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// HoldTracker turns terminal key presses into held levels. Terminals only
// report key repeats, never releases, so a key counts as held until no
// repeat arrived for the hold window.
type HoldTracker struct {
	window   int64
	lastSeen map[core.Action]int64
	pressed  bool
}

// NewHoldTracker creates a tracker with the given hold window in ms.
func NewHoldTracker(windowMs int64) *HoldTracker {
	if windowMs <= 0 {
		windowMs = 1
	}
	return &HoldTracker{
		window:   windowMs,
		lastSeen: make(map[core.Action]int64),
	}
}

// Press records a key event for a movement or jump action at now.
// Other actions are ignored.
func (h *HoldTracker) Press(a core.Action, now int64) {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
	default:
		return
	}
	switch a {
	case core.ActionJump:
		if !h.held(a, now) {
			h.pressed = true
		}
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
	}
	h.lastSeen[a] = now
}

func (h *HoldTracker) held(a core.Action, now int64) bool {
	at, ok := h.lastSeen[a]
	return ok && now-at < h.window
}

// Poll returns the input snapshot for the tick at now. JumpPressed is true
// once per press, on the first poll after the jump key went down.
func (h *HoldTracker) Poll(now int64) core.InputState {
	in := core.InputState{
		Left:     h.held(core.ActionLeft, now),
		Right:    h.held(core.ActionRight, now),
		JumpHeld: h.held(core.ActionJump, now),
	}
	in.JumpPressed = h.pressed
	// A press that already lapsed still counts as a tap.
	if h.pressed && !in.JumpHeld {
		in.JumpHeld = true
	}
	h.pressed = false
	return in
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
	h.pressed = false
}

var _ core.InputProvider = (*HoldTracker)(nil)
