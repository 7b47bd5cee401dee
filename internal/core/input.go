package core

// Action is a semantic intent decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump    // Hold for height
	ActionPause   // Toggle pause
	ActionRestart // Only after game over
	ActionQuit
)

var actionNames = [...]string{"None", "Left", "Right", "Jump", "Pause", "Restart", "Quit"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputState is the per-tick input snapshot consumed by the simulation.
// Held flags are levels; JumpPressed is an edge that is true only on the
// tick the jump key went down.
type InputState struct {
	Left        bool
	Right       bool
	JumpHeld    bool
	JumpPressed bool

	// DragDX is the horizontal drag delta of a touch gesture this tick.
	DragDX float64
}

// Horizontal resolves the horizontal intent to -1, 0 or +1.
// Keys win over drag; a drag counts only beyond threshold.
func (s InputState) Horizontal(dragThreshold float64) int {
	switch {
	case s.Left && !s.Right:
		return -1
	case s.Right && !s.Left:
		return 1
	case s.Left && s.Right:
		return 0
	}
	switch {
	case s.DragDX <= -dragThreshold && dragThreshold > 0:
		return -1
	case s.DragDX >= dragThreshold && dragThreshold > 0:
		return 1
	}
	return 0
}

// InputProvider supplies edge-triggered input state once per tick.
type InputProvider interface {
	Poll(nowMs int64) InputState
}

// InputFrame is the set of one-shot host actions (pause, restart) waiting
// for the next tick.
type InputFrame uint32

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return 0 }

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) { *f |= 1 << uint(a) }

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool { return f&(1<<uint(a)) != 0 }

// Clear drops every pending action.
func (f *InputFrame) Clear() { *f = 0 }
