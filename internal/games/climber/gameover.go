package climber

// LifeState is the session's position in the game-over state machine.
type LifeState int

const (
	StatePlaying LifeState = iota
	StateDying
	StateAwaitingRestart
)

// String returns a human-readable name for the state.
func (s LifeState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateAwaitingRestart:
		return "awaiting_restart"
	default:
		return "unknown"
	}
}

// Cause records why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseDanger
	CauseFall
	CauseQuit
)

// String returns the cause as stored in the run journal.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseDanger:
		return "danger"
	case CauseFall:
		return "fall"
	case CauseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Restarter is notified once per death when the settle delay has passed.
type Restarter interface {
	RequestRestart()
}

// RestartFunc adapts a function to Restarter.
type RestartFunc func()

// RequestRestart calls f.
func (f RestartFunc) RequestRestart() { f() }

// GameOver drives Playing -> Dying -> AwaitingRestart. The one-shot restart
// timer is advanced by the tick clock, so a Reset cancels it outright.
type GameOver struct {
	settleMs  int64
	restarter Restarter

	state    LifeState
	cause    Cause
	diedAt   int64
	deadline int64
	armed    bool
	fired    int
}

// NewGameOver creates a machine in the Playing state. r may be nil.
func NewGameOver(settleMs int64, r Restarter) *GameOver {
	return &GameOver{settleMs: settleMs, restarter: r}
}

// Trigger enters Dying. Only the first trigger of a session counts; later
// ones return false and schedule nothing.
func (g *GameOver) Trigger(cause Cause, now int64) bool {
	if g.state != StatePlaying {
		return false
	}
	g.state = StateDying
	g.cause = cause
	g.diedAt = now
	g.deadline = now + g.settleMs
	g.armed = true
	return true
}

// Update fires the restart request once the settle delay has elapsed.
func (g *GameOver) Update(now int64) {
	if !g.armed || now < g.deadline {
		return
	}
	g.armed = false
	g.state = StateAwaitingRestart
	g.fired++
	if g.restarter != nil {
		g.restarter.RequestRestart()
	}
}

// Reset returns to Playing and cancels a pending restart request.
func (g *GameOver) Reset() {
	g.state = StatePlaying
	g.cause = CauseNone
	g.armed = false
	g.diedAt = 0
	g.deadline = 0
}

// State returns the current state.
func (g *GameOver) State() LifeState { return g.state }

// Cause returns why the session ended, or CauseNone while playing.
func (g *GameOver) Cause() Cause { return g.cause }

// Over reports whether the session has ended.
func (g *GameOver) Over() bool { return g.state != StatePlaying }

// DiedAt returns the tick time of the trigger.
func (g *GameOver) DiedAt() int64 { return g.diedAt }

// Fired returns how many restart requests were issued.
func (g *GameOver) Fired() int { return g.fired }
