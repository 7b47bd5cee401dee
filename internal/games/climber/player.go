package climber

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// JumpPhase is the player's position in the jump state machine.
type JumpPhase int

const (
	PhaseGrounded JumpPhase = iota
	PhaseThrust             // Jump held, velocity ramping toward max
	PhaseCoasting           // Airborne under gravity only
	PhaseFalling            // Dead; control and gravity are frozen
)

// String returns a human-readable name for the phase.
func (p JumpPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseThrust:
		return "thrust"
	case PhaseCoasting:
		return "coasting"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// noTime marks a cleared timestamp.
const noTime int64 = math.MinInt64 / 4

// within reports whether at is set and now-at is inside the window.
func within(now, at, window int64) bool {
	return at != noTime && now-at < window
}

// JumpState holds the timers that make jumping forgiving.
type JumpState struct {
	JumpTimer         float64 // ms of hold-extension used in the current jump
	LastGroundedTime  int64
	LastJumpPressTime int64
	wasHeld           bool
}

// Player is the single avatar. Pos.X is the center, Pos.Y the feet.
type Player struct {
	Pos        core.Vec
	Vel        core.Vec
	FacingLeft bool
	Grounded   bool
	Phase      JumpPhase
	Jump       JumpState
}

// NewPlayer creates a player standing at (x, feetY).
func NewPlayer(x, feetY float64) Player {
	return Player{
		Pos:      core.Vec{X: x, Y: feetY},
		Grounded: true,
		Phase:    PhaseGrounded,
		Jump: JumpState{
			LastGroundedTime:  noTime,
			LastJumpPressTime: noTime,
		},
	}
}

// Box returns the player's collision box for a given size.
func (p Player) Box(w, h float64) core.Box {
	return core.BoxAround(p.Pos.X, p.Pos.Y, w, h)
}

// Dead reports whether the player is frozen by game over.
func (p Player) Dead() bool {
	return p.Phase == PhaseFalling
}

// Controller turns input into player velocity.
type Controller struct {
	jump          config.JumpConfig
	physics       config.PhysicsConfig
	dragThreshold float64
}

// NewController creates a controller from the config.
func NewController(cfg config.ClimberConfig) Controller {
	return Controller{
		jump:          cfg.Jump,
		physics:       cfg.Physics,
		dragThreshold: cfg.Input.DragThreshold,
	}
}

// Update applies one tick of input. It reports whether the player left the
// ground this tick.
func (c Controller) Update(p *Player, in core.InputState, now int64, dtMs float64, t config.Tunables) bool {
	if p.Dead() {
		return false
	}

	switch in.Horizontal(c.dragThreshold) {
	case -1:
		p.Vel.X = -t.PlayerSpeed
		p.FacingLeft = true
	case 1:
		p.Vel.X = t.PlayerSpeed
		p.FacingLeft = false
	default:
		p.Vel.X = 0
	}

	js := &p.Jump
	if p.Grounded {
		js.LastGroundedTime = now
	}
	if in.JumpPressed {
		js.LastJumpPressTime = now
	}

	released := js.wasHeld && !in.JumpHeld
	js.wasHeld = in.JumpHeld
	maxHold := float64(c.jump.MaxJumpTimeMs)

	coyote := in.JumpPressed && within(now, js.LastGroundedTime, c.jump.CoyoteTimeMs)
	buffered := p.Grounded && within(now, js.LastJumpPressTime, c.jump.BufferTimeMs)

	switch {
	case coyote || buffered:
		p.Vel.Y = t.JumpVelocity
		p.Grounded = false
		p.Phase = PhaseThrust
		js.JumpTimer = 0
		js.LastGroundedTime = noTime
		js.LastJumpPressTime = noTime
		return true

	case in.JumpHeld && p.Phase == PhaseThrust && js.JumpTimer < maxHold:
		js.JumpTimer = min(js.JumpTimer+dtMs, maxHold)
		p.Vel.Y = core.Lerp(t.JumpVelocity, t.MaxJumpVelocity, js.JumpTimer/maxHold)
		if js.JumpTimer >= maxHold {
			p.Phase = PhaseCoasting
		}

	case released && p.Vel.Y < 0 && !p.Grounded:
		p.Vel.Y *= c.jump.ReleaseDamping
		js.JumpTimer = maxHold
		p.Phase = PhaseCoasting
	}

	if !p.Grounded && p.Phase == PhaseGrounded {
		p.Phase = PhaseCoasting
	}
	return false
}

// ApplyGravity accelerates the player downward, capped at the fall speed.
func (c Controller) ApplyGravity(p *Player, dtMs float64) {
	if p.Dead() {
		return
	}
	p.Vel.Y = min(p.Vel.Y+c.physics.Gravity*dtMs/1000, c.physics.MaxFallSpeed)
}

// EndThrust stops hold-extension for the current jump.
func (c Controller) EndThrust(p *Player) {
	p.Jump.JumpTimer = float64(c.jump.MaxJumpTimeMs)
	if p.Phase == PhaseThrust {
		p.Phase = PhaseCoasting
	}
}

// Land records ground contact from the resolver.
func (c Controller) Land(p *Player, grounded bool) {
	p.Grounded = grounded
	switch {
	case p.Dead():
	case grounded:
		p.Phase = PhaseGrounded
	case p.Phase == PhaseGrounded:
		p.Phase = PhaseCoasting
	}
}

// Freeze stops all motion for the death sequence.
func (c Controller) Freeze(p *Player) {
	p.Vel = core.Vec{}
	p.Phase = PhaseFalling
}
