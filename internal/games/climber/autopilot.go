package climber

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

const (
	// walkStride is how many walked ticks pass between jump attempts.
	walkStride = 3
	// retryTicks is how long the bot stands still after a failed search.
	retryTicks = 30

	maxFlightTicks = 180
	shortHoldTicks = 6
	trackEpsilon   = 1e-6
)

// steerSwitches are the ticks into a jump at which the steering may change
// direction once.
var steerSwitches = [...]int{6, 12, 20, 30, 45}

// jumpScript is one way of taking a jump: hold for some ticks, steer one
// way, then possibly the other.
type jumpScript struct {
	hold       int
	first      int // Horizontal direction before switch
	switchTick int
	then       int
}

func (s jumpScript) input(tick int) core.InputState {
	in := core.InputState{JumpPressed: tick == 0, JumpHeld: tick < s.hold}
	dir := s.then
	if tick < s.switchTick {
		dir = s.first
	}
	steerDir(&in, dir)
	return in
}

func steerDir(in *core.InputState, dir int) {
	switch {
	case dir < 0:
		in.Left = true
	case dir > 0:
		in.Right = true
	}
}

// buildScripts lists full jumps (jump held until landing, so no release
// damping) and short hops.
func buildScripts() []jumpScript {
	var out []jumpScript
	for _, hold := range []int{maxFlightTicks, shortHoldTicks} {
		for _, dir := range []int{0, -1, 1} {
			out = append(out, jumpScript{hold: hold, first: dir, then: dir})
		}
		for _, first := range []int{-1, 0, 1} {
			for _, then := range []int{-1, 0, 1} {
				if first == then {
					continue
				}
				for _, sw := range steerSwitches {
					out = append(out, jumpScript{hold: hold, first: first, switchTick: sw, then: then})
				}
			}
		}
	}
	return out
}

// ghost is a copy of the player stepped ahead of the engine.
type ghost struct {
	p   Player
	tMs float64
	now int64
}

// Autopilot is a deterministic bot for headless runs. While standing it
// searches for an input script (walk a little, then jump with a steering
// schedule), replaying each candidate through the engine's own physics step
// against the frame's platforms, and plays back the first that lands on a
// higher safe platform. A script that drifts from its prediction is dropped.
type Autopilot struct {
	cfg      config.ClimberConfig
	ctrl     Controller
	resolver Resolver
	tickMs   int64
	scripts  []jumpScript

	plan   []core.InputState
	expect []core.Vec // Feet position after each planned tick
	next   core.Vec
	track  bool
	held   bool
	idle   int

	near     []PlatformPose
	surfaces []Surface
}

// NewAutopilot creates a bot for engines ticked every tickMs.
func NewAutopilot(cfg config.ClimberConfig, tickMs int64) *Autopilot {
	if tickMs <= 0 {
		tickMs = 1000 / 60
	}
	return &Autopilot{
		cfg:      cfg,
		ctrl:     NewController(cfg),
		resolver: NewResolver(cfg),
		tickMs:   tickMs,
		scripts:  buildScripts(),
	}
}

// Poll returns the input for the tick about to run at now.
func (a *Autopilot) Poll(f Frame, now int64) core.InputState {
	if f.State != StatePlaying {
		a.drop()
		a.idle = 0
		return a.send(core.InputState{})
	}
	if a.track && !a.onTrack(f) {
		a.drop()
	}

	if len(a.plan) == 0 && f.Player.Grounded {
		if a.idle > 0 {
			a.idle--
			return a.send(core.InputState{})
		}
		if !a.search(f, now) {
			a.idle = retryTicks
		}
	}
	if len(a.plan) == 0 {
		a.track = false
		return a.send(core.InputState{})
	}

	in := a.plan[0]
	a.next, a.track = a.expect[0], true
	a.plan, a.expect = a.plan[1:], a.expect[1:]
	return a.send(in)
}

func (a *Autopilot) send(in core.InputState) core.InputState {
	a.held = in.JumpHeld
	return in
}

func (a *Autopilot) drop() {
	a.plan, a.expect = nil, nil
	a.track = false
}

func (a *Autopilot) onTrack(f Frame) bool {
	return math.Abs(f.Player.X-a.next.X) < trackEpsilon && math.Abs(f.Player.Y-a.next.Y) < trackEpsilon
}

// search fills the plan from a standing start. Jumping on the spot is tried
// first, then walking left, right or waiting, nearest first.
func (a *Autopilot) search(f Frame, now int64) bool {
	t := config.ComputeTunables(a.cfg, f.Level)
	a.gather(f, t)

	origin := ghost{
		p: Player{
			Pos:        core.Vec{X: f.Player.X, Y: f.Player.Y},
			FacingLeft: f.Player.FacingLeft,
			Grounded:   true,
			Phase:      PhaseGrounded,
			Jump: JumpState{
				LastGroundedTime:  noTime,
				LastJumpPressTime: noTime,
				wasHeld:           a.held,
			},
		},
		tMs: f.ElapsedMs,
		now: now,
	}
	baseY := f.Player.Y

	if a.jumpFrom(origin, baseY, t, nil, nil) {
		return true
	}

	type walker struct {
		dir   int
		g     ghost
		feet  []core.Vec
		done  bool
	}
	walkers := []*walker{{dir: -1, g: origin}, {dir: 1, g: origin}}
	if a.anyMoving() {
		walkers = append(walkers, &walker{dir: 0, g: origin})
	}

	limit := a.walkLimit(t)
	for n := 1; n <= limit; n++ {
		alive := false
		for _, w := range walkers {
			if w.done {
				continue
			}
			var in core.InputState
			steerDir(&in, w.dir)
			x := w.g.p.Pos.X
			if a.advance(&w.g, in, t) || !w.g.p.Grounded || w.g.p.Pos.Y != baseY {
				w.done = true
				continue
			}
			if w.dir != 0 && math.Abs(w.g.p.Pos.X-x) < trackEpsilon {
				w.done = true
				continue
			}
			w.feet = append(w.feet, w.g.p.Pos)
			alive = true
			if n%walkStride != 0 {
				continue
			}
			walk := make([]core.InputState, n)
			for i := range walk {
				steerDir(&walk[i], w.dir)
			}
			if a.jumpFrom(w.g, baseY, t, walk, w.feet) {
				return true
			}
		}
		if !alive {
			break
		}
	}
	return false
}

// jumpFrom tries every jump script from g. On success the plan is set to
// the walk prefix followed by the script.
func (a *Autopilot) jumpFrom(g ghost, baseY float64, t config.Tunables, walk []core.InputState, walkFeet []core.Vec) bool {
	feet := make([]core.Vec, 0, 64)
	for _, s := range a.scripts {
		c := g
		feet = feet[:0]
		landed := false
		for tick := range maxFlightTicks {
			if a.advance(&c, s.input(tick), t) {
				break
			}
			feet = append(feet, c.p.Pos)
			if c.p.Grounded {
				landed = c.p.Pos.Y < baseY-1
				break
			}
			if c.p.Vel.Y > 0 && c.p.Pos.Y > baseY {
				break
			}
		}
		if !landed {
			continue
		}

		a.plan = append(append([]core.InputState(nil), walk...), make([]core.InputState, len(feet))...)
		for i := range feet {
			a.plan[len(walk)+i] = s.input(i)
		}
		a.expect = append(append([]core.Vec(nil), walkFeet...), feet...)
		return true
	}
	return false
}

// advance runs one engine tick on the ghost, sub-stepping like Engine.Tick.
// It reports whether the ghost touched a danger pad.
func (a *Autopilot) advance(g *ghost, in core.InputState, t config.Tunables) bool {
	step := a.cfg.Physics.MaxStepMs
	if step <= 0 {
		step = a.tickMs
	}
	for remaining := a.tickMs; remaining > 0; {
		d := min(remaining, step)
		prev := g.tMs
		g.tMs += float64(d)
		res := physicsStep(a.ctrl, a.resolver, &g.p, in, g.now, float64(d), t, a.surfacesAt(prev, g.tMs))
		if res.Danger {
			return true
		}
		in.JumpPressed = false
		remaining -= d
	}
	g.now += a.tickMs
	return false
}

// gather keeps the platforms a jump from the current feet could touch, in
// frame order.
func (a *Autopilot) gather(f Frame, t config.Tunables) {
	top := f.Player.Y - 3*t.PlatformGap
	bottom := f.Player.Y + t.PlatformGap
	a.near = a.near[:0]
	for _, p := range f.Platforms {
		if p.Box.Top() >= top && p.Box.Top() <= bottom {
			a.near = append(a.near, p)
		}
	}
}

func (a *Autopilot) anyMoving() bool {
	for _, p := range a.near {
		if p.Motion.Moving() {
			return true
		}
	}
	return false
}

func (a *Autopilot) surfacesAt(prevMs, tMs float64) []Surface {
	a.surfaces = a.surfaces[:0]
	for _, p := range a.near {
		s := Surface{Box: p.At(tMs), Kind: p.Kind}
		if p.Motion.Moving() {
			s.DX = (p.BaseX + p.Motion.Offset(tMs)) - (p.BaseX + p.Motion.Offset(prevMs))
		}
		a.surfaces = append(a.surfaces, s)
	}
	return a.surfaces
}

// walkLimit is enough ticks to cross the world once.
func (a *Autopilot) walkLimit(t config.Tunables) int {
	perTick := t.PlayerSpeed * float64(a.tickMs) / 1000
	if perTick <= 0 {
		return 0
	}
	return int(math.Ceil(a.cfg.World.Width / perTick))
}
