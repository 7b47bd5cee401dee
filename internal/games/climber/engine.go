// Package climber implements the endless vertical climber simulation: row
// generation, the jump controller, collision, world lifecycle and game over.
// It is renderer-agnostic; hosts drive it through Tick and Restart.
package climber

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// PlayerPose is the read-only view of the player a host renders.
type PlayerPose struct {
	X, Y       float64 // Center x, feet y
	FacingLeft bool
	Grounded   bool
	Phase      JumpPhase
}

// TickResult is returned by every Tick.
type TickResult struct {
	Player        PlayerPose
	CameraTargetY float64
	CameraTop     float64
	Score         int
	Level         int
	IsGameOver    bool
	State         LifeState
}

// RunStats summarizes the current session for the run journal.
type RunStats struct {
	Seed      int64
	Score     int
	Level     int
	Rows      int
	Cause     Cause
	ElapsedMs int64
	Ticks     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRestarter sets who is told when a dead session is ready to restart.
func WithRestarter(r Restarter) Option {
	return func(e *Engine) { e.restarter = r }
}

// WithRNG replaces the seeded generator factory.
func WithRNG(factory func(seed int64) RNG) Option {
	return func(e *Engine) {
		if factory != nil {
			e.newRNG = factory
		}
	}
}

// Engine owns one session. It is not safe for concurrent use; each host
// (a terminal, an SSH session, a headless run) owns its own engine.
type Engine struct {
	cfg       config.ClimberConfig
	logger    *log.Logger
	restarter Restarter
	newRNG    func(seed int64) RNG

	seed     int64
	rng      RNG
	world    *World
	player   Player
	ctrl     Controller
	resolver Resolver
	over     *GameOver
	ticks    int
}

// NewEngine creates an engine with a session already running.
func NewEngine(cfg config.ClimberConfig, seed int64, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		logger: log.New(io.Discard),
		newRNG: NewRNG,
		seed:   seed,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.ctrl = NewController(cfg)
	e.resolver = NewResolver(cfg)
	e.over = NewGameOver(cfg.GameOver.SettleDelayMs, e.restarter)
	e.rng = e.newRNG(seed)
	e.world = NewWorld(cfg, e.rng, e.logger)
	e.spawn()
	return e
}

func (e *Engine) spawn() {
	start := e.world.StartPosition()
	e.player = NewPlayer(start.X, start.Y)
	e.ticks = 0
}

// Tick advances the session by deltaMs. Deltas longer than the configured
// max step are split into sub-steps; JumpPressed applies to the first only.
// After game over the simulation is frozen and only the restart timer runs.
func (e *Engine) Tick(deltaMs int64, in core.InputState, now int64) TickResult {
	if deltaMs > 0 && !e.over.Over() {
		step := e.cfg.Physics.MaxStepMs
		for remaining := deltaMs; remaining > 0 && !e.over.Over(); {
			d := min(remaining, step)
			e.step(float64(d), in, now)
			in.JumpPressed = false
			remaining -= d
		}
		e.ticks++
	}
	e.over.Update(now)
	return e.result()
}

func (e *Engine) step(dtMs float64, in core.InputState, now int64) {
	e.world.Advance(dtMs)
	t := e.world.Tunables()

	res := physicsStep(e.ctrl, e.resolver, &e.player, in, now, dtMs, t, e.world.Surfaces())
	if res.Danger {
		e.die(CauseDanger, now)
		return
	}

	ev := e.world.Update(e.player.Pos, e.player.Grounded)
	if ev.RowsAdded > 0 {
		e.logger.Debug("rows generated", "added", ev.RowsAdded, "total", e.world.Rows(), "pruned", ev.Pruned)
	}
	if ev.FellOut {
		e.die(CauseFall, now)
	}
}

// physicsStep moves the player through one step: input, gravity, collision
// and ground contact. The autopilot replays it to test jumps before taking them.
func physicsStep(ctrl Controller, r Resolver, p *Player, in core.InputState, now int64, dtMs float64, t config.Tunables, surfaces []Surface) Resolution {
	ctrl.Update(p, in, now, dtMs, t)
	ctrl.ApplyGravity(p, dtMs)

	res := r.Resolve(p, surfaces, dtMs)
	ctrl.Land(p, res.Grounded)
	if res.HeadBump {
		ctrl.EndThrust(p)
	}
	return res
}

func (e *Engine) die(cause Cause, now int64) {
	if !e.over.Trigger(cause, now) {
		return
	}
	e.ctrl.Freeze(&e.player)
	e.logger.Info("game over",
		"cause", cause,
		"score", e.world.Score(),
		"level", e.world.Level(),
		"rows", e.world.Rows(),
	)
}

// Quit ends the running session as if the player gave up.
func (e *Engine) Quit(now int64) {
	e.die(CauseQuit, now)
}

// Restart starts a fresh session with the engine's current seed. A pending
// restart request from the previous session is cancelled.
func (e *Engine) Restart() {
	e.RestartWithSeed(e.seed)
}

// RestartWithSeed starts a fresh session with a new seed.
func (e *Engine) RestartWithSeed(seed int64) {
	e.seed = seed
	e.over.Reset()
	e.rng = e.newRNG(seed)
	e.world.Reset(e.rng)
	e.spawn()
	e.logger.Debug("session restarted", "seed", seed)
}

func (e *Engine) result() TickResult {
	return TickResult{
		Player:        e.pose(),
		CameraTargetY: e.world.CameraTargetY(),
		CameraTop:     e.world.CameraTop(),
		Score:         e.world.Score(),
		Level:         e.world.Level(),
		IsGameOver:    e.over.Over(),
		State:         e.over.State(),
	}
}

func (e *Engine) pose() PlayerPose {
	return PlayerPose{
		X:          e.player.Pos.X,
		Y:          e.player.Pos.Y,
		FacingLeft: e.player.FacingLeft,
		Grounded:   e.player.Grounded,
		Phase:      e.player.Phase,
	}
}

// Stats returns the current session summary.
func (e *Engine) Stats() RunStats {
	return RunStats{
		Seed:      e.seed,
		Score:     e.world.Score(),
		Level:     e.world.Level(),
		Rows:      e.world.Rows(),
		Cause:     e.over.Cause(),
		ElapsedMs: int64(e.world.ElapsedMs()),
		Ticks:     e.ticks,
	}
}

// Seed returns the seed of the current session.
func (e *Engine) Seed() int64 { return e.seed }

// State returns the game-over state.
func (e *Engine) State() LifeState { return e.over.State() }

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.ClimberConfig { return e.cfg }

// PlatformCount returns the number of live platforms.
func (e *Engine) PlatformCount() int { return e.world.PlatformCount() }
