package climber

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// envelopeSafety shrinks the ideal jump envelope so generated rows stay
// reachable with imperfect timing.
const envelopeSafety = 0.85

// Envelope bounds how far a full-strength jump carries the player.
type Envelope struct {
	Rise  float64 // Peak height above the takeoff surface
	Reach float64 // Horizontal travel when landing PlatformGap higher
}

// JumpEnvelope estimates the jump envelope for a set of tunables.
func JumpEnvelope(cfg config.ClimberConfig, t config.Tunables) Envelope {
	g := cfg.Physics.Gravity
	thrust := float64(cfg.Jump.MaxJumpTimeMs) / 1000
	v0, v1 := -t.JumpVelocity, -t.MaxJumpVelocity

	rise := ((v0+v1)/2*thrust + v1*v1/(2*g)) * envelopeSafety
	fall := rise - t.PlatformGap
	if fall < 0 {
		return Envelope{Rise: rise}
	}
	air := thrust + v1/g + math.Sqrt(2*fall/g)
	return Envelope{Rise: rise, Reach: t.PlayerSpeed * air * envelopeSafety}
}

type span struct {
	l, r float64
}

func spanOf(p Platform) span { return span{p.Left(), p.Right()} }

// clip cuts a span to the part inside [0, width]. Long platforms near a wall
// stick out of the world; the player can never stand on that part.
func (s span) clip(width float64) span {
	return span{max(s.l, 0), min(s.r, width)}
}

// reachableFrom reports whether a platform spanning to is reachable from any
// of the supports. A target that fully covers a support is not: the player
// would hit its underside.
func reachableFrom(supports []span, to span, env Envelope, gap, margin float64) bool {
	if len(supports) == 0 {
		return true
	}
	if gap > env.Rise {
		return false
	}
	for _, s := range supports {
		if to.l < s.l && to.r > s.r {
			continue
		}
		if core.SpanGap(s.l, s.r, to.l, to.r) <= env.Reach-margin {
			return true
		}
	}
	return false
}

// Generator produces rows of two platforms. It remembers the previous row's
// safe spans and the last danger line so constraints hold across calls.
type Generator struct {
	cfg    config.ClimberConfig
	logger *log.Logger

	supports   []span
	lastDanger int
	hasDanger  bool
	fallbacks  int
}

// NewGenerator creates a generator. A nil logger discards output.
func NewGenerator(cfg config.ClimberConfig, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Reset forgets all history. The next row must be reachable from supports.
func (g *Generator) Reset(supports ...core.Box) {
	g.supports = g.supports[:0]
	for _, b := range supports {
		g.supports = append(g.supports, span{b.Left(), b.Right()}.clip(g.cfg.World.Width))
	}
	g.lastDanger = 0
	g.hasDanger = false
	g.fallbacks = 0
}

// Fallbacks returns how many rows were placed by the thirds split.
func (g *Generator) Fallbacks() int {
	return g.fallbacks
}

// GenerateRow places the row one gap above prevLineY.
//
// Draw order per attempt: size class and width for the left slot, then the
// right slot, then x for the left and right slots. After a valid attempt: the
// danger roll and slot (only when eligible), then per slot the motion roll
// followed by period and phase (only when the level enables motion).
func (g *Generator) GenerateRow(prevLineY float64, line int, t config.Tunables, rng RNG) Row {
	pc := g.cfg.Platforms
	y := prevLineY - t.PlatformGap
	env := JumpEnvelope(g.cfg, t)

	worldW := int(g.cfg.World.Width)
	center := worldW / 2
	minX := pc.Short.Min / 2

	row := Row{Line: line, Y: y}
	var reach [2]bool
	placed := false
	for range pc.RetryBudget {
		w1 := g.pickWidth(t, rng)
		w2 := g.pickWidth(t, rng)
		x1 := Between(rng, minX, center-w1/2)
		x2 := Between(rng, center+(w2+1)/2, worldW-minX)

		row.Platforms = [2]Platform{
			g.platform(float64(x1), y, float64(w1), line),
			g.platform(float64(x2), y, float64(w2), line),
		}
		if !g.valid(row) {
			continue
		}
		for i, p := range row.Platforms {
			reach[i] = reachableFrom(g.supports, spanOf(p).clip(g.cfg.World.Width), env, t.PlatformGap, t.MotionAmplitude)
		}
		if reach[0] || reach[1] {
			placed = true
			break
		}
	}

	if !placed {
		row = g.fallbackRow(y, line)
		reach = [2]bool{true, true}
		g.fallbacks++
		g.logger.Debug("row placed by fallback split", "line", line, "retries", pc.RetryBudget)
	}

	if !row.Fallback && g.dangerEligible(line) && Chance(rng, t.DangerPadChance) {
		slot := rng.Intn(2)
		// The surviving safe platform must be the reachable one
		if !reach[1-slot] {
			slot = 1 - slot
		}
		row.Platforms[slot].Kind = KindDanger
		row.Platforms[slot].Variant = 0
		g.lastDanger = line
		g.hasDanger = true
	}

	if !row.Fallback && t.MotionChance > 0 {
		g.addMotion(&row, t, rng)
	}

	g.supports = g.supports[:0]
	for _, p := range row.Platforms {
		if p.Kind == KindSafe {
			g.supports = append(g.supports, spanOf(p).clip(g.cfg.World.Width))
		}
	}
	return row
}

func (g *Generator) platform(x, y, w float64, line int) Platform {
	return Platform{
		BaseX:   x,
		Y:       y,
		Width:   w,
		Height:  g.cfg.Platforms.Height,
		Kind:    KindSafe,
		Variant: 1 + (line+int(x))%3,
		Line:    line,
	}
}

// pickWidth selects a size class by weight, then a width inside it.
func (g *Generator) pickWidth(t config.Tunables, rng RNG) int {
	pc := g.cfg.Platforms
	r := pc.Medium
	u := rng.Float64()
	switch {
	case u < t.ShortWeight:
		r = pc.Short
	case u < t.ShortWeight+t.LongWeight:
		r = pc.Long
	}
	return Between(rng, r.Min, r.Max)
}

func (g *Generator) valid(row Row) bool {
	a, b := row.Platforms[0], row.Platforms[1]
	if math.Abs(b.BaseX-a.BaseX) < g.cfg.Platforms.MinSeparation {
		return false
	}
	return row.Gap() >= g.cfg.Platforms.MinGap
}

func (g *Generator) dangerEligible(line int) bool {
	if line < g.cfg.Platforms.SafeRows {
		return false
	}
	return !g.hasDanger || line-g.lastDanger >= g.cfg.Platforms.DangerCooldown
}

// fallbackRow splits the world into thirds and centers a safe platform in the
// outer two.
func (g *Generator) fallbackRow(y float64, line int) Row {
	w := g.cfg.World.Width
	width := min(w/3, float64(g.cfg.Platforms.Medium.Max))
	return Row{
		Line: line,
		Y:    y,
		Platforms: [2]Platform{
			g.platform(w/6, y, width, line),
			g.platform(w*5/6, y, width, line),
		},
		Fallback: true,
	}
}

// addMotion gives platforms a horizontal oscillation. The amplitude is capped
// so that both platforms swinging toward each other still leave MinGap.
func (g *Generator) addMotion(row *Row, t config.Tunables, rng RNG) {
	mc := g.cfg.Motion
	amp := min(t.MotionAmplitude, (row.Gap()-g.cfg.Platforms.MinGap)/2)
	for i := range row.Platforms {
		if !Chance(rng, t.MotionChance) || amp < mc.MinAmplitude {
			continue
		}
		row.Platforms[i].Motion = Motion{
			Amplitude: amp,
			PeriodMs:  float64(Between(rng, mc.MinPeriodMs, mc.MaxPeriodMs)),
			Phase:     rng.Float64() * 2 * math.Pi,
		}
	}
}
