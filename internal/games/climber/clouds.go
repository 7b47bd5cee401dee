package climber

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// Cloud is background decoration. It never collides.
type Cloud struct {
	BaseX   float64
	Y       float64
	Scale   float64
	Variant int // 1..3
	Drift   Motion
}

// X returns the cloud's center at time tMs.
func (c Cloud) X(tMs float64) float64 {
	return c.BaseX + c.Drift.Offset(tMs)
}

// spawnCloud places a cloud above refY. A drift of d units over a period of
// p ms swings the cloud d units either way and back in 2p.
func spawnCloud(cfg config.ClimberConfig, rng RNG, refY float64) Cloud {
	cc := cfg.Clouds
	x := Between(rng, 0, int(cfg.World.Width))
	y := refY - cc.SpawnAbove - float64(Between(rng, 0, cc.SpawnJitter))
	variant := Between(rng, 1, 3)
	scale := FloatBetween(rng, cc.MinScale, cc.MaxScale)
	drift := Between(rng, -cc.MaxDrift, cc.MaxDrift)
	period := Between(rng, cc.MinPeriodMs, cc.MaxPeriodMs)

	phase := 0.0
	if drift < 0 {
		phase = math.Pi
	}
	return Cloud{
		BaseX:   float64(x),
		Y:       y,
		Scale:   scale,
		Variant: variant,
		Drift: Motion{
			Amplitude: math.Abs(float64(drift)),
			PeriodMs:  float64(2 * period),
			Phase:     phase,
		},
	}
}
