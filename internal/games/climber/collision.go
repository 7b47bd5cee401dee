package climber

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Surface is a read-only collision fact for one platform this tick.
type Surface struct {
	ID   core.ID
	Box  core.Box
	DX   float64 // Horizontal displacement since the previous tick
	Kind Kind
}

// Resolution describes what the resolver found in one step.
type Resolution struct {
	Grounded bool
	Ground   core.ID // Surface stood on when Grounded
	HeadBump bool
	Wall     bool
	Danger   bool
	Carry    float64 // Horizontal carry applied by a moving support
}

// Resolver moves the player through the platforms one axis at a time.
type Resolver struct {
	worldW    float64
	tolerance float64
	w, h      float64
}

// NewResolver creates a resolver from the config.
func NewResolver(cfg config.ClimberConfig) Resolver {
	return Resolver{
		worldW:    cfg.World.Width,
		tolerance: cfg.Platforms.ContactTolerance,
		w:         cfg.Player.Width,
		h:         cfg.Player.Height,
	}
}

// Resolve integrates the player's velocity over dtMs against the surfaces.
// It never leaves the player overlapping a safe platform and never leaves a
// negative vertical velocity after a landing.
func (r Resolver) Resolve(p *Player, surfaces []Surface, dtMs float64) Resolution {
	var res Resolution
	if p.Dead() {
		return res
	}
	dt := dtMs / 1000
	prev := p.Box(r.w, r.h)

	r.resolveX(p, prev, surfaces, dt, &res)
	r.resolveY(p, prev, surfaces, dt, &res)

	if res.Grounded && res.Carry != 0 {
		p.Pos.X = r.clampX(p.Pos.X + res.Carry)
	}

	// Any remaining overlap with a danger pad counts, whatever the direction
	box := p.Box(r.w, r.h)
	for _, s := range surfaces {
		if s.Kind == KindDanger && box.Intersects(s.Box) {
			res.Danger = true
		}
	}
	return res
}

func (r Resolver) resolveX(p *Player, prev core.Box, surfaces []Surface, dt float64, res *Resolution) {
	nx := p.Pos.X + p.Vel.X*dt
	box := core.BoxAround(nx, p.Pos.Y, r.w, r.h)

	for _, s := range surfaces {
		if !box.Intersects(s.Box) {
			continue
		}
		if s.Kind == KindDanger {
			res.Danger = true
			continue
		}
		// Standing on or hanging under the surface is vertical contact
		if prev.Bottom() <= s.Box.Top()+r.tolerance || prev.Top() >= s.Box.Bottom()-r.tolerance {
			continue
		}
		switch {
		case p.Vel.X > 0:
			nx = s.Box.Left() - r.w/2
		case p.Vel.X < 0:
			nx = s.Box.Right() + r.w/2
		case nx < s.Box.CenterX():
			nx = s.Box.Left() - r.w/2
		default:
			nx = s.Box.Right() + r.w/2
		}
		p.Vel.X = 0
		res.Wall = true
		break
	}

	clamped := r.clampX(nx)
	if clamped != nx {
		p.Vel.X = 0
		res.Wall = true
	}
	p.Pos.X = clamped
}

func (r Resolver) resolveY(p *Player, prev core.Box, surfaces []Surface, dt float64, res *Resolution) {
	ny := p.Pos.Y + p.Vel.Y*dt
	moved := core.BoxAround(p.Pos.X, ny, r.w, r.h)

	if p.Vel.Y >= 0 {
		best := -1
		bestTop := math.Inf(1)
		for i, s := range surfaces {
			top := s.Box.Top()
			if !moved.OverlapsX(s.Box) || prev.Bottom() > top+r.tolerance || ny < top {
				continue
			}
			if top < bestTop {
				best, bestTop = i, top
			}
		}
		if best < 0 {
			p.Pos.Y = ny
			return
		}
		s := surfaces[best]
		if s.Kind == KindDanger {
			res.Danger = true
			p.Pos.Y = ny
			return
		}
		p.Pos.Y = bestTop
		p.Vel.Y = 0
		res.Grounded = true
		res.Ground = s.ID
		res.Carry = s.DX
		return
	}

	best := -1
	bestBottom := math.Inf(-1)
	for i, s := range surfaces {
		bottom := s.Box.Bottom()
		if !moved.OverlapsX(s.Box) || prev.Top() < bottom-r.tolerance || moved.Top() > bottom {
			continue
		}
		if bottom > bestBottom {
			best, bestBottom = i, bottom
		}
	}
	if best < 0 {
		p.Pos.Y = ny
		return
	}
	if surfaces[best].Kind == KindDanger {
		res.Danger = true
		p.Pos.Y = ny
		return
	}
	p.Pos.Y = bestBottom + r.h
	p.Vel.Y = 0
	res.HeadBump = true
}

func (r Resolver) clampX(x float64) float64 {
	return core.ClampF(x, r.w/2, r.worldW-r.w/2)
}
