package climber

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

func platformSurface(x, top, w float64, kind Kind) Surface {
	return Surface{Box: core.Box{X: x - w/2, Y: top, W: w, H: 20}, Kind: kind}
}

func newTestResolver() (Resolver, config.ClimberConfig) {
	cfg := config.DefaultClimberConfig()
	return NewResolver(cfg), cfg
}

func TestResolveLanding(t *testing.T) {
	r, cfg := newTestResolver()
	surfaces := []Surface{platformSurface(400, 500, 200, KindSafe)}

	p := airborne(400, 495)
	p.Vel.Y = 600
	res := r.Resolve(&p, surfaces, 16)

	if !res.Grounded {
		t.Fatal("expected landing")
	}
	if p.Pos.Y != 500 {
		t.Errorf("feet at %v, expected snapped to 500", p.Pos.Y)
	}
	if p.Vel.Y < 0 {
		t.Errorf("Vel.Y = %v after landing, expected >= 0", p.Vel.Y)
	}
	if p.Box(cfg.Player.Width, cfg.Player.Height).Intersects(surfaces[0].Box) {
		t.Error("player left overlapping a safe platform")
	}
}

func TestResolveRestingContactStaysGrounded(t *testing.T) {
	r, _ := newTestResolver()
	c, _, _ := newTestController()
	surfaces := []Surface{platformSurface(400, 500, 200, KindSafe)}
	p := NewPlayer(400, 500)

	for i := range 30 {
		c.ApplyGravity(&p, 16)
		res := r.Resolve(&p, surfaces, 16)
		if !res.Grounded || p.Pos.Y != 500 {
			t.Fatalf("tick %d: grounded=%v y=%v", i, res.Grounded, p.Pos.Y)
		}
	}
}

func TestResolveFastFallDoesNotTunnel(t *testing.T) {
	r, _ := newTestResolver()
	surfaces := []Surface{platformSurface(400, 500, 200, KindSafe)}

	p := airborne(400, 450)
	p.Vel.Y = 900
	res := r.Resolve(&p, surfaces, 100)

	if !res.Grounded || p.Pos.Y != 500 {
		t.Errorf("fast fall: grounded=%v y=%v, expected landing at 500", res.Grounded, p.Pos.Y)
	}
}

func TestResolveHeadBump(t *testing.T) {
	r, cfg := newTestResolver()
	surfaces := []Surface{platformSurface(400, 300, 200, KindSafe)}

	// Head just below the underside at 320
	p := airborne(400, 322+cfg.Player.Height)
	p.Vel.Y = -500
	res := r.Resolve(&p, surfaces, 16)

	if !res.HeadBump {
		t.Fatal("expected head bump")
	}
	if p.Vel.Y < 0 {
		t.Errorf("Vel.Y = %v after head bump, expected >= 0", p.Vel.Y)
	}
	if top := p.Pos.Y - cfg.Player.Height; top != 320 {
		t.Errorf("head at %v, expected 320", top)
	}
	if p.Box(cfg.Player.Width, cfg.Player.Height).Intersects(surfaces[0].Box) {
		t.Error("player left overlapping a safe platform")
	}
}

func TestResolveLateralContact(t *testing.T) {
	r, cfg := newTestResolver()
	// Platform face at x=300, spanning y 480..500
	surfaces := []Surface{{Box: core.Box{X: 300, Y: 480, W: 100, H: 20}, Kind: KindSafe}}

	p := airborne(300-cfg.Player.Width/2-2, 510)
	p.Vel.X = 300
	res := r.Resolve(&p, surfaces, 16)

	if !res.Wall {
		t.Fatal("expected lateral contact")
	}
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v, expected 0 after lateral contact", p.Vel.X)
	}
	if right := p.Pos.X + cfg.Player.Width/2; right > 300 {
		t.Errorf("player right edge %v passes the face at 300", right)
	}
}

func TestResolveWorldWalls(t *testing.T) {
	r, cfg := newTestResolver()
	p := airborne(cfg.World.Width-cfg.Player.Width/2-1, 100)
	p.Vel.X = 300
	res := r.Resolve(&p, nil, 16)

	if !res.Wall || p.Vel.X != 0 {
		t.Errorf("wall=%v Vel.X=%v, expected clamp at the right wall", res.Wall, p.Vel.X)
	}
	if p.Pos.X != cfg.World.Width-cfg.Player.Width/2 {
		t.Errorf("X = %v, expected flush with the wall", p.Pos.X)
	}
}

func TestResolveDangerContact(t *testing.T) {
	r, _ := newTestResolver()

	tests := []struct {
		name  string
		setup func() Player
	}{
		{"landing", func() Player {
			p := airborne(400, 495)
			p.Vel.Y = 400
			return p
		}},
		{"from below", func() Player {
			p := airborne(400, 570)
			p.Vel.Y = -500
			return p
		}},
		{"from the side", func() Player {
			p := airborne(290, 515)
			p.Vel.X = 300
			return p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surfaces := []Surface{platformSurface(400, 500, 200, KindDanger)}
			p := tt.setup()
			res := r.Resolve(&p, surfaces, 16)
			if !res.Danger {
				t.Error("expected danger contact")
			}
			if res.Grounded {
				t.Error("danger pads must not support the player")
			}
		})
	}
}

func TestResolveCarry(t *testing.T) {
	r, _ := newTestResolver()
	s := platformSurface(400, 500, 200, KindSafe)
	s.DX = 3
	p := NewPlayer(400, 500)
	p.Vel.Y = 10

	res := r.Resolve(&p, []Surface{s}, 16)
	if !res.Grounded || res.Carry != 3 {
		t.Fatalf("grounded=%v carry=%v", res.Grounded, res.Carry)
	}
	if p.Pos.X != 403 {
		t.Errorf("X = %v, expected carried to 403", p.Pos.X)
	}
}

func TestResolvePicksNearestSurface(t *testing.T) {
	r, _ := newTestResolver()
	surfaces := []Surface{
		platformSurface(400, 560, 200, KindSafe),
		platformSurface(400, 520, 200, KindSafe),
	}

	p := airborne(400, 510)
	p.Vel.Y = 900
	res := r.Resolve(&p, surfaces, 100)

	if !res.Grounded || p.Pos.Y != 520 {
		t.Errorf("grounded=%v y=%v, expected the upper surface at 520", res.Grounded, p.Pos.Y)
	}
}
