package climber

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

func newTestController() (Controller, config.ClimberConfig, config.Tunables) {
	cfg := config.DefaultClimberConfig()
	return NewController(cfg), cfg, config.ComputeTunables(cfg, 0)
}

func airborne(x, y float64) Player {
	p := NewPlayer(x, y)
	p.Grounded = false
	p.Phase = PhaseCoasting
	return p
}

func TestCoyoteJumpAfterLeavingPlatform(t *testing.T) {
	c, _, tn := newTestController()
	now := int64(10_000)

	p := airborne(400, 100)
	p.Jump.LastGroundedTime = now - 50

	lifted := c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, now, 16, tn)
	if !lifted {
		t.Fatal("press 50ms after leaving ground should lift off")
	}
	if p.Vel.Y != tn.JumpVelocity {
		t.Errorf("Vel.Y = %v, expected jumpVelocity %v", p.Vel.Y, tn.JumpVelocity)
	}
	if p.Phase != PhaseThrust {
		t.Errorf("Phase = %v, expected thrust", p.Phase)
	}
}

func TestCoyoteWindowBoundary(t *testing.T) {
	c, cfg, tn := newTestController()
	coyote := cfg.Jump.CoyoteTimeMs
	now := int64(10_000)

	tests := []struct {
		name    string
		elapsed int64
		want    bool
	}{
		{"inside window", coyote - 1, true},
		{"at window", coyote, false},
		{"past window", coyote + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := airborne(400, 100)
			p.Jump.LastGroundedTime = now - tt.elapsed
			got := c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, now, 16, tn)
			if got != tt.want {
				t.Errorf("liftoff %v after %dms, expected %v", got, tt.elapsed, tt.want)
			}
		})
	}
}

func TestHeldJumpDoesNotRejumpOnLanding(t *testing.T) {
	c, _, tn := newTestController()
	now := int64(10_000)

	// Jump key still held from the previous jump, no new press
	p := NewPlayer(400, 500)
	p.Jump.wasHeld = true
	if c.Update(&p, core.InputState{JumpHeld: true}, now, 16, tn) {
		t.Fatal("a held key without a new press must not start a jump")
	}
	if p.Vel.Y != 0 || p.Phase != PhaseGrounded {
		t.Errorf("player should stay grounded, got Vel.Y=%v phase=%v", p.Vel.Y, p.Phase)
	}

	// A fresh press while standing does jump
	if !c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, now+16, 16, tn) {
		t.Error("a new press while grounded should lift off")
	}
}

func TestJumpBufferedBeforeLanding(t *testing.T) {
	c, cfg, tn := newTestController()
	now := int64(5_000)

	p := airborne(400, 100)
	// Press in the air with no coyote time left
	if c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, now, 16, tn) {
		t.Fatal("press in the air without coyote time should not lift off")
	}

	// Land inside the buffer window
	c.Land(&p, true)
	landAt := now + cfg.Jump.BufferTimeMs - 1
	if !c.Update(&p, core.InputState{JumpHeld: true}, landAt, 16, tn) {
		t.Error("buffered press should lift off on landing")
	}
}

func TestJumpBufferExpires(t *testing.T) {
	c, cfg, tn := newTestController()
	now := int64(5_000)

	p := airborne(400, 100)
	c.Update(&p, core.InputState{JumpPressed: true}, now, 16, tn)
	c.Land(&p, true)
	if c.Update(&p, core.InputState{}, now+cfg.Jump.BufferTimeMs, 16, tn) {
		t.Error("press older than the buffer window should be dropped")
	}
}

func TestLiftoffClearsTimers(t *testing.T) {
	c, _, tn := newTestController()
	p := NewPlayer(400, 500)
	now := int64(1_000)

	if !c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, now, 16, tn) {
		t.Fatal("grounded press should lift off")
	}
	// A second press right away must not double jump
	p.Vel.Y = 100
	if c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, now+16, 16, tn) {
		t.Error("coyote time must be consumed by the first jump")
	}
}

func TestJumpHoldMonotonic(t *testing.T) {
	c, cfg, tn := newTestController()
	p := NewPlayer(400, 500)
	now := int64(0)
	const dt = 16

	c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, now, dt, tn)
	prev := p.Vel.Y
	if prev != tn.JumpVelocity {
		t.Fatalf("liftoff Vel.Y = %v, expected %v", prev, tn.JumpVelocity)
	}

	for elapsed := int64(dt); elapsed <= cfg.Jump.MaxJumpTimeMs+dt; elapsed += dt {
		now += dt
		c.Update(&p, core.InputState{JumpHeld: true}, now, dt, tn)
		if p.Vel.Y > prev {
			t.Fatalf("at %dms Vel.Y rose from %v to %v", elapsed, prev, p.Vel.Y)
		}
		if p.Vel.Y < tn.MaxJumpVelocity {
			t.Fatalf("at %dms Vel.Y %v exceeds max jump velocity %v", elapsed, p.Vel.Y, tn.MaxJumpVelocity)
		}
		prev = p.Vel.Y
	}

	if p.Vel.Y != tn.MaxJumpVelocity {
		t.Errorf("after a full hold Vel.Y = %v, expected %v", p.Vel.Y, tn.MaxJumpVelocity)
	}
	if p.Phase != PhaseCoasting {
		t.Errorf("Phase = %v, expected coasting after a full hold", p.Phase)
	}
}

func TestJumpEarlyReleaseDamps(t *testing.T) {
	c, cfg, tn := newTestController()
	p := NewPlayer(400, 500)

	c.Update(&p, core.InputState{JumpPressed: true, JumpHeld: true}, 0, 16, tn)
	c.Update(&p, core.InputState{JumpHeld: true}, 16, 16, tn)
	before := p.Vel.Y

	c.Update(&p, core.InputState{}, 32, 16, tn)
	if p.Vel.Y != before*cfg.Jump.ReleaseDamping {
		t.Errorf("release Vel.Y = %v, expected %v", p.Vel.Y, before*cfg.Jump.ReleaseDamping)
	}
	if p.Jump.JumpTimer != float64(cfg.Jump.MaxJumpTimeMs) {
		t.Error("release should end the hold extension")
	}

	// Pressing hold again cannot re-extend this jump
	damped := p.Vel.Y
	c.Update(&p, core.InputState{JumpHeld: true}, 48, 16, tn)
	if p.Vel.Y != damped {
		t.Errorf("re-hold changed Vel.Y from %v to %v", damped, p.Vel.Y)
	}
}

func TestHorizontalIntent(t *testing.T) {
	c, _, tn := newTestController()
	p := NewPlayer(400, 500)

	c.Update(&p, core.InputState{Left: true}, 0, 16, tn)
	if p.Vel.X != -tn.PlayerSpeed || !p.FacingLeft {
		t.Errorf("left: Vel.X=%v facingLeft=%v", p.Vel.X, p.FacingLeft)
	}
	c.Update(&p, core.InputState{}, 16, 16, tn)
	if p.Vel.X != 0 || !p.FacingLeft {
		t.Errorf("idle: Vel.X=%v, facing should persist", p.Vel.X)
	}
	c.Update(&p, core.InputState{DragDX: 20}, 32, 16, tn)
	if p.Vel.X != tn.PlayerSpeed || p.FacingLeft {
		t.Errorf("drag right: Vel.X=%v facingLeft=%v", p.Vel.X, p.FacingLeft)
	}
}

func TestGravityCapped(t *testing.T) {
	c, cfg, _ := newTestController()
	p := airborne(400, 100)

	for range 200 {
		c.ApplyGravity(&p, 16)
	}
	if p.Vel.Y != cfg.Physics.MaxFallSpeed {
		t.Errorf("Vel.Y = %v, expected fall speed cap %v", p.Vel.Y, cfg.Physics.MaxFallSpeed)
	}
}

func TestFrozenPlayerIgnoresInput(t *testing.T) {
	c, _, tn := newTestController()
	p := NewPlayer(400, 500)
	c.Freeze(&p)

	c.Update(&p, core.InputState{Right: true, JumpPressed: true, JumpHeld: true}, 0, 16, tn)
	c.ApplyGravity(&p, 16)
	if p.Vel != (core.Vec{}) {
		t.Errorf("frozen player moved: %+v", p.Vel)
	}
}
