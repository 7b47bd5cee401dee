package climber

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

func newTestWorld(seed int64) (*World, config.ClimberConfig) {
	cfg := config.DefaultClimberConfig()
	return NewWorld(cfg, NewRNG(seed), nil), cfg
}

func TestWorldOpeningLayout(t *testing.T) {
	w, cfg := newTestWorld(1)

	want := 1 + 2*cfg.World.InitialRows
	if w.PlatformCount() != want {
		t.Errorf("PlatformCount() = %d, expected %d", w.PlatformCount(), want)
	}
	if w.CloudCount() != cfg.Clouds.Initial {
		t.Errorf("CloudCount() = %d, expected %d", w.CloudCount(), cfg.Clouds.Initial)
	}
	if w.Rows() != cfg.World.InitialRows {
		t.Errorf("Rows() = %d, expected %d", w.Rows(), cfg.World.InitialRows)
	}

	// The spawn point stands on the start platform
	start := w.StartPosition()
	supported := false
	for _, s := range w.Surfaces() {
		if s.Box.Top() == start.Y && s.Box.Left() < start.X && s.Box.Right() > start.X {
			supported = s.Kind == KindSafe
		}
	}
	if !supported {
		t.Error("spawn point should be on a safe start platform")
	}
}

func TestWorldGeneratesAhead(t *testing.T) {
	w, cfg := newTestWorld(2)
	gap := cfg.Difficulty.PlatformGap.Base

	for y := 500.0; y > -20_000; y -= gap / 2 {
		w.Update(core.Vec{X: 400, Y: y}, false)
		if w.TopLineY()+cfg.World.GenerationHorizon > y {
			t.Fatalf("at y=%v the highest row %v is inside the horizon", y, w.TopLineY())
		}
	}
}

func TestWorldPrunesBelow(t *testing.T) {
	w, cfg := newTestWorld(3)
	y := -10_000.0
	w.Update(core.Vec{X: 400, Y: y}, false)

	for _, p := range w.Platforms() {
		if p.Y > y+cfg.World.PruneDistance {
			t.Fatalf("platform at %v survived pruning below %v", p.Y, y+cfg.World.PruneDistance)
		}
	}
	for _, c := range w.Clouds() {
		if c.Y > y+cfg.World.PruneDistance {
			t.Fatalf("cloud at %v survived pruning", c.Y)
		}
	}
}

func TestWorldScoreMonotonic(t *testing.T) {
	w, cfg := newTestWorld(4)
	start := cfg.World.StartPlatformY

	prevScore, prevLevel := 0, w.Level()
	y := start
	for range 60 {
		y -= w.Tunables().PlatformGap
		w.Update(core.Vec{X: 400, Y: y}, true)
		if w.Score() < prevScore || w.Level() < prevLevel {
			t.Fatalf("score/level decreased: %d/%d -> %d/%d", prevScore, prevLevel, w.Score(), w.Level())
		}
		prevScore, prevLevel = w.Score(), w.Level()
	}
	if w.Score() != 60 {
		t.Errorf("Score() = %d after 60 gap climbs, expected 60", w.Score())
	}
	if w.Level() != min(60/cfg.Difficulty.PointsPerLevel, cfg.Difficulty.MaxLevel) {
		t.Errorf("Level() = %d at score 60", w.Level())
	}
	if w.Recomputes() != w.Level() {
		t.Errorf("Recomputes() = %d, expected one per level (%d)", w.Recomputes(), w.Level())
	}

	// Dropping back one row never takes points away
	w.Update(core.Vec{X: 400, Y: y + w.Tunables().PlatformGap}, true)
	if w.Score() != prevScore {
		t.Errorf("score changed on descent: %d -> %d", prevScore, w.Score())
	}
}

func TestWorldScoresOnlyFromFooting(t *testing.T) {
	w, cfg := newTestWorld(5)
	apex := cfg.World.StartPlatformY - 2*cfg.Difficulty.PlatformGap.Base

	w.Update(core.Vec{X: 400, Y: apex}, false)
	if w.Score() != 0 {
		t.Errorf("airborne apex scored %d, expected 0", w.Score())
	}
	w.Update(core.Vec{X: 400, Y: apex}, true)
	if w.Score() != 2 {
		t.Errorf("standing two rows up scored %d, expected 2", w.Score())
	}
}

func TestWorldCameraRatchets(t *testing.T) {
	w, _ := newTestWorld(6)
	top := w.CameraTop()

	w.Update(core.Vec{X: 400, Y: 100}, true)
	if w.CameraTop() >= top {
		t.Fatalf("camera should follow the climb: %v -> %v", top, w.CameraTop())
	}
	top = w.CameraTop()

	w.Update(core.Vec{X: 400, Y: 300}, false)
	if w.CameraTop() != top {
		t.Errorf("camera moved down on descent: %v -> %v", top, w.CameraTop())
	}
}

func TestWorldFallOut(t *testing.T) {
	w, cfg := newTestWorld(7)
	limit := cfg.World.StartPlatformY + cfg.GameOver.FallOutGapsBelowGround*cfg.Difficulty.PlatformGap.Base

	if ev := w.Update(core.Vec{X: 400, Y: limit}, false); ev.FellOut {
		t.Error("falling exactly to the limit should not end the run")
	}
	if ev := w.Update(core.Vec{X: 400, Y: limit + 1}, false); !ev.FellOut {
		t.Error("falling past the limit should end the run")
	}
}

func TestWorldFallOutIgnoresCameraAfterHighJump(t *testing.T) {
	w, cfg := newTestWorld(7)
	start := cfg.World.StartPlatformY

	// Apex far above the start platform drags the camera up
	w.Update(core.Vec{X: 400, Y: start - 400}, false)
	if bottom := w.CameraTop() + cfg.World.ViewHeight; bottom >= start {
		t.Fatalf("camera bottom %v should be above the start platform", bottom)
	}

	if ev := w.Update(core.Vec{X: 400, Y: start}, true); ev.FellOut {
		t.Error("landing back on the ground stood on must not end the run")
	}
}

func TestWorldResetDeterministic(t *testing.T) {
	a, _ := newTestWorld(99)
	b, _ := newTestWorld(1)
	b.Reset(NewRNG(99))

	pa, pb := a.Surfaces(), b.Surfaces()
	if len(pa) != len(pb) {
		t.Fatalf("platform counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Box != pb[i].Box || pa[i].Kind != pb[i].Kind {
			t.Fatalf("platform %d differs after Reset with the same seed", i)
		}
	}
}
