package climber

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/core"
)

func TestRenderDrawsHUDAndPlayer(t *testing.T) {
	e, _ := newTestEngine(1)
	screen := core.NewScreen(80, 24)
	Render(e.Frame(), screen, false)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player should be drawn")
	}
	if !strings.ContainsRune(screen.String(), StartChar) {
		t.Error("start platform should be drawn")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name   string
		state  LifeState
		cause  Cause
		paused bool
		want   string
	}{
		{"paused", StatePlaying, CauseNone, true, "PAUSED"},
		{"danger", StateDying, CauseDanger, false, "OUCH!"},
		{"fall", StateDying, CauseFall, false, "FELL!"},
		{"awaiting", StateAwaitingRestart, CauseFall, false, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(1)
			f := e.Frame()
			f.State = tt.state
			f.Cause = tt.cause

			screen := core.NewScreen(80, 24)
			Render(f, screen, tt.paused)
			if !strings.Contains(screen.String(), tt.want) {
				t.Errorf("expected %q on screen", tt.want)
			}
		})
	}
}

func TestRenderDangerPad(t *testing.T) {
	f := Frame{
		WorldWidth: 800,
		ViewHeight: 600,
		Platforms:  []PlatformPose{{Box: core.Box{X: 100, Y: 300, W: 200, H: 20}, Kind: KindDanger}},
		PlayerBox:  core.BoxAround(400, 500, 40, 48),
		Player:     PlayerPose{X: 400, Y: 500},
	}
	screen := core.NewScreen(80, 24)
	Render(f, screen, false)

	cell := screen.GetCell(15, 1+300*23/600)
	if cell.Rune != DangerChar || cell.Color != core.ColorBrightRed {
		t.Errorf("danger cell = %q/%v", cell.Rune, cell.Color)
	}
}
