package climber

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Visual elements
const (
	DangerChar = '▲'
	MovingChar = '≡'
	StartChar  = '█'
	PlayerChar = '█'
	CloudChar  = '~'
)

// Safe pad textures, indexed by Variant.
var padChars = [...]rune{'█', '═', '▬', '━'}

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// viewport maps world coordinates to screen cells.
type viewport struct {
	top    float64
	sx, sy float64
	rows   int
}

func newViewport(f Frame, dst *core.Screen) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		top:  f.CameraTop,
		sx:   float64(dst.Width()) / f.WorldWidth,
		sy:   float64(rows) / f.ViewHeight,
		rows: rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor((y-v.top)*v.sy))
}

// Render draws a frame to the screen: clouds, platforms, the player, the HUD
// and any state overlay. Paused is host state the engine does not know about.
func Render(f Frame, dst *core.Screen, paused bool) {
	dst.Clear()
	vp := newViewport(f, dst)

	for _, c := range f.Clouds {
		w := max(3, int(100*c.Scale*vp.sx))
		x := vp.col(c.X) - w/2
		dst.DrawHLine(x, vp.row(c.Y), w, CloudChar, core.ColorGray)
	}

	for _, p := range f.Platforms {
		if !f.Visible(p.Box) {
			continue
		}
		drawPlatform(dst, vp, p)
	}

	drawPlayer(dst, vp, f)

	hud := fmt.Sprintf(" Score: %d  Level: %d ", f.Score, f.Level)
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)

	switch {
	case f.State == StateDying:
		title := "FELL!"
		if f.Cause == CauseDanger {
			title = "OUCH!"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Restarting...", f.Score))
	case f.State == StateAwaitingRestart:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", f.Score))
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawPlatform(dst *core.Screen, vp viewport, p PlatformPose) {
	x0 := vp.col(p.Box.Left())
	w := max(1, vp.col(p.Box.Right())-x0)
	y := vp.row(p.Box.Top())

	switch {
	case p.Kind == KindDanger:
		dst.DrawHLine(x0, y, w, DangerChar, core.ColorBrightRed)
	case p.Motion.Moving():
		dst.DrawHLine(x0, y, w, MovingChar, core.ColorYellow)
	case p.Variant == 0:
		dst.DrawHLine(x0, y, w, StartChar, core.ColorCyan)
	default:
		dst.DrawHLine(x0, y, w, padChars[p.Variant%len(padChars)], core.ColorGreen)
	}
}

func drawPlayer(dst *core.Screen, vp viewport, f Frame) {
	b := f.PlayerBox
	x0 := vp.col(b.Left())
	x1 := max(x0+1, vp.col(b.Right()))
	// Feet sit on the row above the platform line
	y1 := vp.row(b.Bottom()) - 1
	y0 := min(y1, vp.row(b.Top()))

	color := core.ColorBrightWhite
	if f.State != StatePlaying {
		color = core.ColorRed
	}
	for y := y0; y <= y1; y++ {
		dst.DrawHLine(x0, y, x1-x0, PlayerChar, color)
	}

	eye, ex := '▶', x1-1
	if f.Player.FacingLeft {
		eye, ex = '◀', x0
	}
	dst.SetWithColor(ex, y0, eye, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
