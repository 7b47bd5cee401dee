package climber

import "github.com/vovakirdan/tui-climber/internal/core"

// PlatformPose is a platform as drawn this frame. BaseX and Motion let a
// reader place it at other times.
type PlatformPose struct {
	Box     core.Box
	Kind    Kind
	Variant int
	BaseX   float64
	Motion  Motion
}

// At returns the platform's box at session time tMs.
func (p PlatformPose) At(tMs float64) core.Box {
	if !p.Motion.Moving() {
		return p.Box
	}
	b := p.Box
	b.X = p.BaseX + p.Motion.Offset(tMs) - b.W/2
	return b
}

// CloudPose is a cloud as drawn this frame.
type CloudPose struct {
	X, Y    float64
	Scale   float64
	Variant int
}

// Frame is a snapshot of everything a renderer needs. It shares nothing
// with the engine.
type Frame struct {
	WorldWidth float64
	ViewHeight float64
	CameraTop  float64
	ElapsedMs  float64 // Session time the platform boxes are taken at

	Platforms []PlatformPose
	Clouds    []CloudPose
	Player    PlayerPose
	PlayerBox core.Box

	Score int
	Level int
	State LifeState
	Cause Cause
}

// Frame captures the current session for rendering.
func (e *Engine) Frame() Frame {
	t := e.world.ElapsedMs()
	f := Frame{
		WorldWidth: e.cfg.World.Width,
		ViewHeight: e.cfg.World.ViewHeight,
		CameraTop:  e.world.CameraTop(),
		ElapsedMs:  t,
		Platforms:  make([]PlatformPose, 0, e.world.PlatformCount()),
		Clouds:     make([]CloudPose, 0, e.world.CloudCount()),
		Player:     e.pose(),
		PlayerBox:  e.player.Box(e.cfg.Player.Width, e.cfg.Player.Height),
		Score:      e.world.Score(),
		Level:      e.world.Level(),
		State:      e.over.State(),
		Cause:      e.over.Cause(),
	}
	for _, p := range e.world.Platforms() {
		f.Platforms = append(f.Platforms, PlatformPose{
			Box:     p.BoxAt(t),
			Kind:    p.Kind,
			Variant: p.Variant,
			BaseX:   p.BaseX,
			Motion:  p.Motion,
		})
	}
	for _, c := range e.world.Clouds() {
		f.Clouds = append(f.Clouds, CloudPose{
			X:       c.X(t),
			Y:       c.Y,
			Scale:   c.Scale,
			Variant: c.Variant,
		})
	}
	return f
}

// Visible reports whether a box intersects the view.
func (f Frame) Visible(b core.Box) bool {
	return b.Bottom() >= f.CameraTop && b.Top() <= f.CameraTop+f.ViewHeight
}
