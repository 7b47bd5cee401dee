package climber

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Kind selects how a platform reacts to contact.
type Kind int

const (
	KindSafe Kind = iota
	KindDanger
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSafe:
		return "safe"
	case KindDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Motion is a sinusoidal horizontal oscillation evaluated from elapsed time.
// The zero value does not move.
type Motion struct {
	Amplitude float64 // Peak displacement in world units
	PeriodMs  float64
	Phase     float64 // Radians
}

// Moving reports whether the motion displaces anything.
func (m Motion) Moving() bool {
	return m.Amplitude > 0 && m.PeriodMs > 0
}

// Offset returns the displacement at time tMs.
func (m Motion) Offset(tMs float64) float64 {
	if !m.Moving() {
		return 0
	}
	return m.Amplitude * math.Sin(2*math.Pi*tMs/m.PeriodMs+m.Phase)
}

// Platform is a value-typed record owned by the World's arena.
// BaseX is the center at rest; Y is the top surface.
type Platform struct {
	BaseX   float64
	Y       float64
	Width   float64
	Height  float64
	Kind    Kind
	Variant int // Cosmetic pad texture
	Line    int // Row index; -1 for the start platform
	Motion  Motion
}

// X returns the center x at time tMs.
func (p Platform) X(tMs float64) float64 {
	return p.BaseX + p.Motion.Offset(tMs)
}

// BoxAt returns the collision box at time tMs.
func (p Platform) BoxAt(tMs float64) core.Box {
	return core.Box{X: p.X(tMs) - p.Width/2, Y: p.Y, W: p.Width, H: p.Height}
}

// Left returns the left edge at rest.
func (p Platform) Left() float64 { return p.BaseX - p.Width/2 }

// Right returns the right edge at rest.
func (p Platform) Right() float64 { return p.BaseX + p.Width/2 }

// Row is a generated pair of platforms sharing one y ("line").
// Platforms[0] is the left slot, Platforms[1] the right slot.
type Row struct {
	Line      int
	Y         float64
	Platforms [2]Platform
	Fallback  bool // Placed by the deterministic thirds split
}

// DangerCount returns how many platforms in the row are danger pads.
func (r Row) DangerCount() int {
	n := 0
	for _, p := range r.Platforms {
		if p.Kind == KindDanger {
			n++
		}
	}
	return n
}

// Gap returns the free horizontal space between the two platforms at rest.
func (r Row) Gap() float64 {
	return r.Platforms[1].Left() - r.Platforms[0].Right()
}
