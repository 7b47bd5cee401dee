// Package core provides fundamental types and utilities for the climber.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point or displacement in world units. Y grows downward.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box in world units used for collision.
// X, Y is the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAround builds a box of size w x h whose bottom edge is centered on (cx, bottom).
func BoxAround(cx, bottom, w, h float64) Box {
	return Box{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// OverlapsX reports whether the horizontal spans of b and o overlap.
func (b Box) OverlapsX(o Box) bool {
	return b.X < o.Right() && o.X < b.Right()
}

// OverlapsY reports whether the vertical spans of b and o overlap.
func (b Box) OverlapsY(o Box) bool {
	return b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// SpanGap returns the horizontal distance between the spans [aL, aR] and [bL, bR].
// Overlapping spans have a gap of zero.
func SpanGap(aL, aR, bL, bR float64) float64 {
	switch {
	case aR < bL:
		return bL - aR
	case bR < aL:
		return aL - bR
	default:
		return 0
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = ClampF(t, 0, 1)
	return a + (b-a)*t
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
