package core

import "time"

// Clock supplies monotonic "now" in milliseconds. The host reads it once
// per tick so every consumer within the tick sees the same value.
type Clock interface {
	NowMs() int64
}

// SystemClock reads the process monotonic clock relative to its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose zero is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs returns milliseconds since the clock was created.
func (c *SystemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly. Used by headless simulation and tests.
type ManualClock struct {
	now int64
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() int64 {
	return c.now
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Set jumps the clock to an absolute time.
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}
