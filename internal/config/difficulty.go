package config

// Tunables are the level-derived values the simulation reads every tick.
type Tunables struct {
	Level           int
	PlayerSpeed     float64
	PlatformGap     float64
	JumpVelocity    float64 // Negative = upward
	MaxJumpVelocity float64 // Negative = upward, stronger than JumpVelocity
	DangerPadChance float64

	// Generation shaping
	ShortWeight     float64
	LongWeight      float64
	MotionChance    float64 // Zero below Motion.FromLevel
	MotionAmplitude float64
}

// ClampLevel restricts a level to [0, maxLevel].
func ClampLevel(level, maxLevel int) int {
	if maxLevel < 0 {
		maxLevel = 0
	}
	if level < 0 {
		return 0
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

// ComputeTunables derives every tunable from a level. It is a pure function:
// the same config and level always give the same result. Out-of-range levels
// are clamped.
func ComputeTunables(cfg ClimberConfig, level int) Tunables {
	d := cfg.Difficulty
	level = ClampLevel(level, d.MaxLevel)

	t := Tunables{
		Level:           level,
		PlayerSpeed:     d.PlayerSpeed.Rising(level),
		PlatformGap:     d.PlatformGap.Falling(level),
		JumpVelocity:    d.JumpVelocity.Falling(level),
		MaxJumpVelocity: d.MaxJumpVelocity.Falling(level),
		DangerPadChance: d.DangerPadChance.Rising(level),
		ShortWeight:     d.ShortWeight.Rising(level),
		LongWeight:      d.LongWeight.Falling(level),
	}

	if level >= cfg.Motion.FromLevel && level > 0 {
		steps := level - cfg.Motion.FromLevel
		t.MotionChance = cfg.Motion.Chance.Rising(steps)
		t.MotionAmplitude = cfg.Motion.Amplitude.Rising(steps)
	}

	return t
}

// DifficultyScheduler maps cumulative score to a monotonic level and keeps
// the tunables for the current level.
type DifficultyScheduler struct {
	cfg        ClimberConfig
	level      int
	tunables   Tunables
	recomputes int
}

// NewDifficultyScheduler creates a scheduler at the configured initial level.
func NewDifficultyScheduler(cfg ClimberConfig) *DifficultyScheduler {
	s := &DifficultyScheduler{cfg: cfg}
	s.level = ClampLevel(cfg.Difficulty.InitialLevel, cfg.Difficulty.MaxLevel)
	s.tunables = ComputeTunables(cfg, s.level)
	return s
}

// IsEnabled returns whether difficulty progression is active.
func (s *DifficultyScheduler) IsEnabled() bool {
	return s.cfg.Difficulty.Enabled && s.cfg.Difficulty.PointsPerLevel > 0
}

// LevelFor returns the level a score maps to:
// initial + floor(score / pointsPerLevel), clamped to [0, maxLevel].
func (s *DifficultyScheduler) LevelFor(score int) int {
	d := s.cfg.Difficulty
	if !s.IsEnabled() || score < 0 {
		return ClampLevel(d.InitialLevel, d.MaxLevel)
	}
	return ClampLevel(d.InitialLevel+score/d.PointsPerLevel, d.MaxLevel)
}

// Observe feeds the current score. Tunables are recomputed once for every
// threshold crossed; the level never decreases. Returns true if the level rose.
func (s *DifficultyScheduler) Observe(score int) bool {
	target := s.LevelFor(score)
	if target <= s.level {
		return false
	}
	for s.level < target {
		s.level++
		s.tunables = ComputeTunables(s.cfg, s.level)
		s.recomputes++
	}
	return true
}

// Level returns the current level.
func (s *DifficultyScheduler) Level() int {
	return s.level
}

// Tunables returns the tunables for the current level.
func (s *DifficultyScheduler) Tunables() Tunables {
	return s.tunables
}

// Recomputes returns how many times tunables were recomputed by level-ups.
func (s *DifficultyScheduler) Recomputes() int {
	return s.recomputes
}

// MaxLevel returns the configured level cap.
func (s *DifficultyScheduler) MaxLevel() int {
	return s.cfg.Difficulty.MaxLevel
}
