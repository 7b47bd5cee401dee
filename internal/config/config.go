// Package config provides YAML/TOML-based game configuration loading and
// difficulty scheduling for the climber.
package config

// ClimberConfig contains all configuration for the climber.
// World units: the world is World.Width wide, y grows downward, times are ms,
// velocities are units per second.
type ClimberConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Jump       JumpConfig       `yaml:"jump" toml:"jump"`
	Platforms  PlatformConfig   `yaml:"platforms" toml:"platforms"`
	Motion     MotionConfig     `yaml:"motion" toml:"motion"`
	Clouds     CloudConfig      `yaml:"clouds" toml:"clouds"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	GameOver   GameOverConfig   `yaml:"game_over" toml:"game_over"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the playfield and the lifecycle distances.
type WorldConfig struct {
	Width              float64 `yaml:"width" toml:"width"`
	ViewHeight         float64 `yaml:"view_height" toml:"view_height"`
	StartPlatformY     float64 `yaml:"start_platform_y" toml:"start_platform_y"`
	StartPlatformWidth float64 `yaml:"start_platform_width" toml:"start_platform_width"`
	InitialRows        int     `yaml:"initial_rows" toml:"initial_rows"`
	GenerationHorizon  float64 `yaml:"generation_horizon" toml:"generation_horizon"` // Keep rows generated this far above the player
	PruneDistance      float64 `yaml:"prune_distance" toml:"prune_distance"`         // Drop objects this far below the player
	CameraAnchor       float64 `yaml:"camera_anchor" toml:"camera_anchor"`           // Fraction of the view above the player when climbing
}

// PhysicsConfig defines the arcade movement model.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	MaxStepMs    int64   `yaml:"max_step_ms" toml:"max_step_ms"` // Longer deltas are split into sub-steps
}

// PlayerConfig defines the player hitbox.
type PlayerConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// JumpConfig defines the forgiving-feel jump windows.
type JumpConfig struct {
	CoyoteTimeMs   int64   `yaml:"coyote_time_ms" toml:"coyote_time_ms"`
	BufferTimeMs   int64   `yaml:"buffer_time_ms" toml:"buffer_time_ms"`
	MaxJumpTimeMs  int64   `yaml:"max_jump_time_ms" toml:"max_jump_time_ms"`
	ReleaseDamping float64 `yaml:"release_damping" toml:"release_damping"` // Upward velocity multiplier on early release
}

// WidthRange is an inclusive platform width range for one size class.
type WidthRange struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// PlatformConfig defines row generation constraints.
type PlatformConfig struct {
	Height           float64    `yaml:"height" toml:"height"`
	Short            WidthRange `yaml:"short" toml:"short"`
	Medium           WidthRange `yaml:"medium" toml:"medium"`
	Long             WidthRange `yaml:"long" toml:"long"`
	MinSeparation    float64    `yaml:"min_separation" toml:"min_separation"` // Minimum distance between the two centers
	MinGap           float64    `yaml:"min_gap" toml:"min_gap"`               // Minimum free space between the two spans
	RetryBudget      int        `yaml:"retry_budget" toml:"retry_budget"`
	DangerCooldown   int        `yaml:"danger_cooldown" toml:"danger_cooldown"` // Rows between danger pads
	SafeRows         int        `yaml:"safe_rows" toml:"safe_rows"`             // Leading rows that never get a danger pad
	ContactTolerance float64    `yaml:"contact_tolerance" toml:"contact_tolerance"`
}

// MotionConfig defines horizontal oscillation of platforms at higher levels.
type MotionConfig struct {
	FromLevel    int     `yaml:"from_level" toml:"from_level"`
	Chance       Scaling `yaml:"chance" toml:"chance"`
	Amplitude    Scaling `yaml:"amplitude" toml:"amplitude"`
	MinAmplitude float64 `yaml:"min_amplitude" toml:"min_amplitude"`
	MinPeriodMs  int     `yaml:"min_period_ms" toml:"min_period_ms"`
	MaxPeriodMs  int     `yaml:"max_period_ms" toml:"max_period_ms"`
}

// CloudConfig defines the decorative background clouds.
type CloudConfig struct {
	Initial     int     `yaml:"initial" toml:"initial"`
	SpawnChance float64 `yaml:"spawn_chance" toml:"spawn_chance"` // Per tick
	SpawnAbove  float64 `yaml:"spawn_above" toml:"spawn_above"`
	SpawnJitter int     `yaml:"spawn_jitter" toml:"spawn_jitter"`
	MinScale    float64 `yaml:"min_scale" toml:"min_scale"`
	MaxScale    float64 `yaml:"max_scale" toml:"max_scale"`
	MaxDrift    int     `yaml:"max_drift" toml:"max_drift"`
	MinPeriodMs int     `yaml:"min_period_ms" toml:"min_period_ms"`
	MaxPeriodMs int     `yaml:"max_period_ms" toml:"max_period_ms"`
}

// InputConfig defines input interpretation.
type InputConfig struct {
	DragThreshold float64 `yaml:"drag_threshold" toml:"drag_threshold"`
	HoldWindowMs  int64   `yaml:"hold_window_ms" toml:"hold_window_ms"` // Terminal key-hold emulation
}

// GameOverConfig defines the death sequence.
type GameOverConfig struct {
	SettleDelayMs int64 `yaml:"settle_delay_ms" toml:"settle_delay_ms"`
	// The run ends when the feet drop this many platform gaps below the
	// highest ground stood on. The camera is not the reference: it follows
	// airborne apexes, so its bottom edge can pass above a safe landing.
	FallOutGapsBelowGround float64 `yaml:"fall_out_gaps_below_ground" toml:"fall_out_gaps_below_ground"`
}

// DifficultyConfig defines the level progression system.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"`
	InitialLevel    int     `yaml:"initial_level" toml:"initial_level"`
	PointsPerLevel  int     `yaml:"points_per_level" toml:"points_per_level"`
	MaxLevel        int     `yaml:"max_level" toml:"max_level"`
	PlayerSpeed     Scaling `yaml:"player_speed" toml:"player_speed"`           // Rising, Limit is a cap
	PlatformGap     Scaling `yaml:"platform_gap" toml:"platform_gap"`           // Falling, Limit is a floor
	JumpVelocity    Scaling `yaml:"jump_velocity" toml:"jump_velocity"`         // Falling (more negative = stronger)
	MaxJumpVelocity Scaling `yaml:"max_jump_velocity" toml:"max_jump_velocity"` // Falling
	DangerPadChance Scaling `yaml:"danger_pad_chance" toml:"danger_pad_chance"` // Rising
	ShortWeight     Scaling `yaml:"short_weight" toml:"short_weight"`           // Rising
	LongWeight      Scaling `yaml:"long_weight" toml:"long_weight"`             // Falling
}

// Scaling describes a tunable that moves linearly with level until it hits Limit.
type Scaling struct {
	Base  float64 `yaml:"base" toml:"base"`
	Step  float64 `yaml:"step" toml:"step"`
	Limit float64 `yaml:"limit" toml:"limit"`
}

// Rising returns min(Limit, Base + level*Step).
func (s Scaling) Rising(level int) float64 {
	return min(s.Limit, s.Base+float64(level)*s.Step)
}

// Falling returns max(Limit, Base - level*Step).
func (s Scaling) Falling(level int) float64 {
	return max(s.Limit, s.Base-float64(level)*s.Step)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the starting level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
