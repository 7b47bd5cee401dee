package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

// DefaultClimberConfig returns the default climber configuration.
// Must stay in sync with defaults/climber.yaml.
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		World: WorldConfig{
			Width:              800,
			ViewHeight:         600,
			StartPlatformY:     500,
			StartPlatformWidth: 280,
			InitialRows:        10,
			GenerationHorizon:  600,
			PruneDistance:      800,
			CameraAnchor:       0.5,
		},
		Physics: PhysicsConfig{
			Gravity:      700,
			MaxFallSpeed: 900,
			MaxStepMs:    20,
		},
		Player: PlayerConfig{
			Width:  40,
			Height: 48,
		},
		Jump: JumpConfig{
			CoyoteTimeMs:   150,
			BufferTimeMs:   120,
			MaxJumpTimeMs:  300,
			ReleaseDamping: 0.5,
		},
		Platforms: PlatformConfig{
			Height:           20,
			Short:            WidthRange{Min: 80, Max: 160},
			Medium:           WidthRange{Min: 161, Max: 260},
			Long:             WidthRange{Min: 261, Max: 400},
			MinSeparation:    200,
			MinGap:           40,
			RetryBudget:      32,
			DangerCooldown:   2,
			SafeRows:         2,
			ContactTolerance: 5,
		},
		Motion: MotionConfig{
			FromLevel:    1,
			Chance:       Scaling{Base: 0.25, Step: 0.05, Limit: 0.6},
			Amplitude:    Scaling{Base: 30, Step: 5, Limit: 80},
			MinAmplitude: 10,
			MinPeriodMs:  2000,
			MaxPeriodMs:  4000,
		},
		Clouds: CloudConfig{
			Initial:     5,
			SpawnChance: 0.01,
			SpawnAbove:  600,
			SpawnJitter: 200,
			MinScale:    0.5,
			MaxScale:    1.5,
			MaxDrift:    50,
			MinPeriodMs: 10000,
			MaxPeriodMs: 20000,
		},
		Input: InputConfig{
			DragThreshold: 8,
			HoldWindowMs:  180,
		},
		GameOver: GameOverConfig{
			SettleDelayMs:   1000,
			FallOutGapsBelowGround: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialLevel:    0,
			PointsPerLevel:  10,
			MaxLevel:        10,
			PlayerSpeed:     Scaling{Base: 300, Step: 15, Limit: 450},
			PlatformGap:     Scaling{Base: 220, Step: 5, Limit: 170},
			JumpVelocity:    Scaling{Base: -450, Step: 5, Limit: -500},
			MaxJumpVelocity: Scaling{Base: -600, Step: 5, Limit: -650},
			DangerPadChance: Scaling{Base: 0.18, Step: 0.03, Limit: 0.45},
			ShortWeight:     Scaling{Base: 0.2, Step: 0.04, Limit: 0.6},
			LongWeight:      Scaling{Base: 0.4, Step: 0.03, Limit: 0.1},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultClimberYAML
}
