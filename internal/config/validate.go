package config

import (
	"errors"
	"fmt"
)

// Validate reports every field that would make the simulation misbehave.
func (c ClimberConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.ViewHeight > 0, "world.view_height must be positive, got %v", c.World.ViewHeight)
	check(c.World.StartPlatformWidth > 0, "world.start_platform_width must be positive")
	check(c.World.InitialRows >= 0, "world.initial_rows must not be negative")
	check(c.World.GenerationHorizon > 0, "world.generation_horizon must be positive")
	check(c.World.PruneDistance > 0, "world.prune_distance must be positive")
	check(c.World.CameraAnchor >= 0 && c.World.CameraAnchor <= 1, "world.camera_anchor must be in [0, 1]")

	check(c.Physics.Gravity > 0, "physics.gravity must be positive")
	check(c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive")
	check(c.Physics.MaxStepMs > 0, "physics.max_step_ms must be positive")

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")

	check(c.Jump.CoyoteTimeMs >= 0, "jump.coyote_time_ms must not be negative")
	check(c.Jump.BufferTimeMs >= 0, "jump.buffer_time_ms must not be negative")
	check(c.Jump.MaxJumpTimeMs > 0, "jump.max_jump_time_ms must be positive")
	check(c.Jump.ReleaseDamping >= 0 && c.Jump.ReleaseDamping <= 1, "jump.release_damping must be in [0, 1]")

	p := c.Platforms
	check(p.Height > 0, "platforms.height must be positive")
	for name, r := range map[string]WidthRange{"short": p.Short, "medium": p.Medium, "long": p.Long} {
		check(r.Min > 0 && r.Min <= r.Max, "platforms.%s width range [%d, %d] is invalid", name, r.Min, r.Max)
		check(float64(r.Max) <= c.World.Width/2, "platforms.%s max width %d exceeds half the world", name, r.Max)
	}
	check(p.MinGap >= 0, "platforms.min_gap must not be negative")
	check(p.MinSeparation >= 0, "platforms.min_separation must not be negative")
	// The fallback split puts centers two thirds of the world apart.
	check(p.MinSeparation < c.World.Width*2/3, "platforms.min_separation must be below two thirds of world.width")
	check(p.MinGap < c.World.Width/3, "platforms.min_gap must be below a third of world.width")
	check(p.RetryBudget > 0, "platforms.retry_budget must be positive")
	check(p.DangerCooldown >= 1, "platforms.danger_cooldown must be at least 1")
	check(p.ContactTolerance >= 0, "platforms.contact_tolerance must not be negative")

	check(c.Motion.MinPeriodMs > 0 && c.Motion.MinPeriodMs <= c.Motion.MaxPeriodMs, "motion period range is invalid")
	check(c.Clouds.MinPeriodMs > 0 && c.Clouds.MinPeriodMs <= c.Clouds.MaxPeriodMs, "clouds period range is invalid")
	check(c.Clouds.MinScale > 0 && c.Clouds.MinScale <= c.Clouds.MaxScale, "clouds scale range is invalid")
	check(c.Clouds.SpawnChance >= 0 && c.Clouds.SpawnChance <= 1, "clouds.spawn_chance must be in [0, 1]")

	check(c.GameOver.SettleDelayMs >= 0, "game_over.settle_delay_ms must not be negative")
	check(c.GameOver.FallOutGapsBelowGround > 0, "game_over.fall_out_gaps_below_ground must be positive")

	d := c.Difficulty
	check(d.PointsPerLevel > 0, "difficulty.points_per_level must be positive")
	check(d.MaxLevel >= 0, "difficulty.max_level must not be negative")
	check(d.PlayerSpeed.Limit >= d.PlayerSpeed.Base, "difficulty.player_speed cap is below its base")
	check(d.PlatformGap.Limit <= d.PlatformGap.Base, "difficulty.platform_gap floor is above its base")
	check(d.PlatformGap.Limit > 0, "difficulty.platform_gap floor must be positive")
	check(d.JumpVelocity.Base < 0, "difficulty.jump_velocity must be negative (upward)")
	check(d.MaxJumpVelocity.Base <= d.JumpVelocity.Base, "difficulty.max_jump_velocity must be at least as strong as jump_velocity")
	check(d.DangerPadChance.Limit <= 1, "difficulty.danger_pad_chance cap must be at most 1")

	return errors.Join(errs...)
}
