package config

import (
	"github.com/pkg/errors"
)

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	g := c.Geometry()

	switch {
	case c.Court.Width <= 0 || c.Court.Height <= 0:
		return errors.Errorf("court size must be positive, got %gx%g", c.Court.Width, c.Court.Height)
	case c.Court.Width < 2*(g.SpawnInset+g.BodyWidth):
		return errors.Errorf("court width %g too narrow for body spawn, need at least %g",
			c.Court.Width, 2*(g.SpawnInset+g.BodyWidth))
	case c.Court.Height < g.SpawnLift+g.NetHeight:
		return errors.Errorf("court height %g too low for net and spawn, need at least %g",
			c.Court.Height, g.SpawnLift+g.NetHeight)
	}

	p := c.Physics
	switch {
	case p.Gravity <= 0:
		return errors.Errorf("physics.gravity must be positive, got %g", p.Gravity)
	case p.JumpForce >= 0:
		return errors.Errorf("physics.jump_force must be negative (upward), got %g", p.JumpForce)
	case p.BallSpeedY >= 0:
		return errors.Errorf("physics.ball_speed_y must be negative (upward), got %g", p.BallSpeedY)
	case p.PlayerSpeed <= 0:
		return errors.Errorf("physics.player_speed must be positive, got %g", p.PlayerSpeed)
	case p.AISpeed <= 0:
		return errors.Errorf("physics.ai_speed must be positive, got %g", p.AISpeed)
	case p.BallSpeedX <= 0:
		return errors.Errorf("physics.ball_speed_x must be positive, got %g", p.BallSpeedX)
	case p.AIJumpFactor <= 0 || p.AIJumpFactor > 1:
		return errors.Errorf("physics.ai_jump_factor must be in (0, 1], got %g", p.AIJumpFactor)
	}

	switch {
	case c.Loop.TickMS <= 0:
		return errors.Errorf("loop.tick_ms must be positive, got %d", c.Loop.TickMS)
	case c.Loop.KeyHoldMS < 0:
		return errors.Errorf("loop.key_hold_ms must not be negative, got %d", c.Loop.KeyHoldMS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	}

	for name, keys := range map[string][]string{"left": c.Keys.Left, "right": c.Keys.Right, "jump": c.Keys.Jump} {
		if len(keys) == 0 {
			return errors.Errorf("keys.%s has no bindings", name)
		}
	}
	return nil
}
