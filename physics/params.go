package physics

import "github.com/lixenwraith/vi-volley/constant"

// Params are the per-tick motion constants; there is no delta-time scaling
type Params struct {
	Gravity      float64
	JumpForce    float64 // Negative is upward
	PlayerSpeed  float64
	AISpeed      float64
	BallSpeedX   float64
	BallSpeedY   float64 // Vertical velocity after a body strike
	AIJumpFactor float64
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		Gravity:      constant.Gravity,
		JumpForce:    constant.JumpForce,
		PlayerSpeed:  constant.PlayerSpeed,
		AISpeed:      constant.AISpeed,
		BallSpeedX:   constant.BallSpeedX,
		BallSpeedY:   constant.BallSpeedY,
		AIJumpFactor: constant.AIJumpFactor,
	}
}
