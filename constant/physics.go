package constant

// Per-tick physics, in court units per tick
const (
	Gravity     = 0.5
	JumpForce   = -12.0 // negative is upward
	PlayerSpeed = 5.0
	AISpeed     = 4.0

	// BallSpeedX is the horizontal serve speed and the strike speed at a body edge
	BallSpeedX = 5.0
	// BallSpeedY is the fixed upward kick applied on every body strike
	BallSpeedY = -8.0

	// AIJumpFactor weakens the opponent jump relative to the player
	AIJumpFactor = 0.9
)

// AI Policy
const (
	// AITrackDeadZone is the horizontal distance from AI center within which it holds position
	AITrackDeadZone = 10.0

	// AIJumpReach is the max horizontal distance between ball and AI center for a jump
	AIJumpReach = 150.0

	// AIJumpFloorMargin is subtracted from the floor line for the lowest jump-trigger height
	AIJumpFloorMargin = 150.0
)
