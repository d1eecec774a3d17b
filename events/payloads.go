package events

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-volley/core"
)

// MatchPayload identifies the match a lifecycle event belongs to
type MatchPayload struct {
	MatchID uuid.UUID
	Score   core.Score
}

// ServePayload carries the serve direction after a round reset
type ServePayload struct {
	VelX float64
}

// PointPayload describes a scoring event
type PointPayload struct {
	Scorer core.Side
	Score  core.Score
	BallX  float64
	Rally  int // Strikes since the last serve
}

// StrikePayload describes a body kicking the ball
type StrikePayload struct {
	Side  core.Side
	Angle float64
}

// GroundPayload is the ball position at floor contact
type GroundPayload struct {
	X, Y float64
}

// JumpPayload identifies the body that jumped or landed
type JumpPayload struct {
	Side core.Side
}
