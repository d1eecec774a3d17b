package physics

import (
	"github.com/lixenwraith/vi-volley/core"
)

// ApplyGravity integrates one tick of vertical motion: v += g; y += v
// Returns true when the body lands on this tick
func ApplyGravity(b *core.Body, gravity, floorY float64) bool {
	b.VelY += gravity
	b.Y += b.VelY
	return Land(b, floorY)
}

// Land snaps a body at or below its rest line onto the floor
// Idempotent for a body already resting
func Land(b *core.Body, floorY float64) bool {
	restY := floorY - b.Height
	if b.Y < restY {
		return false
	}
	wasAirborne := b.State == core.BodyAirborne
	b.Y = restY
	b.VelY = 0
	b.State = core.BodyGrounded
	return wasAirborne
}

// Jump sets the upward impulse if the body is grounded
// Returns false for an airborne body, which keeps its velocity
func Jump(b *core.Body, force float64) bool {
	if b.State != core.BodyGrounded {
		return false
	}
	b.VelY = force
	b.State = core.BodyAirborne
	return true
}

// MoveX shifts the body by speed per set direction flag and clamps it to its half
// Opposing flags cancel
func MoveX(b *core.Body, left, right bool, speed float64) {
	if left {
		b.X -= speed
		b.ClampX()
	}
	if right {
		b.X += speed
		b.ClampX()
	}
}

// IntegrateBall advances the ball one tick: position first, then gravity
func IntegrateBall(ball *core.Ball, gravity float64) {
	ball.X += ball.VelX
	ball.Y += ball.VelY
	ball.VelY += gravity
}
