package physics

import (
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/vmath"
)

// Grounded reports whether the ball has crossed the floor plane
func Grounded(ball *core.Ball, floorY float64) bool {
	return ball.Y > floorY-ball.Radius
}

// HitsWall reports contact with either side wall
func HitsWall(ball *core.Ball, courtWidth float64) bool {
	return ball.Left() < 0 || ball.Right() > courtWidth
}

// HitsCeiling reports contact with the top edge
func HitsCeiling(ball *core.Ball) bool {
	return ball.Top() < 0
}

// HitsNet reports overlap with the net's horizontal span below the net top
// A ball fully above the net top passes regardless of lateral overlap
func HitsNet(ball *core.Ball, net core.Net) bool {
	return vmath.SpansOverlap(ball.Left(), ball.Right(), net.X(), net.X()+net.Width()) &&
		ball.Bottom() > net.Y()
}

// HitsBody reports a strict closest-point contact between ball and body
func HitsBody(ball *core.Ball, b *core.Body) bool {
	return vmath.CircleIntersectsRect(ball.X, ball.Y, ball.Radius, b.Bounds())
}

// ReflectX negates horizontal velocity
func ReflectX(ball *core.Ball) {
	ball.VelX = -ball.VelX
}

// ReflectY negates vertical velocity
func ReflectY(ball *core.Ball) {
	ball.VelY = -ball.VelY
}

// StrikeAngle is the signed offset of the ball from the body center in half-widths
// Within [-1, 1] while the ball center lies over the body span
func StrikeAngle(ball *core.Ball, b *core.Body) float64 {
	return vmath.NormalizedOffset(ball.X, b.CenterX(), b.Width)
}

// Strike overwrites ball velocity with an upward kick angled by contact offset
// Returns the applied angle
func Strike(ball *core.Ball, b *core.Body, p Params) float64 {
	angle := StrikeAngle(ball, b)
	ball.VelY = p.BallSpeedY
	ball.VelX = p.BallSpeedX * angle
	return angle
}
