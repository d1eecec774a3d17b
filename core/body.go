package core

import "github.com/lixenwraith/vi-volley/vmath"

// BodyState tracks whether a body rests on the floor
type BodyState uint8

const (
	BodyGrounded BodyState = iota
	BodyAirborne
)

func (s BodyState) String() string {
	switch s {
	case BodyGrounded:
		return "Grounded"
	case BodyAirborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// Body is a rectangular movable actor anchored at its top-left corner
// MinX/MaxX bound the horizontal position to the owner's half court
type Body struct {
	X, Y          float64
	Width, Height float64
	VelY          float64
	State         BodyState

	MinX, MaxX     float64
	SpawnX, SpawnY float64
}

// CenterX returns the horizontal midpoint
func (b *Body) CenterX() float64 {
	return b.Bounds().CenterX()
}

// Bounds returns the body rectangle for collision tests
func (b *Body) Bounds() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// ClampX confines the body to its half court
func (b *Body) ClampX() {
	b.X = vmath.Clamp(b.X, b.MinX, b.MaxX)
}

// Grounded reports whether the body can jump
func (b *Body) Grounded() bool {
	return b.State == BodyGrounded
}

// Respawn restores spawn geometry and rest state
func (b *Body) Respawn() {
	b.X = b.SpawnX
	b.Y = b.SpawnY
	b.VelY = 0
	b.State = BodyGrounded
}

// Intent is the per-tick movement request of a body
// Left and right may both be set; their displacements cancel
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// Idle reports whether no flag is set
func (i Intent) Idle() bool {
	return !i.MoveLeft && !i.MoveRight && !i.Jump
}

// Player is the human-controlled body on the left half
type Player struct {
	Body
	Intent Intent
}

// Opponent is the AI-controlled body on the right half
type Opponent struct {
	Body
	Intent Intent
}
