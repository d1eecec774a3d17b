package core

// Ball is a circle addressed by its center
type Ball struct {
	X, Y       float64
	Radius     float64
	VelX, VelY float64

	SpawnX, SpawnY float64
}

// Respawn places the ball at its serve point with the given horizontal speed
func (b *Ball) Respawn(velX float64) {
	b.X = b.SpawnX
	b.Y = b.SpawnY
	b.VelX = velX
	b.VelY = 0
}

func (b *Ball) Left() float64   { return b.X - b.Radius }
func (b *Ball) Right() float64  { return b.X + b.Radius }
func (b *Ball) Top() float64    { return b.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }
