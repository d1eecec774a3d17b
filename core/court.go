package core

import "github.com/lixenwraith/vi-volley/constant"

// Court is the playing surface in world units; the floor is the bottom edge
type Court struct {
	Width  float64
	Height float64
}

func (c Court) FloorY() float64  { return c.Height }
func (c Court) CenterX() float64 { return c.Width / 2 }

// Geometry holds entity sizes and spawn offsets
type Geometry struct {
	BodyWidth  float64
	BodyHeight float64
	SpawnInset float64 // Distance from the side wall to the spawn edge
	SpawnLift  float64 // Distance from the floor to the spawn top edge
	BallRadius float64
	BallSpawnY float64
	NetWidth   float64
	NetHeight  float64
}

// DefaultCourt returns the stock 800x500 court
func DefaultCourt() Court {
	return Court{Width: constant.CourtWidth, Height: constant.CourtHeight}
}

// DefaultGeometry returns the stock entity geometry
func DefaultGeometry() Geometry {
	return Geometry{
		BodyWidth:  constant.BodyWidth,
		BodyHeight: constant.BodyHeight,
		SpawnInset: constant.BodySpawnInset,
		SpawnLift:  constant.BodySpawnLift,
		BallRadius: constant.BallRadius,
		BallSpawnY: constant.BallSpawnY,
		NetWidth:   constant.NetWidth,
		NetHeight:  constant.NetHeight,
	}
}

// NewPlayer builds the left-half body at its spawn point
func NewPlayer(c Court, g Geometry) Player {
	b := Body{
		Width:  g.BodyWidth,
		Height: g.BodyHeight,
		MinX:   0,
		MaxX:   c.CenterX() - g.BodyWidth,
		SpawnX: g.SpawnInset,
		SpawnY: c.FloorY() - g.SpawnLift,
	}
	b.Respawn()
	return Player{Body: b}
}

// NewOpponent builds the right-half body at its spawn point
func NewOpponent(c Court, g Geometry) Opponent {
	b := Body{
		Width:  g.BodyWidth,
		Height: g.BodyHeight,
		MinX:   c.CenterX(),
		MaxX:   c.Width - g.BodyWidth,
		SpawnX: c.Width - g.SpawnInset - g.BodyWidth,
		SpawnY: c.FloorY() - g.SpawnLift,
	}
	b.Respawn()
	return Opponent{Body: b}
}

// NewBall builds the ball at its serve point, at rest
func NewBall(c Court, g Geometry) Ball {
	b := Ball{
		Radius: g.BallRadius,
		SpawnX: c.CenterX(),
		SpawnY: g.BallSpawnY,
	}
	b.Respawn(0)
	return b
}
