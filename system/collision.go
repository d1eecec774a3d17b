package system

import (
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/physics"
)

// CollisionSystem resolves ball contacts against floor, walls, ceiling, net and bodies
// Every check runs each tick in fixed order; several may fire together
// Positions are never corrected, only velocities
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) RunsWhenStopped() bool { return false }

func (s *CollisionSystem) Update(w *engine.World) {
	ball := &w.Ball

	if physics.Grounded(ball, w.Court.FloorY()) {
		w.GroundContact = true
		w.Emit(events.EventBallGrounded, &events.GroundPayload{X: ball.X, Y: ball.Y})
	}

	if physics.HitsWall(ball, w.Court.Width) {
		physics.ReflectX(ball)
		w.Emit(events.EventWallBounce, nil)
	}

	if physics.HitsCeiling(ball) {
		physics.ReflectY(ball)
		w.Emit(events.EventCeilingBounce, nil)
	}

	// Lateral only: a ball over the net top passes through
	if physics.HitsNet(ball, w.Net) {
		physics.ReflectX(ball)
		w.Emit(events.EventNetBounce, nil)
	}

	s.strike(w, &w.Player.Body, core.SidePlayer)
	s.strike(w, &w.Opponent.Body, core.SideOpponent)
}

func (s *CollisionSystem) strike(w *engine.World, b *core.Body, side core.Side) {
	if !physics.HitsBody(&w.Ball, b) {
		return
	}
	angle := physics.Strike(&w.Ball, b, w.Params)
	w.Rally++
	w.Emit(events.EventBallStrike, &events.StrikePayload{Side: side, Angle: angle})
}
