package system

import (
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/physics"
)

// PhysicsSystem integrates gravity for both bodies and moves the ball
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) RunsWhenStopped() bool { return false }

func (s *PhysicsSystem) Update(w *engine.World) {
	floor := w.Court.FloorY()
	g := w.Params.Gravity

	if physics.ApplyGravity(&w.Player.Body, g, floor) {
		w.Emit(events.EventLanded, &events.JumpPayload{Side: core.SidePlayer})
	}
	if physics.ApplyGravity(&w.Opponent.Body, g, floor) {
		w.Emit(events.EventLanded, &events.JumpPayload{Side: core.SideOpponent})
	}
	physics.IntegrateBall(&w.Ball, g)
}
