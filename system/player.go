package system

import (
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/input"
	"github.com/lixenwraith/vi-volley/physics"
)

// PlayerSystem applies held keys to the player body
// Runs in every match state so the player can warm up before a start
type PlayerSystem struct {
	mapper *input.Mapper
}

func NewPlayerSystem(mapper *input.Mapper) *PlayerSystem {
	if mapper == nil {
		mapper = input.NewMapper(input.DefaultBindings())
	}
	return &PlayerSystem{mapper: mapper}
}

func (s *PlayerSystem) RunsWhenStopped() bool { return true }

func (s *PlayerSystem) Update(w *engine.World) {
	intent := s.mapper.Map(w.Keys)
	w.Player.Intent = intent

	physics.MoveX(&w.Player.Body, intent.MoveLeft, intent.MoveRight, w.Params.PlayerSpeed)
	if intent.Jump && physics.Jump(&w.Player.Body, w.Params.JumpForce) {
		w.Emit(events.EventJump, &events.JumpPayload{Side: core.SidePlayer})
	}
}
