package system

import (
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/input"
	"github.com/lixenwraith/vi-volley/status"
)

// Install wires the tick pipeline onto g in execution order:
// input, AI, physics, collision, scoring, stats
// reg may be nil to skip stats
func Install(g *engine.Game, mapper *input.Mapper, reg *status.Registry) {
	g.AddSystem(NewPlayerSystem(mapper))
	g.AddSystem(NewAISystem(DefaultAITuning()))
	g.AddSystem(NewPhysicsSystem())
	g.AddSystem(NewCollisionSystem())
	g.AddSystem(NewScoreSystem())

	if reg != nil {
		stats := NewStatsSystem(reg)
		g.AddSystem(stats)
		g.RegisterHandler(stats)
	}
}
