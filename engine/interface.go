package engine

//go:generate go tool mockgen -destination=./mocks/engine_mock.go -package=mocks . EventHandler,Frame,LoopStarter,ScoreSink

import (
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/events"
)

// System is one stage of the per-tick pipeline
type System interface {
	// Update advances the stage by one tick
	Update(w *World)

	// RunsWhenStopped reports whether the stage also runs while the match is stopped
	RunsWhenStopped() bool
}

// EventHandler receives routed simulation events
// Satisfies events.Handler[*World]
type EventHandler interface {
	HandleEvent(w *World, ev events.GameEvent)
	EventTypes() []events.EventType
}

// ScoreSink is notified with the full tally on every point and on restart
type ScoreSink interface {
	ScoreChanged(score core.Score)
}

// Frame draws a snapshot; implemented by the render adapter
type Frame interface {
	Draw(s Snapshot)
}

// LoopStarter ensures the tick loop is running; must be idempotent
type LoopStarter interface {
	Ensure()
}
