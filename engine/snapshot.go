package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-volley/core"
)

// Snapshot is a read-only value copy of the world for the render pass
type Snapshot struct {
	Player         core.Body
	Opponent       core.Body
	PlayerIntent   core.Intent
	OpponentIntent core.Intent
	Ball           core.Ball
	Net            core.Net
	Court          core.Court
	Scores         core.Score
	State          core.MatchState
	Tick           uint64
	Rally          int
	MatchID        uuid.UUID
}

func newSnapshot(w *World) Snapshot {
	return Snapshot{
		Player:         w.Player.Body,
		Opponent:       w.Opponent.Body,
		PlayerIntent:   w.Player.Intent,
		OpponentIntent: w.Opponent.Intent,
		Ball:           w.Ball,
		Net:            w.Net,
		Court:          w.Court,
		Scores:         w.Score,
		State:          w.State,
		Tick:           w.Tick,
		Rally:          w.Rally,
		MatchID:        w.MatchID,
	}
}
