package system

import (
	"log"

	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/events"
)

// ScoreSystem awards the point for a grounded ball and starts the next round
// The side whose half the ball landed in concedes
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) RunsWhenStopped() bool { return false }

func (s *ScoreSystem) Update(w *engine.World) {
	if !w.GroundContact {
		return
	}

	scorer := core.SidePlayer
	if w.Ball.X < w.Court.CenterX() {
		scorer = core.SideOpponent
	}
	w.Score.Award(scorer)

	w.Emit(events.EventPointScored, &events.PointPayload{
		Scorer: scorer,
		Score:  w.Score,
		BallX:  w.Ball.X,
		Rally:  w.Rally,
	})
	log.Printf("point %s at x=%.1f after %d strikes, score %s", scorer, w.Ball.X, w.Rally, w.Score)

	w.ResetRound()
}
