package system

import (
	"math"

	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/physics"
)

// AITuning holds the opponent's decision thresholds in world units
type AITuning struct {
	DeadZone    float64 // Center offset tolerated before moving
	Reach       float64 // Max horizontal distance for a jump attempt
	FloorMargin float64 // Ball must be at least this far above the floor to jump
}

func DefaultAITuning() AITuning {
	return AITuning{
		DeadZone:    constant.AITrackDeadZone,
		Reach:       constant.AIJumpReach,
		FloorMargin: constant.AIJumpFloorMargin,
	}
}

// JumpGate records each jump condition separately
type JumpGate struct {
	BallOnOwnSide bool
	BallInBand    bool // Below mid-height and above the floor margin
	BallFalling   bool
	Grounded      bool
	InReach       bool
}

// Open reports whether all conditions hold
func (g JumpGate) Open() bool {
	return g.BallOnOwnSide && g.BallInBand && g.BallFalling && g.Grounded && g.InReach
}

// AIDecision is the opponent's intent for one tick with the gate that produced the jump flag
type AIDecision struct {
	Intent core.Intent
	Gate   JumpGate
}

// DecideAI evaluates the opponent's move with default tuning
func DecideAI(w *engine.World) AIDecision {
	return DefaultAITuning().Decide(w)
}

// Decide evaluates tracking and the jump gate against the current ball state
// Pure: reads the world and changes nothing
func (t AITuning) Decide(w *engine.World) AIDecision {
	o := &w.Opponent.Body
	ball := &w.Ball
	center := o.CenterX()

	var d AIDecision
	switch {
	case ball.X > center+t.DeadZone:
		d.Intent.MoveRight = true
	case ball.X < center-t.DeadZone:
		d.Intent.MoveLeft = true
	}

	d.Gate = JumpGate{
		BallOnOwnSide: ball.X > w.Court.CenterX(),
		BallInBand:    ball.Y > w.Court.Height/2 && ball.Y < w.Court.FloorY()-t.FloorMargin,
		BallFalling:   ball.VelY > 0,
		Grounded:      o.Grounded(),
		InReach:       math.Abs(ball.X-center) < t.Reach,
	}
	d.Intent.Jump = d.Gate.Open()
	return d
}

// AISystem drives the opponent body from DecideAI
type AISystem struct {
	tuning AITuning
}

func NewAISystem(t AITuning) *AISystem {
	return &AISystem{tuning: t}
}

func (s *AISystem) RunsWhenStopped() bool { return false }

func (s *AISystem) Update(w *engine.World) {
	d := s.tuning.Decide(w)
	w.Opponent.Intent = d.Intent

	physics.MoveX(&w.Opponent.Body, d.Intent.MoveLeft, d.Intent.MoveRight, w.Params.AISpeed)
	if d.Intent.Jump && physics.Jump(&w.Opponent.Body, w.Params.JumpForce*w.Params.AIJumpFactor) {
		w.Emit(events.EventJump, &events.JumpPayload{Side: core.SideOpponent})
	}
}
