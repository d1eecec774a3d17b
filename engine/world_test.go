package engine

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/vmath"
)

func TestNewWorldStartsStopped(t *testing.T) {
	w := NewWorld(DefaultConfig())
	if w.State != core.MatchStopped {
		t.Errorf("Expected Stopped, got %s", w.State)
	}
	if w.Ball.VelX != 0 || w.Ball.VelY != 0 {
		t.Errorf("Expected ball at rest, got (%v,%v)", w.Ball.VelX, w.Ball.VelY)
	}
	if w.Score != (core.Score{}) {
		t.Errorf("Expected 0-0, got %s", w.Score)
	}
}

func TestResetRoundRestoresGeometry(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.Player.X, w.Player.Y, w.Player.VelY, w.Player.State = 10, 300, -4, core.BodyAirborne
	w.Opponent.X, w.Opponent.VelY = 700, 3
	w.Ball.X, w.Ball.Y, w.Ball.VelY = 123, 456, 9
	w.GroundContact = true
	w.Rally = 7

	w.ResetRound()

	if w.Player.X != 150 || w.Player.Y != 400 || w.Player.VelY != 0 || w.Player.State != core.BodyGrounded {
		t.Errorf("Expected player respawned, got %+v", w.Player.Body)
	}
	if w.Opponent.X != 570 || w.Opponent.VelY != 0 {
		t.Errorf("Expected opponent respawned, got %+v", w.Opponent.Body)
	}
	if w.Ball.X != 400 || w.Ball.Y != 50 || w.Ball.VelY != 0 {
		t.Errorf("Expected ball at serve point, got %+v", w.Ball)
	}
	if w.GroundContact || w.Rally != 0 {
		t.Error("Expected ground flag and rally cleared")
	}

	evs := w.queue.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventRoundReset {
		t.Fatalf("Expected one RoundReset event, got %v", evs)
	}
	if p := evs[0].Payload.(*events.ServePayload); p.VelX != w.Ball.VelX {
		t.Errorf("Expected payload vx %v, got %v", w.Ball.VelX, p.VelX)
	}
}

func TestResetRoundVelocityLawProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := NewWorld(DefaultConfig())
		w.SetRand(vmath.NewFastRand(rapid.Uint64().Draw(t, "seed")))
		w.Ball.VelX = rapid.Float64Range(-50, 50).Draw(t, "vx")
		w.Ball.VelY = rapid.Float64Range(-50, 50).Draw(t, "vy")

		w.ResetRound()

		if math.Abs(w.Ball.VelX) != w.Params.BallSpeedX {
			t.Fatalf("|vx| = %v, expected %v", math.Abs(w.Ball.VelX), w.Params.BallSpeedX)
		}
		if w.Ball.VelY != 0 {
			t.Fatalf("vy = %v, expected 0", w.Ball.VelY)
		}
	})
}

func TestResetRoundServeBalance(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.SetRand(vmath.NewFastRand(98765))

	const rounds = 10000
	right := 0
	for i := 0; i < rounds; i++ {
		w.ResetRound()
		w.queue.Consume()
		if w.Ball.VelX > 0 {
			right++
		}
	}
	ratio := float64(right) / rounds
	if ratio < 0.47 || ratio > 0.53 {
		t.Errorf("Expected serve direction near 50/50, got %.3f", ratio)
	}
	t.Logf("✓ Serve ratio %.3f over %d rounds", ratio, rounds)
}
