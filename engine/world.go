package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/input"
	"github.com/lixenwraith/vi-volley/physics"
	"github.com/lixenwraith/vi-volley/vmath"
)

// Config is the static setup of a World
type Config struct {
	Court    core.Court
	Geometry core.Geometry
	Params   physics.Params
	Seed     uint64 // Serve direction source; 0 is remapped to 1
}

// DefaultConfig returns the stock court, geometry and tuning
func DefaultConfig() Config {
	return Config{
		Court:    core.DefaultCourt(),
		Geometry: core.DefaultGeometry(),
		Params:   physics.DefaultParams(),
		Seed:     1,
	}
}

// World is the single simulation context passed to every pipeline stage
// Owned by one goroutine; no internal locking
type World struct {
	Court    core.Court
	Geometry core.Geometry
	Params   physics.Params

	Player   core.Player
	Opponent core.Opponent
	Ball     core.Ball
	Net      core.Net

	Score   core.Score
	State   core.MatchState
	MatchID uuid.UUID

	// Tick counts every Game.Tick call, including stopped ones
	Tick uint64

	// Keys held during the current tick
	Keys input.KeySet

	// GroundContact is raised by collision resolution and cleared by the round reset
	GroundContact bool

	// Rally counts body strikes since the last serve
	Rally int

	rng   *vmath.FastRand
	queue *events.EventQueue
}

// NewWorld creates entities from the court geometry, stopped and at rest
func NewWorld(cfg Config) *World {
	return &World{
		Court:    cfg.Court,
		Geometry: cfg.Geometry,
		Params:   cfg.Params,
		Player:   core.NewPlayer(cfg.Court, cfg.Geometry),
		Opponent: core.NewOpponent(cfg.Court, cfg.Geometry),
		Ball:     core.NewBall(cfg.Court, cfg.Geometry),
		Net:      core.NewNet(cfg.Court, cfg.Geometry.NetWidth, cfg.Geometry.NetHeight),
		State:    core.MatchStopped,
		rng:      vmath.NewFastRand(cfg.Seed),
		queue:    events.NewEventQueue(),
	}
}

// SetRand replaces the serve direction source
func (w *World) SetRand(r *vmath.FastRand) {
	w.rng = r
}

// ResetRound returns all entities to spawn and serves the ball toward a random side
func (w *World) ResetRound() {
	w.Player.Respawn()
	w.Player.Intent = core.Intent{}
	w.Opponent.Respawn()
	w.Opponent.Intent = core.Intent{}

	velX := w.Params.BallSpeedX
	if !w.rng.Coin() {
		velX = -velX
	}
	w.Ball.Respawn(velX)

	w.GroundContact = false
	w.Rally = 0
	w.Emit(events.EventRoundReset, &events.ServePayload{VelX: velX})
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t events.EventType, payload any) {
	w.queue.Push(events.GameEvent{Type: t, Tick: w.Tick, Payload: payload})
}

// Live reports whether the full pipeline runs
func (w *World) Live() bool {
	return w.State == core.MatchLive
}

// setState applies a validated state change
func (w *World) setState(to core.MatchState) bool {
	if !core.CanTransition(w.State, to) {
		return false
	}
	w.State = to
	return true
}
