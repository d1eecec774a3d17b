package engine

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/input"
)

// Game is the simulation core: a World plus the ordered stage pipeline
// Single-threaded: every method must be called from the loop goroutine
type Game struct {
	world   *World
	systems []System
	router  *events.Router[*World]
	sinks   []ScoreSink
	loop    LoopStarter
}

func NewGame(w *World) *Game {
	g := &Game{
		world:  w,
		router: events.NewRouter[*World](w.queue),
	}
	g.router.Register(scoreRelay{g})
	return g
}

// AddSystem appends a stage; stages run in insertion order
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
}

// RegisterHandler subscribes h to its declared event types
func (g *Game) RegisterHandler(h EventHandler) {
	g.router.Register(h)
}

// AddScoreSink subscribes a score display
func (g *Game) AddScoreSink(s ScoreSink) {
	g.sinks = append(g.sinks, s)
}

// AttachLoop sets the loop that StartMatch ensures is running
func (g *Game) AttachLoop(l LoopStarter) {
	g.loop = l
}

// World exposes the simulation context
func (g *Game) World() *World {
	return g.world
}

// StartMatch goes Live, resets the round and ensures the tick loop runs
// Repeated calls reset the round again and never start a second loop
func (g *Game) StartMatch() {
	g.begin(events.EventMatchStarted)
}

// RestartMatch zeroes both scores, notifies sinks, then starts a fresh match
func (g *Game) RestartMatch() {
	g.world.Score.Reset()
	g.world.MatchID = uuid.Nil
	g.notify(g.world.Score)
	g.begin(events.EventMatchRestarted)
}

// PauseMatch stops the simulation while input keeps being sampled
// Returns false if the match was not live
func (g *Game) PauseMatch() bool {
	w := g.world
	if w.State != core.MatchLive || !w.setState(core.MatchStopped) {
		return false
	}
	w.Emit(events.EventMatchPaused, &events.MatchPayload{MatchID: w.MatchID, Score: w.Score})
	g.router.DispatchAll(w)
	log.Printf("match %s paused at %s", w.MatchID, w.Score)
	return true
}

// ResumeMatch continues a paused match without resetting the round
// Falls back to StartMatch when no match has begun
func (g *Game) ResumeMatch() {
	w := g.world
	if w.MatchID == uuid.Nil {
		g.StartMatch()
		return
	}
	if w.State == core.MatchLive {
		return
	}
	w.setState(core.MatchLive)
	w.Emit(events.EventMatchStarted, &events.MatchPayload{MatchID: w.MatchID, Score: w.Score})
	g.router.DispatchAll(w)
	g.ensureLoop()
}

// TogglePause pauses a live match or resumes a stopped one
func (g *Game) TogglePause() {
	if !g.PauseMatch() {
		g.ResumeMatch()
	}
}

func (g *Game) begin(t events.EventType) {
	w := g.world
	w.setState(core.MatchLive)
	if w.MatchID == uuid.Nil {
		w.MatchID = uuid.New()
	}
	w.ResetRound()
	w.Emit(t, &events.MatchPayload{MatchID: w.MatchID, Score: w.Score})
	g.router.DispatchAll(w)
	log.Printf("match %s %s, score %s", w.MatchID, t, w.Score)
	g.ensureLoop()
}

func (g *Game) ensureLoop() {
	if g.loop != nil {
		g.loop.Ensure()
	}
}

// Tick advances the simulation one fixed step
// Stages flagged RunsWhenStopped execute in every state; the rest only while Live
func (g *Game) Tick(keys input.KeySet) {
	w := g.world
	w.Keys = keys
	w.Tick++

	live := w.Live()
	for _, s := range g.systems {
		if live || s.RunsWhenStopped() {
			s.Update(w)
		}
	}
	g.router.DispatchAll(w)
}

// RenderState returns a value copy of the current world
func (g *Game) RenderState() Snapshot {
	return newSnapshot(g.world)
}

func (g *Game) notify(score core.Score) {
	for _, s := range g.sinks {
		s.ScoreChanged(score)
	}
}

// scoreRelay forwards point events to the score sinks
type scoreRelay struct {
	g *Game
}

func (r scoreRelay) HandleEvent(w *World, ev events.GameEvent) {
	if p, ok := ev.Payload.(*events.PointPayload); ok {
		r.g.notify(p.Score)
		return
	}
	r.g.notify(w.Score)
}

func (r scoreRelay) EventTypes() []events.EventType {
	return []events.EventType{events.EventPointScored}
}
