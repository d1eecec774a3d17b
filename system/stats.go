package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/events"
	"github.com/lixenwraith/vi-volley/status"
)

// StatsSystem publishes simulation counters to the status registry
// Runs as the last stage and as an event handler
type StatsSystem struct {
	ticks     *atomic.Int64
	rally     *atomic.Int64
	longest   *atomic.Int64
	strikes   *atomic.Int64
	bounces   *atomic.Int64
	jumps     *atomic.Int64
	player    *atomic.Int64
	opponent  *atomic.Int64
	peakSpeed *status.AtomicFloat
	matchID   *status.AtomicString
	state     *status.AtomicString
	live      *atomic.Bool
}

func NewStatsSystem(reg *status.Registry) *StatsSystem {
	return &StatsSystem{
		ticks:     reg.Ints.Get(status.KeyTicks),
		rally:     reg.Ints.Get(status.KeyRally),
		longest:   reg.Ints.Get(status.KeyLongestRally),
		strikes:   reg.Ints.Get(status.KeyStrikes),
		bounces:   reg.Ints.Get(status.KeyBounces),
		jumps:     reg.Ints.Get(status.KeyJumps),
		player:    reg.Ints.Get(status.KeyPointsPlayer),
		opponent:  reg.Ints.Get(status.KeyPointsOpponent),
		peakSpeed: reg.Floats.Get(status.KeyBallPeakSpeed),
		matchID:   reg.Strings.Get(status.KeyMatchID),
		state:     reg.Strings.Get(status.KeyMatchState),
		live:      reg.Bools.Get(status.KeyMatchLive),
	}
}

func (s *StatsSystem) RunsWhenStopped() bool { return true }

func (s *StatsSystem) Update(w *engine.World) {
	s.ticks.Store(int64(w.Tick))
	s.rally.Store(int64(w.Rally))
	s.state.Store(w.State.String())
	s.live.Store(w.Live())
	if w.Live() {
		s.peakSpeed.Max(math.Hypot(w.Ball.VelX, w.Ball.VelY))
	}
}

func (s *StatsSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventMatchStarted,
		events.EventMatchRestarted,
		events.EventPointScored,
		events.EventBallStrike,
		events.EventWallBounce,
		events.EventCeilingBounce,
		events.EventNetBounce,
		events.EventJump,
	}
}

func (s *StatsSystem) HandleEvent(w *engine.World, ev events.GameEvent) {
	switch ev.Type {
	case events.EventMatchStarted, events.EventMatchRestarted:
		s.matchID.Store(w.MatchID.String())
		s.setScore(w.Score)
		if ev.Type == events.EventMatchRestarted {
			s.longest.Store(0)
			s.strikes.Store(0)
			s.peakSpeed.Set(0)
		}
	case events.EventPointScored:
		p := ev.Payload.(*events.PointPayload)
		s.setScore(p.Score)
		if int64(p.Rally) > s.longest.Load() {
			s.longest.Store(int64(p.Rally))
		}
	case events.EventBallStrike:
		s.strikes.Add(1)
	case events.EventWallBounce, events.EventCeilingBounce, events.EventNetBounce:
		s.bounces.Add(1)
	case events.EventJump:
		s.jumps.Add(1)
	}
}

func (s *StatsSystem) setScore(sc core.Score) {
	s.player.Store(int64(sc.Player))
	s.opponent.Store(int64(sc.Opponent))
}
