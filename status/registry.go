package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the simulation and read by the HUD
const (
	KeyTicks          = "sim.ticks"
	KeyStrikes        = "rally.strikes"
	KeyRally          = "rally.current"
	KeyLongestRally   = "rally.longest"
	KeyPointsPlayer   = "points.player"
	KeyPointsOpponent = "points.opponent"
	KeyBounces        = "ball.bounces"
	KeyJumps          = "body.jumps"
	KeyBallPeakSpeed  = "ball.peak_speed"
	KeyMatchID        = "match.id"
	KeyMatchState     = "match.state"
	KeyMatchLive      = "match.live"
	KeyAudioMuted     = "audio.muted"
)

// Registry is the central metrics facade
// Handlers cache pointers during init; updates write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Format renders the named integer metrics as "key=value" pairs
// Unregistered keys are skipped without being created
func (r *Registry) Format(keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if !r.Ints.Has(k) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", k[strings.LastIndexByte(k, '.')+1:], r.Ints.Get(k).Load()))
	}
	return strings.Join(parts, " ")
}
