package events

import (
	"testing"

	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/core"
)

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.seen = append(h.seen, ev)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventWallBounce, Tick: uint64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending events, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Tick != uint64(i) {
			t.Errorf("Expected tick %d at index %d, got %d", i, i, ev.Tick)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constant.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventNetBounce, Tick: uint64(i)})
	}

	got := q.Consume()
	if len(got) != constant.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constant.EventQueueSize, len(got))
	}
	if got[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", got[0].Tick)
	}
	t.Logf("✓ Overflow keeps the newest %d events", constant.EventQueueSize)
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	points := &recordingHandler{types: []EventType{EventPointScored}}
	bounces := &recordingHandler{types: []EventType{EventWallBounce, EventNetBounce}}
	r.Register(points)
	r.Register(bounces)

	if !r.HasHandlers(EventPointScored) || r.HasHandlers(EventJump) {
		t.Error("Unexpected handler registration state")
	}
	if r.HandlerCount(EventNetBounce) != 1 {
		t.Errorf("Expected 1 net handler, got %d", r.HandlerCount(EventNetBounce))
	}

	q.Push(GameEvent{Type: EventWallBounce})
	q.Push(GameEvent{Type: EventPointScored, Payload: &PointPayload{Scorer: core.SideOpponent}})
	q.Push(GameEvent{Type: EventNetBounce})
	q.Push(GameEvent{Type: EventJump})

	calls := 0
	if n := r.DispatchAll(&calls); n != 4 {
		t.Errorf("Expected 4 consumed events, got %d", n)
	}
	if calls != 3 {
		t.Errorf("Expected 3 handler calls, got %d", calls)
	}
	if len(points.seen) != 1 || len(bounces.seen) != 2 {
		t.Errorf("Expected 1 point and 2 bounces, got %d and %d", len(points.seen), len(bounces.seen))
	}
	if p := points.seen[0].Payload.(*PointPayload); p.Scorer != core.SideOpponent {
		t.Errorf("Expected opponent scorer, got %s", p.Scorer)
	}
}

func TestEventTypeRegistry(t *testing.T) {
	if EventPointScored.String() != "PointScored" {
		t.Errorf("Expected PointScored, got %s", EventPointScored)
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected Unknown for unregistered type")
	}

	et, ok := GetEventType("ballstrike")
	if !ok || et != EventBallStrike {
		t.Errorf("Expected case-insensitive lookup of BallStrike, got %v %v", et, ok)
	}

	if _, ok := NewPayloadStruct(EventBallStrike).(*StrikePayload); !ok {
		t.Error("Expected StrikePayload for BallStrike")
	}
	if NewPayloadStruct(EventWallBounce) != nil {
		t.Error("Expected nil payload for WallBounce")
	}
}
