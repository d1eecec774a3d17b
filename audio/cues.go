package audio

import (
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/events"
)

// CueHandler turns simulation events into sound cues
// Bounce cues share a tick cooldown so a ball rattling against the net does not stack sounds
type CueHandler struct {
	player     Player
	cooldown   uint64
	lastBounce uint64
	bounced    bool
}

func NewCueHandler(p Player, cooldown uint64) *CueHandler {
	return &CueHandler{player: p, cooldown: cooldown}
}

func (h *CueHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBallStrike,
		events.EventWallBounce,
		events.EventCeilingBounce,
		events.EventNetBounce,
		events.EventJump,
		events.EventPointScored,
		events.EventRoundReset,
	}
}

func (h *CueHandler) HandleEvent(_ *engine.World, ev events.GameEvent) {
	switch ev.Type {
	case events.EventBallStrike:
		h.player.Play(SoundStrike)
	case events.EventWallBounce, events.EventCeilingBounce, events.EventNetBounce:
		if h.bounced && ev.Tick-h.lastBounce < h.cooldown {
			return
		}
		h.bounced = true
		h.lastBounce = ev.Tick
		h.player.Play(SoundBounce)
	case events.EventJump:
		h.player.Play(SoundJump)
	case events.EventPointScored:
		h.player.Play(SoundPoint)
	case events.EventRoundReset:
		h.player.Play(SoundServe)
	}
}
