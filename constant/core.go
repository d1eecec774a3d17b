package constant

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed simulation step, paced to a ~60 Hz display refresh
	// Physics constants are per tick, changing this changes the feel of the game
	TickInterval = 16 * time.Millisecond

	// IdleFrameInterval paces redraws before the first match start
	IdleFrameInterval = 100 * time.Millisecond

	// KeyHoldWindow is how long a key counts as held after its last press event
	// Terminals report no key release, auto-repeat refreshes the press
	KeyHoldWindow = 150 * time.Millisecond
)

// Event Limits
const (
	// EventQueueSize is the ring capacity, must be a power of two
	// A tick emits a handful of events; overflow drops the oldest
	EventQueueSize  = 64
	EventBufferMask = EventQueueSize - 1
)
