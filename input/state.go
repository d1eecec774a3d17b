package input

import "time"

// KeyState approximates held keys from press events
// Terminals report presses and auto-repeats but no releases, so a key counts as
// held until hold has elapsed since its last press
type KeyState struct {
	hold time.Duration
	last map[Key]time.Time
}

func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold: hold,
		last: make(map[Key]time.Time),
	}
}

// Press records a press or auto-repeat of k at now
func (s *KeyState) Press(k Key, now time.Time) {
	s.last[k] = now
}

// Release forgets k immediately
func (s *KeyState) Release(k Key) {
	delete(s.last, k)
}

// Clear forgets all keys
func (s *KeyState) Clear() {
	clear(s.last)
}

// Pressed returns keys whose last press is within the hold window and prunes expired ones
func (s *KeyState) Pressed(now time.Time) KeySet {
	ks := make(KeySet, len(s.last))
	for k, at := range s.last {
		if now.Sub(at) < s.hold {
			ks[k] = true
		} else {
			delete(s.last, k)
		}
	}
	return ks
}
