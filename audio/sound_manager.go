package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-volley/constant"
)

// output abstracts the speaker package so the manager can run without a device
type output struct {
	init   func(sr beep.SampleRate, bufferSize int) error
	play   func(s ...beep.Streamer)
	lock   func()
	unlock func()
	close  func()
}

var speakerOutput = output{
	init:   speaker.Init,
	play:   speaker.Play,
	lock:   speaker.Lock,
	unlock: speaker.Unlock,
	close:  speaker.Close,
}

// SoundManager mixes cue streamers into a single speaker stream
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	out         output
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a manager; Initialize must succeed before cues are heard
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		out:   speakerOutput,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer stream
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.out.init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return errors.Wrapf(err, "speaker init at %d Hz", sm.cfg.SampleRate)
	}

	sm.out.play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a cue; no-op when muted or not initialized
func (sm *SoundManager) Play(t SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		return
	}

	sm.out.lock()
	sm.mixer.Add(s)
	sm.out.unlock()
	sm.played.Add(1)
}

// SetMuted silences or restores cues and drops anything still playing when muting
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if !muted {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		sm.out.lock()
		sm.mixer.Clear()
		sm.out.unlock()
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Active reports whether the speaker is open
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues queued since start
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// Pending returns the number of cues still mixing
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return 0
	}
	sm.out.lock()
	defer sm.out.unlock()
	return sm.mixer.Len()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.out.lock()
	sm.mixer.Clear()
	sm.out.unlock()

	// Let the device drain the cleared buffer before closing
	time.Sleep(constant.AudioBufferDuration / 2)
	sm.out.close()
	sm.initialized = false
}
