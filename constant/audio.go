package constant

import "time"

// Audio Cues
const (
	// AudioSampleRate is the output rate for the speaker
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// BounceSoundCooldown is the minimum number of ticks between two bounce cues
	BounceSoundCooldown = 10

	// DefaultMasterVolume is the linear master volume (0.0-1.0)
	DefaultMasterVolume = 0.6
)

// Cue Durations
const (
	StrikeSoundDuration = 60 * time.Millisecond
	StrikeSoundAttack   = 2 * time.Millisecond
	StrikeSoundRelease  = 50 * time.Millisecond

	BounceSoundDuration = 40 * time.Millisecond
	BounceSoundAttack   = 1 * time.Millisecond
	BounceSoundRelease  = 30 * time.Millisecond

	JumpSoundDuration = 80 * time.Millisecond
	JumpSoundRelease  = 60 * time.Millisecond

	PointNoteDuration = 90 * time.Millisecond
	ServeNoteDuration = 50 * time.Millisecond
)
