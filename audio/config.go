package audio

import (
	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/vmath"
)

// Config controls audio output
type Config struct {
	Enabled       bool
	MasterVolume  float64 // Linear, 0.0-1.0
	SampleRate    int
	Cooldown      uint64 // Minimum ticks between bounce cues
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns enabled audio at the stock volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: constant.DefaultMasterVolume,
		SampleRate:   constant.AudioSampleRate,
		Cooldown:     constant.BounceSoundCooldown,
		EffectVolumes: map[SoundType]float64{
			SoundStrike: 0.8,
			SoundBounce: 0.5,
			SoundJump:   0.3,
			SoundPoint:  0.9,
			SoundServe:  0.4,
		},
	}
}

// volumeFor returns the effective linear volume of a cue
func (c Config) volumeFor(t SoundType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1
	}
	return vmath.Clamp(v*c.MasterVolume, 0, 1)
}
