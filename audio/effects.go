package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a wave generator; sweep bends the pitch linearly over time
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + 7),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a sine note of fixed length, falling back to the local oscillator
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, 0, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), sine)
}

// CreateStrikeSound generates a short square thump that rises in pitch
func CreateStrikeSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(220, 1800, constant.StrikeSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.StrikeSoundDuration, constant.StrikeSoundAttack, constant.StrikeSoundRelease, rate)
	return newVolume(shaped, cfg.volumeFor(SoundStrike))
}

// CreateBounceSound generates a dull noise tick
func CreateBounceSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, 0, constant.BounceSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constant.BounceSoundDuration, constant.BounceSoundAttack, constant.BounceSoundRelease, rate)
	return newVolume(shaped, cfg.volumeFor(SoundBounce))
}

// CreateJumpSound generates a soft upward sweep
func CreateJumpSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(300, 2400, constant.JumpSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constant.JumpSoundDuration, 0, constant.JumpSoundRelease, rate)
	return newVolume(shaped, cfg.volumeFor(SoundJump))
}

// CreatePointSound generates a rising three-note chime (C5 E5 G5)
func CreatePointSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.PointNoteDuration
	seq := beep.Seq(
		tone(rate, 523.25, d),
		tone(rate, 659.25, d),
		tone(rate, 783.99, d),
	)
	return newVolume(seq, cfg.volumeFor(SoundPoint))
}

// CreateServeSound generates a single short high note (A5)
func CreateServeSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(tone(rate, 880, constant.ServeNoteDuration), cfg.volumeFor(SoundServe))
}

// GetSoundEffect returns a fresh streamer for the cue, nil for unknown types
func GetSoundEffect(t SoundType, cfg Config) beep.Streamer {
	switch t {
	case SoundStrike:
		return CreateStrikeSound(cfg)
	case SoundBounce:
		return CreateBounceSound(cfg)
	case SoundJump:
		return CreateJumpSound(cfg)
	case SoundPoint:
		return CreatePointSound(cfg)
	case SoundServe:
		return CreateServeSound(cfg)
	default:
		return nil
	}
}
