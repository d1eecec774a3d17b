package audio

import "github.com/pkg/errors"

// SoundType identifies a gameplay cue
type SoundType int

const (
	SoundStrike SoundType = iota // Body kicks the ball
	SoundBounce                  // Wall, ceiling or net reflection
	SoundJump                    // Body leaves the floor
	SoundPoint                   // Point scored
	SoundServe                   // New round served
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundStrike:
		return "strike"
	case SoundBounce:
		return "bounce"
	case SoundJump:
		return "jump"
	case SoundPoint:
		return "point"
	case SoundServe:
		return "serve"
	default:
		return "unknown"
	}
}

// Player plays cues; implemented by SoundManager
type Player interface {
	Play(t SoundType)
}

// ErrDisabled is returned when audio output is turned off by configuration
var ErrDisabled = errors.New("audio disabled")
