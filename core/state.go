package core

// MatchState gates the simulation stages that run each tick
type MatchState uint8

const (
	// MatchStopped samples input only; the ball and gravity are frozen
	MatchStopped MatchState = iota
	// MatchLive runs the full pipeline
	MatchLive
)

func (s MatchState) String() string {
	switch s {
	case MatchStopped:
		return "Stopped"
	case MatchLive:
		return "Live"
	default:
		return "Unknown"
	}
}

// validTransitions lists the permitted match state moves
// Live -> Live is a restart
var validTransitions = map[MatchState][]MatchState{
	MatchStopped: {MatchLive},
	MatchLive:    {MatchLive, MatchStopped},
}

// CanTransition checks if moving from one state to another is permitted
func CanTransition(from, to MatchState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
