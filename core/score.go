package core

import "fmt"

// Side identifies a half of the court and its owner
type Side uint8

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideOpponent:
		return "Opponent"
	default:
		return "Unknown"
	}
}

// Score holds the match tally; counters never decrease except on reset
type Score struct {
	Player   int
	Opponent int
}

// Award adds one point to the given side
func (s *Score) Award(side Side) {
	switch side {
	case SidePlayer:
		s.Player++
	case SideOpponent:
		s.Opponent++
	}
}

// Reset zeroes both counters
func (s *Score) Reset() {
	*s = Score{}
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Player, s.Opponent)
}
