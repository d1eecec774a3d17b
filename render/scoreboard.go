package render

import (
	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/core"
)

// ScoreBoard tracks the displayed tally and flashes the side that just scored
// Notified from the loop goroutine, read by Draw on the same goroutine
type ScoreBoard struct {
	score     core.Score
	flashSide core.Side
	flashLeft int
	updates   int
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{}
}

// ScoreChanged implements engine.ScoreSink
func (b *ScoreBoard) ScoreChanged(s core.Score) {
	switch {
	case s.Player > b.score.Player:
		b.flashSide, b.flashLeft = core.SidePlayer, constant.ScoreFlashFrames
	case s.Opponent > b.score.Opponent:
		b.flashSide, b.flashLeft = core.SideOpponent, constant.ScoreFlashFrames
	default:
		b.flashLeft = 0
	}
	b.score = s
	b.updates++
}

func (b *ScoreBoard) Score() core.Score { return b.score }
func (b *ScoreBoard) Updates() int      { return b.updates }

// Flash returns the flashing side and its intensity in [0, 1]
func (b *ScoreBoard) Flash() (core.Side, float64) {
	if b.flashLeft <= 0 {
		return b.flashSide, 0
	}
	return b.flashSide, float64(b.flashLeft) / float64(constant.ScoreFlashFrames)
}

// advance consumes one flash frame
func (b *ScoreBoard) advance() {
	if b.flashLeft > 0 {
		b.flashLeft--
	}
}
