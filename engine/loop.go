package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/input"
)

// Loop drives a Game at a fixed interval from a single goroutine
// Before the first start it only redraws at the idle interval
type Loop struct {
	game     *Game
	frame    Frame
	keys     input.KeySource
	interval time.Duration
	idle     time.Duration

	running atomic.Bool
	startCh chan struct{}
	steps   atomic.Uint64
}

// NewLoop creates a loop and attaches it to the game
// frame and keys may be nil for headless runs
func NewLoop(g *Game, frame Frame, keys input.KeySource, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = constant.TickInterval
	}
	l := &Loop{
		game:     g,
		frame:    frame,
		keys:     keys,
		interval: interval,
		idle:     constant.IdleFrameInterval,
		startCh:  make(chan struct{}),
	}
	g.AttachLoop(l)
	return l
}

// Ensure switches the loop from idle to ticking; later calls are no-ops
func (l *Loop) Ensure() {
	if l.running.CompareAndSwap(false, true) {
		close(l.startCh)
		log.Printf("tick loop started, interval %v", l.interval)
	}
}

// Running reports whether ticking has begun
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Steps returns the number of ticks executed by the loop
func (l *Loop) Steps() uint64 {
	return l.steps.Load()
}

// Step samples held keys, advances one tick and draws the result
func (l *Loop) Step(now time.Time) {
	var keys input.KeySet
	if l.keys != nil {
		keys = l.keys.Pressed(now)
	}
	l.game.Tick(keys)
	l.steps.Add(1)
	l.Draw()
}

// Draw renders the current snapshot
func (l *Loop) Draw() {
	if l.frame != nil {
		l.frame.Draw(l.game.RenderState())
	}
}

// Run serves inbox functions and ticks until ctx is cancelled
// Inbox functions run on the loop goroutine and may use the Game freely
func (l *Loop) Run(ctx context.Context, inbox <-chan func()) error {
	l.Draw()

	if !l.running.Load() {
		idle := time.NewTicker(l.idle)
	idleLoop:
		for {
			select {
			case <-ctx.Done():
				idle.Stop()
				return ctx.Err()
			case fn, ok := <-inbox:
				if !ok {
					inbox = nil
					continue
				}
				fn()
			case <-idle.C:
				l.Draw()
			case <-l.startCh:
				break idleLoop
			}
		}
		idle.Stop()
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("tick loop stopped after %d steps", l.steps.Load())
			return ctx.Err()
		case fn, ok := <-inbox:
			if !ok {
				inbox = nil
				continue
			}
			fn()
		case now := <-ticker.C:
			l.Step(now)
		}
	}
}
