package main

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/input"
)

// script is a scripted KeySource reading the world it drives
// Sampled on the simulation goroutine just before each tick
type script struct {
	world *engine.World
	mode  string
	b     input.Bindings
}

var scriptModes = []string{"idle", "left", "right", "jump", "chase"}

func newScript(w *engine.World, mode string, b input.Bindings) (*script, error) {
	for _, m := range scriptModes {
		if m == mode {
			return &script{world: w, mode: mode, b: b}, nil
		}
	}
	return nil, errors.Errorf("unknown script %q, want one of %v", mode, scriptModes)
}

func (s *script) Pressed(time.Time) input.KeySet {
	keys := input.NewKeySet()
	first := func(list []input.Key) {
		if len(list) > 0 {
			keys[list[0]] = true
		}
	}

	switch s.mode {
	case "left":
		first(s.b.Left)
	case "right":
		first(s.b.Right)
	case "jump":
		first(s.b.Jump)
	case "chase":
		p, ball := &s.world.Player.Body, &s.world.Ball
		switch {
		case ball.X < p.CenterX()-p.Width/4:
			first(s.b.Left)
		case ball.X > p.CenterX()+p.Width/4:
			first(s.b.Right)
		}
		if ball.VelY > 0 && ball.Bottom() > p.Y-2*p.Height && ball.X < s.world.Court.CenterX() {
			first(s.b.Jump)
		}
	}
	return keys
}
