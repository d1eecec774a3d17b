package main

import (
	"testing"

	"github.com/lixenwraith/vi-volley/config"
	"github.com/lixenwraith/vi-volley/core"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Loop.Seed = 99

	a, err := simulate(cfg, 2000, "chase", nil)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	b, err := simulate(cfg, 2000, "chase", nil)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if a.Ticks != 2000 {
		t.Errorf("Expected 2000 ticks, got %d", a.Ticks)
	}
	if a.Score != b.Score || a.Strikes != b.Strikes || a.Longest != b.Longest {
		t.Errorf("Expected identical runs for one seed, got %+v and %+v", a, b)
	}
	if a.MatchID == b.MatchID {
		t.Error("Expected a fresh match id per run")
	}
}

func TestSimulateReportsPoints(t *testing.T) {
	cfg := config.Default()
	var points int
	sink := scoreFunc(func(core.Score) { points++ })

	res, err := simulate(cfg, 5000, "left", sink)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if total := res.Score.Player + res.Score.Opponent; total != points {
		t.Errorf("Expected one sink call per point, got %d calls for score %s", points, res.Score)
	}
}

func TestSimulateRejectsUnknownScript(t *testing.T) {
	if _, err := simulate(config.Default(), 10, "dance", nil); err == nil {
		t.Error("Expected error for unknown script")
	}
}
