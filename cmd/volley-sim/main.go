// volley-sim runs a headless match against the AI and prints the result
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/vi-volley/config"
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/input"
	"github.com/lixenwraith/vi-volley/status"
	"github.com/lixenwraith/vi-volley/system"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config file")
	ticksFlag   = flag.Int("ticks", 3600, "Number of ticks to simulate")
	seedFlag    = flag.Uint64("seed", 1, "Serve direction seed")
	scriptFlag  = flag.String("script", "chase", "Player input: idle, left, right, jump, chase")
	verboseFlag = flag.Bool("v", false, "Print every point and log to stderr")
)

type result struct {
	Score   core.Score
	Ticks   uint64
	Strikes int64
	Longest int64
	MatchID string
}

// simulate runs ticks steps of a fresh match with the given script
func simulate(cfg config.Config, ticks int, mode string, sink engine.ScoreSink) (result, error) {
	reg := status.NewRegistry()
	game := engine.NewGame(engine.NewWorld(cfg.Engine()))
	mapper := input.NewMapper(cfg.Bindings())
	system.Install(game, mapper, reg)
	if sink != nil {
		game.AddScoreSink(sink)
	}

	src, err := newScript(game.World(), mode, cfg.Bindings())
	if err != nil {
		return result{}, err
	}
	loop := engine.NewLoop(game, nil, src, cfg.TickInterval())
	game.StartMatch()

	// Fixed step: virtual time advances by the configured interval
	now := time.Unix(0, 0)
	for i := 0; i < ticks; i++ {
		now = now.Add(cfg.TickInterval())
		loop.Step(now)
	}

	w := game.World()
	return result{
		Score:   w.Score,
		Ticks:   loop.Steps(),
		Strikes: reg.Ints.Get(status.KeyStrikes).Load(),
		Longest: reg.Ints.Get(status.KeyLongestRally).Load(),
		MatchID: w.MatchID.String(),
	}, nil
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verboseFlag {
		log.SetOutput(os.Stderr)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "volley-sim: %v\n", err)
		os.Exit(1)
	}
	cfg.Loop.Seed = *seedFlag

	var sink engine.ScoreSink
	if *verboseFlag {
		sink = scoreFunc(func(s core.Score) {
			fmt.Printf("point  %s\n", s)
		})
	}

	res, err := simulate(cfg, *ticksFlag, *scriptFlag, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "volley-sim: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("match   %s\n", res.MatchID)
	fmt.Printf("seed    %d\n", *seedFlag)
	fmt.Printf("ticks   %d\n", res.Ticks)
	fmt.Printf("score   %s (player-ai)\n", res.Score)
	fmt.Printf("strikes %d, longest rally %d\n", res.Strikes, res.Longest)
}

// scoreFunc adapts a function to engine.ScoreSink
type scoreFunc func(core.Score)

func (f scoreFunc) ScoreChanged(s core.Score) { f(s) }
