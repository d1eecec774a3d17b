package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/input"
	"github.com/lixenwraith/vi-volley/status"
)

func newGame(t *testing.T) (*engine.Game, *status.Registry) {
	t.Helper()
	reg := status.NewRegistry()
	g := engine.NewGame(engine.NewWorld(engine.DefaultConfig()))
	Install(g, input.NewMapper(input.DefaultBindings()), reg)
	return g, reg
}

func TestScoringGroundLeftAwardsOpponent(t *testing.T) {
	g, _ := newGame(t)
	g.StartMatch()
	w := g.World()

	w.Ball.X, w.Ball.Y = 50, 479
	w.Ball.VelX, w.Ball.VelY = 0, 2
	g.Tick(nil)

	if w.Score != (core.Score{Opponent: 1}) {
		t.Fatalf("Expected 0-1, got %s", w.Score)
	}
	if w.Ball.X != 400 || w.Ball.Y != 50 || w.Ball.VelY != 0 || math.Abs(w.Ball.VelX) != 5 {
		t.Errorf("Expected reset serve, got %+v", w.Ball)
	}
	if w.GroundContact {
		t.Error("Expected ground flag cleared by the reset")
	}
	if w.State != core.MatchLive {
		t.Errorf("Expected match to stay Live, got %s", w.State)
	}
	t.Logf("✓ Ground left of net scores for the opponent")
}

func TestScoringGroundRightAwardsPlayer(t *testing.T) {
	g, _ := newGame(t)
	g.StartMatch()
	w := g.World()

	w.Ball.X, w.Ball.Y = 750, 479
	w.Ball.VelX, w.Ball.VelY = 0, 2
	g.Tick(nil)

	if w.Score != (core.Score{Player: 1}) {
		t.Fatalf("Expected 1-0, got %s", w.Score)
	}
}

func TestScoringNotifiesSink(t *testing.T) {
	g, _ := newGame(t)
	sink := &recordingSink{}
	g.AddScoreSink(sink)
	g.StartMatch()
	w := g.World()

	w.Ball.X, w.Ball.Y, w.Ball.VelX, w.Ball.VelY = 50, 479, 0, 2
	g.Tick(nil)

	if len(sink.scores) != 1 || sink.scores[0] != (core.Score{Opponent: 1}) {
		t.Errorf("Expected one notification 0-1, got %v", sink.scores)
	}
}

type recordingSink struct{ scores []core.Score }

func (r *recordingSink) ScoreChanged(s core.Score) { r.scores = append(r.scores, s) }

func TestWarmUpWhileStopped(t *testing.T) {
	g, _ := newGame(t)
	w := g.World()
	ballX, ballY := w.Ball.X, w.Ball.Y
	startX := w.Player.X

	g.Tick(input.NewKeySet("a"))
	if w.Player.X != startX-5 {
		t.Errorf("Expected player to move 5 left while stopped, got %v", w.Player.X)
	}

	g.Tick(input.NewKeySet("w"))
	if w.Player.State != core.BodyAirborne || w.Player.VelY != -12 {
		t.Errorf("Expected jump trigger while stopped, got %s vy=%v", w.Player.State, w.Player.VelY)
	}
	if w.Player.Y != w.Player.SpawnY {
		t.Errorf("Expected gravity frozen while stopped, y=%v", w.Player.Y)
	}
	if w.Ball.X != ballX || w.Ball.Y != ballY {
		t.Error("Expected ball frozen while stopped")
	}
}

func TestPlayerBoundaryThroughPipeline(t *testing.T) {
	g, _ := newGame(t)
	g.StartMatch()
	w := g.World()

	for i := 0; i < 200; i++ {
		g.Tick(input.NewKeySet(input.KeyArrowLeft))
		if w.Player.X < 0 {
			t.Fatalf("Expected x >= 0, got %v at tick %d", w.Player.X, i)
		}
	}
	if w.Player.X != 0 {
		t.Errorf("Expected player pinned at 0, got %v", w.Player.X)
	}

	for i := 0; i < 200; i++ {
		g.Tick(input.NewKeySet("d"))
	}
	if w.Player.X+w.Player.Width != w.Court.CenterX() {
		t.Errorf("Expected player pinned at the net, right edge %v", w.Player.X+w.Player.Width)
	}
}

func TestFirstLiveTicksDropBodiesToRest(t *testing.T) {
	g, _ := newGame(t)
	g.StartMatch()
	w := g.World()

	for i := 0; i < 20; i++ {
		g.Tick(nil)
	}
	rest := w.Court.FloorY() - w.Player.Height
	if w.Player.Y != rest || w.Player.State != core.BodyGrounded {
		t.Errorf("Expected player resting at %v, got y=%v %s", rest, w.Player.Y, w.Player.State)
	}
}

func TestNetReflectsBelowTop(t *testing.T) {
	g, _ := newGame(t)
	g.StartMatch()
	w := g.World()

	w.Ball.X, w.Ball.Y = 375, 430
	w.Ball.VelX, w.Ball.VelY = 5, -0.5
	g.Tick(nil)

	if w.Ball.VelX != -5 {
		t.Errorf("Expected net reflection vx=-5, got %v", w.Ball.VelX)
	}
}

func TestNetTopTunneling(t *testing.T) {
	g, _ := newGame(t)
	g.StartMatch()
	w := g.World()

	// Ball skims above the net top and crosses without reflection
	w.Ball.X, w.Ball.Y = 380, 300
	w.Ball.VelX, w.Ball.VelY = 5, -0.5
	for i := 0; i < 10; i++ {
		g.Tick(nil)
	}
	if w.Ball.X <= 400 {
		t.Errorf("Expected ball to pass over the net, x=%v", w.Ball.X)
	}
}

func TestWallBounceThroughPipeline(t *testing.T) {
	g, reg := newGame(t)
	g.StartMatch()
	w := g.World()

	w.Ball.X, w.Ball.Y = 24, 200
	w.Ball.VelX, w.Ball.VelY = -5, 0
	g.Tick(nil)

	if w.Ball.VelX != 5 {
		t.Errorf("Expected wall reflection vx=5, got %v", w.Ball.VelX)
	}
	if got := reg.Ints.Get(status.KeyBounces).Load(); got != 1 {
		t.Errorf("Expected 1 bounce counted, got %d", got)
	}
}

func TestBodyStrikeThroughPipeline(t *testing.T) {
	g, reg := newGame(t)
	g.StartMatch()
	w := g.World()

	// Let bodies settle, then drop the ball onto the player's right shoulder
	for i := 0; i < 20; i++ {
		g.Tick(nil)
	}
	w.Ball.X = w.Player.CenterX() + 20
	w.Ball.Y = w.Player.Y - 25
	w.Ball.VelX, w.Ball.VelY = 0, 6
	g.Tick(nil)

	if w.Ball.VelY != -8 {
		t.Errorf("Expected kick vy=-8, got %v", w.Ball.VelY)
	}
	if w.Ball.VelX <= 0 || w.Ball.VelX > 5 {
		t.Errorf("Expected rightward angled kick within bound, got %v", w.Ball.VelX)
	}
	if w.Rally != 1 {
		t.Errorf("Expected rally 1, got %d", w.Rally)
	}
	if got := reg.Ints.Get(status.KeyStrikes).Load(); got != 1 {
		t.Errorf("Expected 1 strike counted, got %d", got)
	}
}

func TestLongRunKeepsInvariants(t *testing.T) {
	g, reg := newGame(t)
	g.StartMatch()
	w := g.World()

	prev := w.Score
	keys := []input.KeySet{
		input.NewKeySet("a"), input.NewKeySet("d", "w"), nil, input.NewKeySet(input.KeySpace),
	}
	for i := 0; i < 20000; i++ {
		g.Tick(keys[(i/37)%len(keys)])

		if w.Player.X < 0 || w.Player.X+w.Player.Width > w.Court.CenterX() {
			t.Fatalf("Player left its half at tick %d: x=%v", i, w.Player.X)
		}
		if w.Opponent.X < w.Court.CenterX() || w.Opponent.X+w.Opponent.Width > w.Court.Width {
			t.Fatalf("Opponent left its half at tick %d: x=%v", i, w.Opponent.X)
		}
		for _, b := range []*core.Body{&w.Player.Body, &w.Opponent.Body} {
			if b.Y < 0 || b.Y > w.Court.FloorY()-b.Height {
				t.Fatalf("Body y out of range at tick %d: %v", i, b.Y)
			}
		}
		if w.Score.Player < prev.Player || w.Score.Opponent < prev.Opponent {
			t.Fatalf("Score decreased at tick %d: %s -> %s", i, prev, w.Score)
		}
		prev = w.Score
	}

	total := w.Score.Player + w.Score.Opponent
	if total == 0 {
		t.Error("Expected points to be scored over 20000 ticks")
	}
	if reg.Ints.Get(status.KeyPointsPlayer).Load()+reg.Ints.Get(status.KeyPointsOpponent).Load() != int64(total) {
		t.Error("Expected registry points to match the score")
	}
	t.Logf("✓ 20000 ticks, score %s, longest rally %d", w.Score, reg.Ints.Get(status.KeyLongestRally).Load())
}
