package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-volley/asset"
	"github.com/lixenwraith/vi-volley/audio"
	"github.com/lixenwraith/vi-volley/config"
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/input"
	"github.com/lixenwraith/vi-volley/render"
	"github.com/lixenwraith/vi-volley/status"
	"github.com/lixenwraith/vi-volley/system"
)

// inboxSize buffers terminal events between the poller and the loop
const inboxSize = 64

// app wires the simulation, terminal and audio together
// Everything except the event poller runs on the loop goroutine
type app struct {
	screen   tcell.Screen
	game     *engine.Game
	loop     *engine.Loop
	router   *input.Router
	renderer *render.Renderer
	sound    *audio.SoundManager // nil when audio is not wired
	reg      *status.Registry
	cancel   context.CancelFunc
}

func newApp(cfg config.Config, screen tcell.Screen, mode render.ColorMode, reg *status.Registry, sound *audio.SoundManager, sprites asset.SpriteSet) *app {
	game := engine.NewGame(engine.NewWorld(cfg.Engine()))
	mapper := input.NewMapper(cfg.Bindings())
	system.Install(game, mapper, reg)

	renderer := render.NewRenderer(screen, mode)
	renderer.SetSprites(sprites)
	renderer.SetStatus(reg)
	game.AddScoreSink(renderer.ScoreBoard())

	if sound != nil {
		game.RegisterHandler(audio.NewCueHandler(sound, cfg.Audio.BounceCooldown))
		reg.Bools.Get(status.KeyAudioMuted).Store(sound.Muted())
	}

	router := input.NewRouter(input.DefaultKeyTable(), mapper, cfg.KeyHold())
	return &app{
		screen:   screen,
		game:     game,
		loop:     engine.NewLoop(game, renderer, router, cfg.TickInterval()),
		router:   router,
		renderer: renderer,
		sound:    sound,
		reg:      reg,
	}
}

// run drives the loop and the terminal poller until quit or ctx cancellation
func (a *app) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.cancel = cancel

	g, ctx := errgroup.WithContext(ctx)
	inbox := make(chan func(), inboxSize)
	events := make(chan tcell.Event, inboxSize)
	quit := make(chan struct{})

	core.Go(func() { a.screen.ChannelEvents(events, quit) })

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return a.loop.Run(ctx, inbox)
	})

	g.Go(func() error {
		defer close(quit)
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return errors.New("terminal event stream closed")
				}
				now := time.Now()
				select {
				case inbox <- func() { a.handleEvent(ev, now) }:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// handleEvent runs on the loop goroutine
func (a *app) handleEvent(ev tcell.Event, now time.Time) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		a.dispatch(a.router.Handle(input.FromTcell(e), now))
	case *tcell.EventResize:
		a.screen.Sync()
		a.loop.Draw()
	}
}

func (a *app) dispatch(cmd input.Command) {
	switch cmd {
	case input.CommandNone:
		return
	case input.CommandStart:
		a.game.StartMatch()
	case input.CommandRestart:
		a.router.Reset()
		a.game.RestartMatch()
	case input.CommandPause:
		a.game.TogglePause()
	case input.CommandMute:
		a.toggleMute()
	case input.CommandQuit:
		log.Printf("quit requested at %s", a.game.World().Score)
		if a.cancel != nil {
			a.cancel()
		}
		return
	}
	a.loop.Draw()
}

func (a *app) toggleMute() {
	if a.sound == nil {
		return
	}
	muted := a.sound.ToggleMute()
	a.reg.Bools.Get(status.KeyAudioMuted).Store(muted)
	log.Printf("audio muted: %v", muted)
}
