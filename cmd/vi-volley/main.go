package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-volley/asset"
	"github.com/lixenwraith/vi-volley/audio"
	"github.com/lixenwraith/vi-volley/config"
	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/render"
	"github.com/lixenwraith/vi-volley/service"
	"github.com/lixenwraith/vi-volley/status"
)

var (
	configFlag = flag.String("config", constant.DefaultConfig, "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+constant.LogDir+"/"+constant.LogFileName)
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Uint64("seed", 0, "Serve direction seed (0 uses the clock)")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-volley: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logFile := setupLogging(*debugFlag)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return errors.Wrap(err, "environment")
	}
	if logFile == nil && cfg.Log.Debug {
		logFile = setupLogging(true)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *muteFlag {
		cfg.Audio.Muted = true
	}
	if *seedFlag != 0 {
		cfg.Loop.Seed = *seedFlag
	}
	if cfg.Loop.Seed == 0 {
		cfg.Loop.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d, tick %v", cfg.Loop.Seed, cfg.TickInterval())

	mode, err := render.ParseColorMode(*colorFlag)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use volley-sim for headless runs")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	defer screen.Fini()
	core.RegisterCrashScreen(screen)
	screen.HideCursor()

	reg := status.NewRegistry()
	hub := service.NewHub()
	audioSvc := audio.NewService()
	spriteSvc := asset.NewSpriteService()
	for _, svc := range []service.Service{status.NewService(reg), audioSvc, spriteSvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	if err := hub.InitAll(cfg.AudioSettings(), cfg.Audio.Muted, cfg.Assets.SpriteDir); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	log.Printf("services started: %v", hub.Order())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(cfg, screen, mode, reg, audioSvc.Manager(), spriteSvc.Sprites())
	return a.run(ctx)
}
