// Package config loads game settings from TOML over the embedded defaults
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-volley/asset"
	"github.com/lixenwraith/vi-volley/audio"
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/input"
	"github.com/lixenwraith/vi-volley/physics"
)

type Config struct {
	Court   CourtConfig   `toml:"court"`
	Physics PhysicsConfig `toml:"physics"`
	Loop    LoopConfig    `toml:"loop"`
	Audio   AudioConfig   `toml:"audio"`
	Keys    KeysConfig    `toml:"keys"`
	Assets  AssetsConfig  `toml:"assets"`
	Log     LogConfig     `toml:"log"`
}

type CourtConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PhysicsConfig values are per tick; y grows downward
type PhysicsConfig struct {
	Gravity      float64 `toml:"gravity"`
	JumpForce    float64 `toml:"jump_force"`
	PlayerSpeed  float64 `toml:"player_speed"`
	AISpeed      float64 `toml:"ai_speed"`
	BallSpeedX   float64 `toml:"ball_speed_x"`
	BallSpeedY   float64 `toml:"ball_speed_y"`
	AIJumpFactor float64 `toml:"ai_jump_factor"`
}

type LoopConfig struct {
	TickMS    int    `toml:"tick_ms"`
	KeyHoldMS int    `toml:"key_hold_ms"`
	Seed      uint64 `toml:"seed"` // 0 picks a seed from the clock
}

type AudioConfig struct {
	Enabled        bool    `toml:"enabled"`
	Volume         float64 `toml:"volume"`
	Muted          bool    `toml:"muted"`
	BounceCooldown uint64  `toml:"bounce_cooldown"`
}

type KeysConfig struct {
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
	Jump  []string `toml:"jump"`
}

type AssetsConfig struct {
	SpriteDir string `toml:"sprite_dir"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default decodes the embedded default configuration
func Default() Config {
	var cfg Config
	if _, err := toml.Decode(asset.DefaultConfig, &cfg); err != nil {
		panic(errors.Wrap(err, "embedded default config"))
	}
	return cfg
}

// Load decodes path over the defaults; a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("config %s not found, using defaults", path)
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("config %s: ignoring unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Geometry returns the entity geometry; sizes are not configurable
func (c Config) Geometry() core.Geometry {
	return core.DefaultGeometry()
}

// Engine converts to the world setup
func (c Config) Engine() engine.Config {
	return engine.Config{
		Court:    core.Court{Width: c.Court.Width, Height: c.Court.Height},
		Geometry: c.Geometry(),
		Params: physics.Params{
			Gravity:      c.Physics.Gravity,
			JumpForce:    c.Physics.JumpForce,
			PlayerSpeed:  c.Physics.PlayerSpeed,
			AISpeed:      c.Physics.AISpeed,
			BallSpeedX:   c.Physics.BallSpeedX,
			BallSpeedY:   c.Physics.BallSpeedY,
			AIJumpFactor: c.Physics.AIJumpFactor,
		},
		Seed: c.Loop.Seed,
	}
}

// Bindings converts the key lists to input bindings
func (c Config) Bindings() input.Bindings {
	conv := func(names []string) []input.Key {
		keys := make([]input.Key, len(names))
		for i, n := range names {
			keys[i] = input.Key(n)
		}
		return keys
	}
	return input.Bindings{
		Left:  conv(c.Keys.Left),
		Right: conv(c.Keys.Right),
		Jump:  conv(c.Keys.Jump),
	}
}

// AudioSettings converts to the audio package config
func (c Config) AudioSettings() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	ac.Cooldown = c.Audio.BounceCooldown
	return ac
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Loop.TickMS) * time.Millisecond
}

func (c Config) KeyHold() time.Duration {
	return time.Duration(c.Loop.KeyHoldMS) * time.Millisecond
}
