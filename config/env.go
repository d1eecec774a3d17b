package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Environment overrides
const (
	EnvMute   = "VI_VOLLEY_MUTE"
	EnvSeed   = "VI_VOLLEY_SEED"
	EnvTickMS = "VI_VOLLEY_TICK_MS"
)

// ApplyEnv overrides settings from the process environment
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMute); ok {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvMute)
		}
		c.Audio.Muted = muted
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Loop.Seed = seed
	}

	if v, ok := lookup(EnvTickMS); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvTickMS)
		}
		if ms <= 0 {
			return errors.Errorf("%s must be positive, got %d", EnvTickMS, ms)
		}
		c.Loop.TickMS = ms
	}
	return nil
}
