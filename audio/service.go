package audio

import (
	"log"
	"sync/atomic"
)

// Service wraps SoundManager for the service hub
// Degrades to silent mode when no audio device is available
type Service struct {
	cfg      Config
	manager  *SoundManager
	disabled atomic.Bool
}

func NewService() *Service {
	return &Service{cfg: DefaultConfig()}
}

func (s *Service) Name() string           { return "audio" }
func (s *Service) Dependencies() []string { return nil }

// Init accepts a Config and/or a bool mute flag in any order
func (s *Service) Init(args ...any) error {
	muted := false
	for _, a := range args {
		switch v := a.(type) {
		case Config:
			s.cfg = v
		case bool:
			muted = v
		}
	}
	s.manager = NewSoundManager(s.cfg)
	s.manager.SetMuted(muted)
	return nil
}

// Start opens the speaker; failure switches to silent mode without error
func (s *Service) Start() error {
	if s.manager == nil {
		s.Init()
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

func (s *Service) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// Manager returns the sound manager, valid after Init
func (s *Service) Manager() *SoundManager {
	return s.manager
}

// Disabled reports whether the service fell back to silent mode
func (s *Service) Disabled() bool {
	return s.disabled.Load()
}
