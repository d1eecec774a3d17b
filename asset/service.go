package asset

import (
	"log"
	"sync"
)

// SpriteService loads the sprite set during hub startup
type SpriteService struct {
	mu  sync.RWMutex
	dir string
	set SpriteSet
}

func NewSpriteService() *SpriteService {
	return &SpriteService{}
}

func (s *SpriteService) Name() string           { return "sprites" }
func (s *SpriteService) Dependencies() []string { return nil }

// Init takes the sprite directory as its first string argument; empty disables loading
func (s *SpriteService) Init(args ...any) error {
	for _, a := range args {
		if dir, ok := a.(string); ok {
			s.dir = dir
			break
		}
	}
	return nil
}

func (s *SpriteService) Start() error {
	if s.dir == "" {
		return nil
	}
	set := LoadSpriteSet(s.dir)
	log.Printf("loaded %d sprites from %s", set.Loaded(), s.dir)

	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	return nil
}

func (s *SpriteService) Stop() error { return nil }

// Sprites returns the loaded set; empty before Start
func (s *SpriteService) Sprites() SpriteSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}
