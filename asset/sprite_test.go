package asset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-volley/constant"
)

func TestParseSprite(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"simple", " o \n/|\\\n/ \\\n", 3, 3, false},
		{"trailing blank lines", "()\n\n  \n", 2, 1, false},
		{"wide runes", "世界\n", 4, 1, false},
		{"crlf", "ab\r\ncd\r\n", 2, 2, false},
		{"empty", "", 0, 0, true},
		{"blank only", "\n \n", 0, 0, true},
		{"tab", "a\tb\n", 0, 0, true},
		{"too wide", strings.Repeat("x", maxSpriteCells+1), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := ParseSprite(tt.name, []byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got sprite %+v", sp)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if sp.Width != tt.wantW || sp.Height != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, sp.Width, sp.Height)
			}
		})
	}
}

func TestLoadSpriteSetFallback(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		path := filepath.Join(dir, name+constant.SpriteFileExt)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write(constant.SpritePlayer, "[]\n[]\n")
	write(constant.SpriteBall, "")

	set := LoadSpriteSet(dir)
	if set.Player == nil || set.Player.Height != 2 {
		t.Errorf("Expected player sprite loaded, got %+v", set.Player)
	}
	if set.Opponent != nil {
		t.Error("Missing opponent file should fall back to nil")
	}
	if set.Ball != nil {
		t.Error("Empty ball file should fall back to nil")
	}
	if set.Loaded() != 1 {
		t.Errorf("Expected 1 sprite loaded, got %d", set.Loaded())
	}
}

func TestSpriteService(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, constant.SpriteBall+constant.SpriteFileExt), []byte("o\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewSpriteService()
	if err := s.Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if s.Sprites().Loaded() != 0 {
		t.Error("Expected no sprites before Start")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Sprites().Ball == nil {
		t.Error("Expected ball sprite after Start")
	}
}
