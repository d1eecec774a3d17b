package asset

import (
	"bufio"
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-volley/constant"
)

// maxSpriteCells bounds sprite size in either dimension
const maxSpriteCells = 32

// Sprite is a block of text art drawn in terminal cells
type Sprite struct {
	Name   string
	Lines  []string
	Width  int // Widest line in cells
	Height int
}

// SpriteSet holds the optional art for each drawable; nil means glyph fill
type SpriteSet struct {
	Player   *Sprite
	Opponent *Sprite
	Ball     *Sprite
}

// Loaded returns the number of sprites present
func (s SpriteSet) Loaded() int {
	n := 0
	for _, sp := range []*Sprite{s.Player, s.Opponent, s.Ball} {
		if sp != nil {
			n++
		}
	}
	return n
}

// ParseSprite builds a sprite from text art
// Trailing blank lines are dropped; tabs are rejected since their width is terminal-dependent
func ParseSprite(name string, data []byte) (*Sprite, error) {
	sp := &Sprite{Name: name}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.ContainsRune(line, '\t') {
			return nil, errors.Errorf("sprite %s line %d: tab character", name, len(sp.Lines)+1)
		}
		sp.Lines = append(sp.Lines, line)
		if w := runewidth.StringWidth(line); w > sp.Width {
			sp.Width = w
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "sprite %s", name)
	}

	for len(sp.Lines) > 0 && strings.TrimSpace(sp.Lines[len(sp.Lines)-1]) == "" {
		sp.Lines = sp.Lines[:len(sp.Lines)-1]
	}
	sp.Height = len(sp.Lines)

	switch {
	case sp.Height == 0 || sp.Width == 0:
		return nil, errors.Errorf("sprite %s is empty", name)
	case sp.Width > maxSpriteCells || sp.Height > maxSpriteCells:
		return nil, errors.Errorf("sprite %s is %dx%d, max %d", name, sp.Width, sp.Height, maxSpriteCells)
	}
	return sp, nil
}

// LoadSprite reads <dir>/<name>.txt
func LoadSprite(dir, name string) (*Sprite, error) {
	path := filepath.Join(dir, name+constant.SpriteFileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load sprite")
	}
	return ParseSprite(name, data)
}

// LoadSpriteSet loads all sprites from dir; failures are logged and leave that slot nil
func LoadSpriteSet(dir string) SpriteSet {
	var set SpriteSet
	slots := []struct {
		name string
		dst  **Sprite
	}{
		{constant.SpritePlayer, &set.Player},
		{constant.SpriteOpponent, &set.Opponent},
		{constant.SpriteBall, &set.Ball},
	}

	for _, slot := range slots {
		sp, err := LoadSprite(dir, slot.name)
		if err != nil {
			log.Printf("sprite fallback for %s: %v", slot.name, err)
			continue
		}
		*slot.dst = sp
	}
	return set
}
