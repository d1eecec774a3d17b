package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-volley/asset"
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/engine"
	"github.com/lixenwraith/vi-volley/status"
	"github.com/lixenwraith/vi-volley/vmath"
)

const (
	glyphSolid = '█'
	glyphBall  = 'O'
	glyphFloor = '▀'
)

// Renderer draws snapshots to a tcell screen; implements engine.Frame
type Renderer struct {
	screen  tcell.Screen
	mode    ColorMode
	palette Palette
	sprites asset.SpriteSet
	board   *ScoreBoard
	reg     *status.Registry
	frames  uint64
}

func NewRenderer(screen tcell.Screen, mode ColorMode) *Renderer {
	return &Renderer{
		screen:  screen,
		mode:    mode,
		palette: DefaultPalette(),
		board:   NewScoreBoard(),
	}
}

// SetSprites replaces the sprite set; nil slots draw as glyph fill
func (r *Renderer) SetSprites(set asset.SpriteSet) { r.sprites = set }

// SetStatus attaches the metrics shown in the HUD
func (r *Renderer) SetStatus(reg *status.Registry) { r.reg = reg }

// ScoreBoard returns the score sink driving the HUD tally
func (r *Renderer) ScoreBoard() *ScoreBoard { return r.board }

// Frames returns the number of frames drawn
func (r *Renderer) Frames() uint64 { return r.frames }

func (r *Renderer) style(fg colorful.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(fg, r.mode)).
		Background(toTcell(r.palette.Background, r.mode))
}

// Draw renders one frame
func (r *Renderer) Draw(s engine.Snapshot) {
	r.frames++
	r.screen.Fill(' ', r.style(r.palette.Text))

	w, h := r.screen.Size()
	layout, ok := NewLayout(s.Court, w, h)
	if !ok {
		r.drawCentered(h/2, "terminal too small", r.style(r.palette.Text))
		r.screen.Show()
		return
	}

	r.drawFloor(layout)
	r.fillRect(layout, s.Net.Bounds(), glyphSolid, r.style(r.palette.Net))
	r.drawBody(layout, &s.Player, r.sprites.Player, r.style(r.palette.Player))
	r.drawBody(layout, &s.Opponent, r.sprites.Opponent, r.style(r.palette.Opponent))
	r.drawBall(layout, &s.Ball)
	r.drawHUD(s, w)

	r.board.advance()
	r.screen.Show()
}

func (r *Renderer) drawFloor(l Layout) {
	st := r.style(r.palette.Floor)
	for x := l.OriginX; x < l.OriginX+l.Cols; x++ {
		r.screen.SetContent(x, l.FloorRow(), glyphFloor, nil, st)
	}
}

func (r *Renderer) fillRect(l Layout, rect vmath.Rect, ch rune, st tcell.Style) {
	x0, y0, x1, y1 := l.CellRect(rect)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (r *Renderer) drawBody(l Layout, b *core.Body, sp *asset.Sprite, st tcell.Style) {
	if sp == nil {
		r.fillRect(l, b.Bounds(), glyphSolid, st)
		return
	}
	x0, _, x1, y1 := l.CellRect(b.Bounds())
	r.drawSprite(sp, (x0+x1)/2, y1-sp.Height+1, st)
}

func (r *Renderer) drawBall(l Layout, b *core.Ball) {
	st := r.style(r.palette.Ball)
	cx, cy := l.CellX(b.X), l.CellY(b.Y)
	if sp := r.sprites.Ball; sp != nil {
		r.drawSprite(sp, cx, cy-sp.Height/2, st)
		return
	}
	r.screen.SetContent(cx, cy, glyphBall, nil, st)
}

// drawSprite places sp horizontally centered on cx with its first line at top
func (r *Renderer) drawSprite(sp *asset.Sprite, cx, top int, st tcell.Style) {
	left := cx - sp.Width/2
	for i, line := range sp.Lines {
		r.drawText(left, top+i, line, st)
	}
}

func (r *Renderer) drawHUD(s engine.Snapshot, w int) {
	base := r.palette.Text
	side, level := r.board.Flash()
	playerColor, opponentColor := base, base
	if level > 0 {
		flash := base.BlendLab(r.palette.Flash, level)
		if side == core.SidePlayer {
			playerColor = flash
		} else {
			opponentColor = flash
		}
	}

	left := fmt.Sprintf("YOU %d", s.Scores.Player)
	sep := " : "
	right := fmt.Sprintf("%d AI", s.Scores.Opponent)
	x := (w - runewidth.StringWidth(left+sep+right)) / 2
	x = r.drawText(x, 0, left, r.style(playerColor))
	x = r.drawText(x, 0, sep, r.style(r.palette.Dim))
	r.drawText(x, 0, right, r.style(opponentColor))

	hint := stateHint(s, r.muted())
	hintX := w - runewidth.StringWidth(hint)
	r.drawText(hintX, 1, hint, r.style(r.palette.Dim))

	if r.reg != nil {
		stats := r.reg.Format(status.KeyRally, status.KeyLongestRally, status.KeyStrikes)
		stats = runewidth.Truncate(stats, max(hintX-1, 0), "~")
		r.drawText(0, 1, stats, r.style(r.palette.Text))
	}
}

func (r *Renderer) muted() bool {
	return r.reg != nil && r.reg.Bools.Has(status.KeyAudioMuted) && r.reg.Bools.Get(status.KeyAudioMuted).Load()
}

// stateHint describes the keys relevant in the current match state
func stateHint(s engine.Snapshot, muted bool) string {
	var hint string
	switch {
	case s.State == core.MatchLive:
		hint = "p pause  r restart  q quit"
	case s.MatchID == uuid.Nil:
		hint = "s start  q quit"
	default:
		hint = "PAUSED  p resume  r restart  q quit"
	}
	if muted {
		hint = "muted  " + hint
	}
	return hint
}

// drawText writes s at (x, y) and returns the column after it
func (r *Renderer) drawText(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if ch != ' ' {
			r.screen.SetContent(x, y, ch, nil, st)
		}
		x += cw
	}
	return x
}

func (r *Renderer) drawCentered(y int, s string, st tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-runewidth.StringWidth(s))/2, y, s, st)
}
