package render

import (
	"math"

	"github.com/lixenwraith/vi-volley/constant"
	"github.com/lixenwraith/vi-volley/core"
	"github.com/lixenwraith/vi-volley/vmath"
)

// Layout maps court units onto terminal cells
// The court fills the screen below the HUD; the floor line takes the last row
type Layout struct {
	OriginX, OriginY int
	Cols, Rows       int
	scaleX, scaleY   float64
}

// NewLayout fits court into a screen of w x h cells
// ok is false when the screen is below the minimum court area
func NewLayout(court core.Court, w, h int) (l Layout, ok bool) {
	cols := w
	rows := h - constant.HUDRows - 1
	if cols < constant.MinCourtCols || rows < constant.MinCourtRows || court.Width <= 0 || court.Height <= 0 {
		return Layout{}, false
	}
	return Layout{
		OriginX: 0,
		OriginY: constant.HUDRows,
		Cols:    cols,
		Rows:    rows,
		scaleX:  float64(cols) / court.Width,
		scaleY:  float64(rows) / court.Height,
	}, true
}

// CellX maps a court x coordinate to a screen column inside the court
func (l Layout) CellX(x float64) int {
	c := int(math.Floor(x * l.scaleX))
	return l.OriginX + vmath.Clamp(c, 0, l.Cols-1)
}

// CellY maps a court y coordinate to a screen row above the floor line
func (l Layout) CellY(y float64) int {
	r := int(math.Floor(y * l.scaleY))
	return l.OriginY + vmath.Clamp(r, 0, l.Rows-1)
}

// FloorRow is the screen row of the floor line
func (l Layout) FloorRow() int {
	return l.OriginY + l.Rows
}

// CellRect returns the inclusive cell span covered by r; always at least one cell
func (l Layout) CellRect(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = l.CellX(r.X), l.CellY(r.Y)
	x1 = l.OriginX + vmath.Clamp(int(math.Ceil(r.Right()*l.scaleX))-1, 0, l.Cols-1)
	y1 = l.OriginY + vmath.Clamp(int(math.Ceil(r.Bottom()*l.scaleY))-1, 0, l.Rows-1)
	return x0, y0, max(x0, x1), max(y0, y1)
}
