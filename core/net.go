package core

import "github.com/lixenwraith/vi-volley/vmath"

// Net is the static divider at court center
// Fields are unexported so the net cannot move after construction
type Net struct {
	x, y          float64
	width, height float64
}

// NewNet centers a net of the given size on the court floor
func NewNet(court Court, width, height float64) Net {
	return Net{
		x:      court.CenterX() - width/2,
		y:      court.FloorY() - height,
		width:  width,
		height: height,
	}
}

func (n Net) X() float64      { return n.x }
func (n Net) Y() float64      { return n.y }
func (n Net) Width() float64  { return n.width }
func (n Net) Height() float64 { return n.height }

func (n Net) Bounds() vmath.Rect {
	return vmath.Rect{X: n.x, Y: n.y, Width: n.width, Height: n.height}
}
