package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal midpoint
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// ClosestPoint returns the point of the rectangle nearest to (x, y)
// Points inside the rectangle map to themselves
func (r Rect) ClosestPoint(x, y float64) (float64, float64) {
	return Clamp(x, r.X, r.Right()), Clamp(y, r.Y, r.Bottom())
}
