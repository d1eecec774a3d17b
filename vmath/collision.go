package vmath

// CircleRectDistance returns the distance from the circle center to the nearest rectangle point
func CircleRectDistance(cx, cy float64, r Rect) float64 {
	px, py := r.ClosestPoint(cx, cy)
	return Distance(cx, cy, px, py)
}

// CircleIntersectsRect reports contact when the nearest rectangle point is strictly inside the radius
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	return CircleRectDistance(cx, cy, r) < radius
}

// SpansOverlap reports whether open intervals (aMin, aMax) and (bMin, bMax) intersect
func SpansOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMax > bMin && aMin < bMax
}

// NormalizedOffset maps x to the signed offset from center in units of half-width
// Returns 0 for a degenerate width
func NormalizedOffset(x, center, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return (x - center) / (width / 2)
}
