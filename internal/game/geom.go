package game

// distanceSquared returns the squared distance between two points. Squared
// form avoids the sqrt in the hit-test hot path.
func distanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// pointInCircle reports whether (px,py) lies within the filled circle of
// radius r centred at (cx,cy). The boundary counts as inside, matching the
// filled-area containment of the rendered shape.
func pointInCircle(px, py, cx, cy, r float64) bool {
	return distanceSquared(px, py, cx, cy) <= r*r
}
