package game

// Dot is a falling circular target. Radius and horizontal position are fixed
// at spawn; only Y changes, strictly increasing by speed/fps every tick.
type Dot struct {
	Radius float64
	// x encoding depends on the placement policy: a fraction of board width
	// under XPercent, a pixel coordinate under XAbsolute.
	x float64
	// Y is the vertical center position along the fall axis, in pixels.
	Y float64

	// Last rendered pixel position. Hit-testing runs against this, not the
	// live position, so a pointer event between two ticks tests the circle
	// exactly as it was last drawn. A dot that has never been rendered is
	// not hittable yet. This render lag is an intended approximation carried
	// over from the canvas path-based hit test, not a bug.
	drawnX, drawnY float64
	drawn          bool
}

// resolveX turns the dot's stored horizontal coordinate into a pixel
// position for the given board width.
func (d *Dot) resolveX(placement XPlacement, boardWidth float64) float64 {
	if placement == XPercent {
		return d.x * boardWidth
	}
	return d.x
}

// DotInfo is a read-only snapshot of a live dot, exposed for headless
// drivers and reporting.
type DotInfo struct {
	Radius float64
	// X and Y are the last rendered pixel position; valid only when Drawn.
	X, Y  float64
	Drawn bool
}
