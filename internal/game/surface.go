package game

// Surface is the rendering boundary the engine draws through. Implementations
// only rasterize; all geometry and hit-testing stays engine-side, which keeps
// the simulation runnable headless.
type Surface interface {
	// Clear wipes the whole surface at the start of a tick.
	Clear()
	// FillCircle draws a filled circle at the given pixel center.
	FillCircle(cx, cy, r float64)
	// StrokeCircle outlines a circle with the given stroke width.
	StrokeCircle(cx, cy, r, strokeWidth float64)
}

// NopSurface discards all draw calls. Used by the headless report tool and
// by benchmarks where only simulation state matters.
type NopSurface struct{}

func (NopSurface) Clear()                                      {}
func (NopSurface) FillCircle(cx, cy, r float64)                {}
func (NopSurface) StrokeCircle(cx, cy, r, strokeWidth float64) {}
