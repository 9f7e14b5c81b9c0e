package game

import (
	"math"
	"testing"
)

// spawnMany spawns n dots on a fresh deterministic engine and returns it.
func spawnMany(t *testing.T, n int, mutate func(*Config)) *Engine {
	t.Helper()
	e := newTestEngine(t, mutate)
	for i := 0; i < n; i++ {
		e.SpawnDot()
	}
	return e
}

func TestSpawnDot_RadiusWithinBounds(t *testing.T) {
	e := spawnMany(t, 500, nil)
	for _, d := range e.dots {
		if d.Radius < 5 || d.Radius > 50 {
			t.Fatalf("radius %.1f outside [5,50]", d.Radius)
		}
		if d.Radius != math.Trunc(d.Radius) {
			t.Fatalf("radius should be a whole number, got %.4f", d.Radius)
		}
	}
}

func TestSpawnDot_HorizontalExtentWithinBoard(t *testing.T) {
	for _, placement := range []XPlacement{XPercent, XAbsolute} {
		e := spawnMany(t, 500, func(c *Config) {
			c.Placement = placement
		})
		for _, d := range e.dots {
			px := d.resolveX(placement, e.boardW)
			if px-d.Radius-e.cfg.StrokeWidth < 0 {
				t.Fatalf("placement %d: dot extends past the left edge (px=%.2f r=%.1f)", placement, px, d.Radius)
			}
			if px+d.Radius+e.cfg.StrokeWidth > e.boardW {
				t.Fatalf("placement %d: dot extends past the right edge (px=%.2f r=%.1f)", placement, px, d.Radius)
			}
		}
	}
}

func TestSpawnDot_RespectsPadding(t *testing.T) {
	e := spawnMany(t, 500, func(c *Config) {
		c.Padding = 25
		c.Placement = XAbsolute
	})
	for _, d := range e.dots {
		px := d.resolveX(XAbsolute, e.boardW)
		if px-d.Radius-e.cfg.StrokeWidth < 25 || px+d.Radius+e.cfg.StrokeWidth > e.boardW-25 {
			t.Fatalf("dot violates padding: px=%.2f r=%.1f", px, d.Radius)
		}
	}
}

func TestSpawnDot_StartsFullyAboveBoard(t *testing.T) {
	e := spawnMany(t, 100, func(c *Config) {
		c.StrokeWidth = 5
	})
	for _, d := range e.dots {
		if d.Y != -(d.Radius + 5) {
			t.Fatalf("spawn y should be -(radius+stroke), got %.2f for r=%.1f", d.Y, d.Radius)
		}
		if d.Y+d.Radius+5 > 0 {
			t.Fatal("freshly spawned dot must sit fully above the visible area")
		}
	}
}

func TestSpawnDot_DeterministicWithSeed(t *testing.T) {
	a := spawnMany(t, 50, nil)
	b := spawnMany(t, 50, nil)
	for i := range a.dots {
		if a.dots[i].Radius != b.dots[i].Radius || a.dots[i].x != b.dots[i].x {
			t.Fatalf("same seed must produce the same spawn sequence, diverged at dot %d", i)
		}
	}
}

func TestResolveX_Policies(t *testing.T) {
	d := &Dot{x: 0.25}
	if got := d.resolveX(XPercent, 400); got != 100 {
		t.Fatalf("percent 0.25 of 400 should resolve to 100, got %.1f", got)
	}
	d = &Dot{x: 250}
	if got := d.resolveX(XAbsolute, 400); got != 250 {
		t.Fatalf("absolute 250 should resolve to 250, got %.1f", got)
	}
}
