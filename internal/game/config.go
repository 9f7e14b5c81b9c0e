package game

import (
	"fmt"
	"strconv"
)

// XPlacement selects how a dot's horizontal position is encoded.
//
// The two policies behave identically on a fixed-size board but diverge on
// resize: percent-of-width dots keep their relative position when the board
// widens or narrows, absolute-pixel dots stay where they spawned. The
// policies are deliberately kept separate rather than merged.
type XPlacement int

const (
	// XPercent stores x as a fraction of board width, resolved to pixels on
	// every render. Default.
	XPercent XPlacement = iota
	// XAbsolute stores x as a pixel coordinate computed once at spawn.
	XAbsolute
)

// Config holds all engine tuning. Everything is fixed at construction;
// only the speed setting may change while a session is running.
type Config struct {
	// FramesPerSecond is the tick cadence. Per-tick displacement is
	// Speed / FramesPerSecond pixels.
	FramesPerSecond int

	// MinDiameter and MaxDiameter bound the randomly drawn dot size.
	MinDiameter int
	MaxDiameter int

	// SpawnIntervalMs is the period of the automatic spawner.
	SpawnIntervalMs int
	// RespawnDelayMs is the delay between a scored hit and the replacement
	// dot it schedules.
	RespawnDelayMs int

	// StrokeWidth and Padding keep dots fully inside the playable bounds.
	StrokeWidth float64
	Padding     float64

	// PropagateHits scores every dot under the pointer in one event when
	// true; when false only the most recently spawned containing dot scores.
	PropagateHits bool

	// Placement picks the horizontal coordinate policy.
	Placement XPlacement

	// Board geometry captured at start. Offsets translate screen-space
	// pointer coordinates into board-local space.
	BoardWidth   float64
	BoardHeight  float64
	BoardOffsetX float64
	BoardOffsetY float64

	// Speed is the initial fall speed in pixels per second.
	Speed int

	// Seed fixes the RNG for deterministic runs. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() Config {
	return Config{
		FramesPerSecond: 60,
		MinDiameter:     10,
		MaxDiameter:     100,
		SpawnIntervalMs: 1000,
		RespawnDelayMs:  1000,
		StrokeWidth:     2,
		Padding:         10,
		Placement:       XPercent,
		BoardWidth:      400,
		BoardHeight:     600,
		Speed:           60,
	}
}

// Validate reports configuration errors. The engine has no recoverable
// runtime failures, so every degenerate setting is rejected up front rather
// than clamped: a board too narrow to fit the largest dot would otherwise
// make the random placement range empty or inverted.
func (c Config) Validate() error {
	if c.FramesPerSecond <= 0 {
		return fmt.Errorf("frames per second must be positive, got %d", c.FramesPerSecond)
	}
	if c.MinDiameter <= 0 || c.MaxDiameter <= 0 {
		return fmt.Errorf("diameters must be positive, got min=%d max=%d", c.MinDiameter, c.MaxDiameter)
	}
	if c.MinDiameter > c.MaxDiameter {
		return fmt.Errorf("min diameter %d exceeds max diameter %d", c.MinDiameter, c.MaxDiameter)
	}
	if c.SpawnIntervalMs <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %dms", c.SpawnIntervalMs)
	}
	if c.RespawnDelayMs < 0 {
		return fmt.Errorf("respawn delay must not be negative, got %dms", c.RespawnDelayMs)
	}
	if c.StrokeWidth < 0 || c.Padding < 0 {
		return fmt.Errorf("stroke width and padding must not be negative, got stroke=%.1f padding=%.1f", c.StrokeWidth, c.Padding)
	}
	margin := float64(c.MaxDiameter)/2 + c.StrokeWidth + c.Padding
	if c.BoardWidth < 2*margin {
		return fmt.Errorf("board width %.0f cannot fit a %dpx dot with stroke %.1f and padding %.1f",
			c.BoardWidth, c.MaxDiameter, c.StrokeWidth, c.Padding)
	}
	if c.BoardHeight <= 0 {
		return fmt.Errorf("board height must be positive, got %.0f", c.BoardHeight)
	}
	return nil
}

// ParseSpeed converts loose textual input into a speed setting. Malformed
// input falls back to zero instead of surfacing a parse error into the tick
// loop, and negative values clamp to zero.
func ParseSpeed(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
