package game

import (
	"math"
	"math/rand"
	"time"
)

// Engine owns the full state of one game session: the live dot collection,
// the score, the speed setting and the board geometry. All mutation happens
// on the caller's goroutine. The tick driver and the pointer handler are
// expected to share one logical thread, as they do under Ebiten's update
// loop; callers that drive the engine from multiple goroutines must add
// their own lock.
type Engine struct {
	cfg Config
	rng *rand.Rand

	// dots holds the live dots in spawn order. Spawn order doubles as
	// render order, so the most recently spawned dot is rendered topmost
	// and wins the non-propagating hit tie-break.
	dots []*Dot

	score int
	speed int

	boardW, boardH float64
	offX, offY     float64

	// tick counts completed ticks since Start.
	tick int
	// nextAutoSpawn is the tick at which the interval spawner fires next.
	nextAutoSpawn int
	// pendingSpawns holds the due ticks of replacement dots scheduled by
	// scored hits. It is the cancellable set of one-shot timers: Reset and
	// Close drop it wholesale so no respawn fires into a torn-down session.
	pendingSpawns []int

	// Resize notifications are deferred to the start of the next tick so
	// board geometry never changes between a render and the hit tests that
	// rely on it.
	resizePending  bool
	resizeW        float64
	resizeH        float64
	resizeOffX     float64
	resizeOffY     float64

	stats Stats
}

// New validates the configuration and returns a fresh engine. The session
// holds no dots until Start is called.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- game only
		boardW: cfg.BoardWidth,
		boardH: cfg.BoardHeight,
		offX:   cfg.BoardOffsetX,
		offY:   cfg.BoardOffsetY,
		speed:  cfg.Speed,
	}
	if e.speed < 0 {
		e.speed = 0
	}
	return e, nil
}

// Start resets the session and spawns the opening dot, mirroring the
// one-off spawn at game start. The interval spawner is armed to fire one
// full period later.
func (e *Engine) Start() {
	e.Reset()
	e.SpawnDot()
	e.nextAutoSpawn = e.spawnIntervalTicks()
}

// Reset clears all session state: dots, score, tick counter, statistics and
// every pending respawn. The speed setting survives, as it belongs to the
// external speed control rather than the session.
func (e *Engine) Reset() {
	e.dots = e.dots[:0]
	e.score = 0
	e.tick = 0
	e.nextAutoSpawn = 0
	e.pendingSpawns = e.pendingSpawns[:0]
	e.resizePending = false
	e.stats = Stats{}
}

// Close tears the session down. Pending respawn timers and the interval
// spawner are cancelled explicitly so nothing fires into a dead session.
func (e *Engine) Close() {
	e.dots = nil
	e.pendingSpawns = nil
	e.nextAutoSpawn = 0
}

// SpawnDot creates one dot with a random radius and horizontal placement
// and appends it to the live collection. The dot starts fully above the
// visible area and keeps its full circle, stroke and padding included,
// inside [0, boardWidth]. No cap is enforced on the live dot count; memory
// is bounded only by expiry.
func (e *Engine) SpawnDot() {
	minR := e.cfg.MinDiameter / 2
	maxR := e.cfg.MaxDiameter / 2
	r := float64(minR + e.rng.Intn(maxR-minR+1))

	margin := r + e.cfg.StrokeWidth + e.cfg.Padding
	px := margin + e.rng.Float64()*(e.boardW-2*margin)

	d := &Dot{
		Radius: r,
		Y:      -(r + e.cfg.StrokeWidth),
	}
	switch e.cfg.Placement {
	case XPercent:
		d.x = px / e.boardW
	case XAbsolute:
		d.x = px
	}
	e.dots = append(e.dots, d)
	e.stats.Spawned++
}

// Tick advances the session by one frame and redraws every dot.
func (e *Engine) Tick(s Surface) {
	// 1. CLEAR: wipe the previous frame.
	s.Clear()

	// 2. RESIZE: apply any geometry change deferred since the last tick.
	if e.resizePending {
		e.resizePending = false
		e.boardW = e.resizeW
		e.boardH = e.resizeH
		e.offX = e.resizeOffX
		e.offY = e.resizeOffY
	}

	e.tick++
	e.stats.Ticks = e.tick

	// 3. SPAWN: fire the interval spawner and any due replacement dots.
	if e.tick >= e.nextAutoSpawn {
		e.SpawnDot()
		e.nextAutoSpawn = e.tick + e.spawnIntervalTicks()
	}
	e.runDueRespawns()

	// 4. ADVANCE + DRAW: move every dot by speed/fps and render it filled
	// and stroked at its resolved pixel position. Speed zero leaves dots
	// stationary but still rendered, hittable and expiry-checked.
	dy := float64(e.speed) / float64(e.cfg.FramesPerSecond)
	for _, d := range e.dots {
		d.Y += dy
		cx := d.resolveX(e.cfg.Placement, e.boardW)
		s.FillCircle(cx, d.Y, d.Radius)
		s.StrokeCircle(cx, d.Y, d.Radius, e.cfg.StrokeWidth)
		d.drawnX = cx
		d.drawnY = d.Y
		d.drawn = true
	}

	// 5. EXPIRE: drop dots whose leading edge has passed the bottom.
	e.expireDots()
}

// HandlePointer processes one pointer-down event in board-local coordinates
// (screen position minus board offset) and returns the points gained.
//
// With PropagateHits off, dots are scanned newest to oldest and only the
// first containing dot scores: the topmost-rendered of an overlapping stack.
// With PropagateHits on, every containing dot scores in the same pass.
// Containment runs against each dot's last rendered circle.
func (e *Engine) HandlePointer(x, y float64) int {
	e.stats.PointerEvents++
	gained := 0

	if e.cfg.PropagateHits {
		kept := e.dots[:0]
		for _, d := range e.dots {
			if d.drawn && pointInCircle(x, y, d.drawnX, d.drawnY, d.Radius) {
				gained += e.scoreHit(d)
			} else {
				kept = append(kept, d)
			}
		}
		for i := len(kept); i < len(e.dots); i++ {
			e.dots[i] = nil
		}
		e.dots = kept
	} else {
		for i := len(e.dots) - 1; i >= 0; i-- {
			d := e.dots[i]
			if d.drawn && pointInCircle(x, y, d.drawnX, d.drawnY, d.Radius) {
				gained = e.scoreHit(d)
				e.dots = append(e.dots[:i], e.dots[i+1:]...)
				break
			}
		}
	}

	if gained == 0 {
		e.stats.Misses++
	}
	return gained
}

// scoreHit accounts one scored dot and schedules exactly one replacement
// spawn after the respawn delay, independent of the interval spawner.
func (e *Engine) scoreHit(d *Dot) int {
	pts := CalculateScore(d.Radius, e.cfg.MaxDiameter)
	e.score += pts
	e.stats.Hit++
	e.pendingSpawns = append(e.pendingSpawns, e.tick+e.respawnDelayTicks())
	return pts
}

// expireDots removes dots that have fallen out of play: a dot is expired
// once its leading (bottom) edge, Y + Radius + StrokeWidth, has passed the
// board height.
//
// All dots fall at the same speed and spawn with their leading edge at
// exactly zero, so a dot's leading edge equals the distance fallen since its
// spawn tick regardless of radius. Earlier spawns are therefore always
// further along and expired dots form a contiguous prefix of the spawn-
// ordered collection, which we cut in one pass instead of filtering. If a
// future change gives dots individual speeds this shortcut must be replaced
// with a full filter.
func (e *Engine) expireDots() {
	n := 0
	for n < len(e.dots) {
		d := e.dots[n]
		if d.Y+d.Radius+e.cfg.StrokeWidth <= e.boardH {
			break
		}
		n++
	}
	if n == 0 {
		return
	}
	e.stats.Expired += n
	kept := append(e.dots[:0], e.dots[n:]...)
	for i := len(kept); i < len(e.dots); i++ {
		e.dots[i] = nil
	}
	e.dots = kept
}

// runDueRespawns spawns a dot for every scheduled replacement whose due
// tick has arrived and drops it from the pending set.
func (e *Engine) runDueRespawns() {
	if len(e.pendingSpawns) == 0 {
		return
	}
	kept := e.pendingSpawns[:0]
	for _, due := range e.pendingSpawns {
		if due <= e.tick {
			e.SpawnDot()
		} else {
			kept = append(kept, due)
		}
	}
	e.pendingSpawns = kept
}

// SetSpeed updates the fall speed, effective on the very next tick.
// Negative input clamps to zero; the observed original never rejects it.
func (e *Engine) SetSpeed(v int) {
	if v < 0 {
		v = 0
	}
	e.speed = v
}

// Speed returns the current fall speed in pixels per second.
func (e *Engine) Speed() int { return e.speed }

// Score returns the session score.
func (e *Engine) Score() int { return e.score }

// LiveCount returns the number of live dots.
func (e *Engine) LiveCount() int { return len(e.dots) }

// BoardSize returns the current board dimensions.
func (e *Engine) BoardSize() (w, h float64) { return e.boardW, e.boardH }

// BoardOffset returns the board's screen-space offset.
func (e *Engine) BoardOffset() (x, y float64) { return e.offX, e.offY }

// NotifyResize records new board geometry to be applied at the start of the
// next tick. Deferring the recompute keeps coordinates stable for any hit
// test that lands between the notification and the tick.
func (e *Engine) NotifyResize(w, h, offX, offY float64) {
	e.resizePending = true
	e.resizeW = w
	e.resizeH = h
	e.resizeOffX = offX
	e.resizeOffY = offY
}

// Snapshot returns a copy of the live dots for headless drivers and
// inspection. Positions are the last rendered ones.
func (e *Engine) Snapshot() []DotInfo {
	out := make([]DotInfo, len(e.dots))
	for i, d := range e.dots {
		out[i] = DotInfo{Radius: d.Radius, X: d.drawnX, Y: d.drawnY, Drawn: d.drawn}
	}
	return out
}

// spawnIntervalTicks converts the spawn interval to whole ticks, at least 1.
func (e *Engine) spawnIntervalTicks() int {
	return msToTicks(e.cfg.SpawnIntervalMs, e.cfg.FramesPerSecond)
}

// respawnDelayTicks converts the respawn delay to whole ticks, at least 1.
func (e *Engine) respawnDelayTicks() int {
	return msToTicks(e.cfg.RespawnDelayMs, e.cfg.FramesPerSecond)
}

func msToTicks(ms, fps int) int {
	t := int(math.Round(float64(ms) * float64(fps) / 1000))
	if t < 1 {
		t = 1
	}
	return t
}
