package game

import (
	"fmt"
	"strings"
)

// Stats accumulates per-session counters for the report output. Counters
// reset with the session; they are bookkeeping only and never feed back
// into the simulation.
type Stats struct {
	Ticks         int
	Spawned       int
	Hit           int
	Expired       int
	PointerEvents int
	Misses        int
}

// Accuracy returns the fraction of pointer events that scored at least one
// dot, in [0,1]. Zero events yields zero.
func (s Stats) Accuracy() float64 {
	if s.PointerEvents == 0 {
		return 0
	}
	return float64(s.PointerEvents-s.Misses) / float64(s.PointerEvents)
}

// Stats returns a copy of the session counters.
func (e *Engine) Stats() Stats { return e.stats }

// Report renders a human-readable session summary. The desktop app copies
// this to the clipboard; the headless tool prints it per run.
func (e *Engine) Report() string {
	var b strings.Builder
	st := e.stats
	fmt.Fprintf(&b, "=== Dotfall Session Report ===\n")
	fmt.Fprintf(&b, "ticks=%d speed=%d board=%.0fx%.0f\n", st.Ticks, e.speed, e.boardW, e.boardH)
	fmt.Fprintf(&b, "score=%d\n", e.score)
	fmt.Fprintf(&b, "dots: spawned=%d hit=%d expired=%d live=%d\n", st.Spawned, st.Hit, st.Expired, len(e.dots))
	fmt.Fprintf(&b, "pointer: events=%d misses=%d accuracy=%.0f%%\n", st.PointerEvents, st.Misses, st.Accuracy()*100)
	return b.String()
}
