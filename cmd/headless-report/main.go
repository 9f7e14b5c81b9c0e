package main

import (
	"flag"
	"fmt"
	"math/rand"

	"dotfall/internal/game"
)

// runStats captures the outcome of one headless session.
type runStats struct {
	runIndex int
	seed     int64

	score    int
	spawned  int
	hit      int
	expired  int
	leftover int
	clicks   int
	misses   int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var speed string
	var fps int
	var clickEvery int
	var propagate bool

	flag.IntVar(&runs, "runs", 5, "number of headless game runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&speed, "speed", "60", "fall speed in px/sec (non-numeric or negative reads as 0)")
	flag.IntVar(&fps, "fps", 60, "simulated frames per second")
	flag.IntVar(&clickEvery, "click-every", 30, "ticks between simulated pointer events (0 = never)")
	flag.BoolVar(&propagate, "propagate", false, "score every dot under the pointer instead of the topmost")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if fps <= 0 {
		fmt.Println("error: -fps must be > 0")
		return
	}

	fmt.Printf("=== Dotfall Headless Report ===\n")
	fmt.Printf("runs=%d ticks=%d speed=%d fps=%d click_every=%d propagate=%v seed_base=%d seed_step=%d\n\n",
		runs, ticks, game.ParseSpeed(speed), fps, clickEvery, propagate, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runSession(i+1, seed, ticks, game.ParseSpeed(speed), fps, clickEvery, propagate)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runSession drives one engine for the given tick count, firing a simulated
// pointer event every clickEvery ticks. Most simulated clicks aim at the
// centre of a random live dot; a fifth land at a random board point so the
// accuracy figure stays meaningful.
func runSession(runIndex int, seed int64, ticks, speed, fps, clickEvery int, propagate bool) (runStats, error) {
	cfg := game.DefaultConfig()
	cfg.Seed = seed
	cfg.Speed = speed
	cfg.FramesPerSecond = fps
	cfg.PropagateHits = propagate

	eng, err := game.New(cfg)
	if err != nil {
		return runStats{}, err
	}
	defer eng.Close()
	eng.Start()

	// Separate RNG for the simulated player so engine spawning stays
	// byte-identical across click policies.
	player := rand.New(rand.NewSource(seed ^ 0x5d07fa11)) // #nosec G404 -- simulation driver

	for t := 0; t < ticks; t++ {
		eng.Tick(game.NopSurface{})

		if clickEvery <= 0 || (t+1)%clickEvery != 0 {
			continue
		}
		dots := eng.Snapshot()
		if len(dots) > 0 && player.Float64() < 0.8 {
			d := dots[player.Intn(len(dots))]
			if d.Drawn {
				eng.HandlePointer(d.X, d.Y)
				continue
			}
		}
		eng.HandlePointer(player.Float64()*cfg.BoardWidth, player.Float64()*cfg.BoardHeight)
	}

	st := eng.Stats()
	return runStats{
		runIndex: runIndex,
		seed:     seed,
		score:    eng.Score(),
		spawned:  st.Spawned,
		hit:      st.Hit,
		expired:  st.Expired,
		leftover: eng.LiveCount(),
		clicks:   st.PointerEvents,
		misses:   st.Misses,
	}, nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("score=%d\n", rs.score)
	fmt.Printf("dots: spawned=%d hit=%d expired=%d leftover=%d\n", rs.spawned, rs.hit, rs.expired, rs.leftover)
	fmt.Printf("pointer: clicks=%d misses=%d accuracy=%.0f%%\n\n", rs.clicks, rs.misses, accuracy(rs)*100)
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalSpawned := 0
	totalHit := 0
	totalExpired := 0
	totalClicks := 0
	totalMisses := 0
	for _, rs := range all {
		totalScore += rs.score
		totalSpawned += rs.spawned
		totalHit += rs.hit
		totalExpired += rs.expired
		totalClicks += rs.clicks
		totalMisses += rs.misses
	}
	n := float64(len(all))

	fmt.Printf("=== Aggregate over %d runs ===\n", len(all))
	fmt.Printf("score: total=%d mean=%.1f\n", totalScore, float64(totalScore)/n)
	fmt.Printf("dots: spawned=%d hit=%d expired=%d\n", totalSpawned, totalHit, totalExpired)
	if totalClicks > 0 {
		fmt.Printf("pointer: clicks=%d misses=%d accuracy=%.0f%%\n",
			totalClicks, totalMisses, float64(totalClicks-totalMisses)/float64(totalClicks)*100)
	}
}

func accuracy(rs runStats) float64 {
	if rs.clicks == 0 {
		return 0
	}
	return float64(rs.clicks-rs.misses) / float64(rs.clicks)
}
