package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	rows := flag.Int("rows", 20, "Board height in cells.")
	cols := flag.Int("cols", 10, "Board width in cells.")
	speed := flag.String("speed", "fast", "Fall speed: slow, normal or fast.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed for pieces and input.")
	frameDelta := flag.Float64("frame-dt", 1.0/60.0, "Simulated seconds per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	rate, err := config.ParseSpeed(*speed)
	if err != nil {
		log.Fatalf("Invalid speed: %v", err)
	}

	log.Println("Starting blockfall soak...")

	cfg := board.Config{Rows: *rows, Cols: *cols}
	s := newSoak(cfg, rate, *seed)
	scheduler := loop.NewScheduler()
	s.register(scheduler)

	report := &Report{
		Duration:       *duration,
		Rows:           *rows,
		Cols:           *cols,
		Rate:           rate,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s with seed %d...\n", *duration, *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(*frameDelta)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Games = s.games
	report.BestScore = s.bestScore
	report.TotalLines = s.totalLines
	report.IntentsApplied = s.input.Applied
	report.GravityTicks = s.gravity.Ticks
	report.Violations = s.violations
	report.Systems = scheduler.GetStats().Systems

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(s.violations) > 0 {
		log.Fatalf("Soak found %d invariant violations.", len(s.violations))
	}
	log.Println("Soak complete.")
}
