// Command profile-sweep assembles a series of profiles while varying one
// parameter, records each run to a sqlite database, and prints a summary
// table.
//
// Usage:
//
//	go run ./cmd/tools/profile-sweep [flags]
//
// Flags:
//
//	-config  Defaults file (default: config/profile.defaults.json)
//	-db      Sweep database path (default: sweep.db)
//	-param   Parameter to sweep: rate, accel, advance_k, smooth_time
//	-from    Start value (inclusive)
//	-to      End value (inclusive)
//	-steps   Number of runs across the range (default: 10)
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/motion"
	"github.com/banshee-data/motion.report/internal/sweepdb"
	"github.com/banshee-data/motion.report/internal/version"
)

// setSweptValue applies the swept value to its parameter field.
func setSweptValue(params *motion.Params, name string, value float64) error {
	switch name {
	case "rate":
		params.Rate = value
	case "accel":
		params.Accel = value
	case "advance_k":
		params.AdvanceK = value
	case "smooth_time":
		params.SmoothTime = value
	default:
		return fmt.Errorf("unknown sweep parameter %q (want rate, accel, advance_k or smooth_time)", name)
	}
	return nil
}

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Defaults file")
	dbPath := flag.String("db", "sweep.db", "Sweep database path")
	param := flag.String("param", "rate", "Parameter to sweep: rate, accel, advance_k, smooth_time")
	from := flag.Float64("from", 25, "Start value (inclusive)")
	to := flag.Float64("to", 150, "End value (inclusive)")
	steps := flag.Int("steps", 10, "Number of runs across the range")
	flag.Parse()

	log.Printf("profile-sweep %s (%s)", version.Version, version.GitSHA)

	if *steps < 1 {
		log.Fatalf("-steps must be at least 1, got %d", *steps)
	}

	cfg, err := config.LoadProfileConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sweepdb.NewSweepDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open sweep database: %v", err)
	}
	defer db.Close()

	mode := cfg.GetAdvanceMode()

	step := 0.0
	if *steps > 1 {
		step = (*to - *from) / float64(*steps-1)
	}

	log.Printf("Sweeping %s from %g to %g over %d runs", *param, *from, *to, *steps)

	fmt.Printf("%-12s %10s %10s %12s %12s %12s\n",
		*param, "samples", "dur (s)", "peak v", "peak a", "min a")

	for i := 0; i < *steps; i++ {
		value := *from + float64(i)*step

		params := cfg.Params()
		if err := setSweptValue(&params, *param, value); err != nil {
			log.Fatalf("Bad -param: %v", err)
		}

		planned, err := motion.Assemble(params)
		if err != nil {
			log.Fatalf("Run %s=%g failed: %v", *param, value, err)
		}
		effective := motion.WithAdvance(planned, mode, params.AdvanceK)
		summary := effective.Summarize()

		if _, err := db.RecordRun(*param, params, mode, summary); err != nil {
			log.Fatalf("Failed to record run: %v", err)
		}

		fmt.Printf("%-12g %10d %10.3f %12.2f %12.1f %12.1f\n",
			value, summary.Samples, summary.Duration,
			summary.Velocity.Max, summary.Acceleration.Max, summary.Acceleration.Min)
	}

	runs, err := db.ListRuns(*param, 0)
	if err != nil {
		log.Fatalf("Failed to list runs: %v", err)
	}
	log.Printf("Database now holds %d runs for %s", len(runs), *param)
}
