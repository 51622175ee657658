// Command profile-plot assembles one motion profile and renders its traces
// to PNG files.
//
// Usage:
//
//	go run ./cmd/tools/profile-plot [flags]
//
// Flags:
//
//	-config     Defaults file (default: config/profile.defaults.json)
//	-out        Output directory for PNGs (default: plots)
//	-trajectory Trajectory kind: trapezoid or sextic
//	-distance   Travel distance in mm
//	-rate       Cruise rate in mm/s
//	-advance    Advance mode: linear or lag ("" disables the comparison plots)
package main

import (
	"flag"
	"log"

	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/motion"
	"github.com/banshee-data/motion.report/internal/profileplot"
	"github.com/banshee-data/motion.report/internal/version"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Defaults file")
	outDir := flag.String("out", "plots", "Output directory for PNGs")
	trajectory := flag.String("trajectory", "", "Trajectory kind: trapezoid or sextic")
	distance := flag.Float64("distance", 0, "Travel distance in mm (0 keeps the configured default)")
	rate := flag.Float64("rate", 0, "Cruise rate in mm/s (0 keeps the configured default)")
	smoothTime := flag.Float64("smooth-time", -1, "Axis smoothing time in s (-1 keeps the configured default)")
	advance := flag.String("advance", "linear", "Advance mode: linear or lag (empty disables comparison plots)")
	flag.Parse()

	log.Printf("profile-plot %s (%s)", version.Version, version.GitSHA)

	cfg, err := config.LoadProfileConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	params := cfg.Params()
	if *trajectory != "" {
		kind, err := motion.ParseTrajectoryKind(*trajectory)
		if err != nil {
			log.Fatalf("Bad -trajectory: %v", err)
		}
		params.Trajectory = kind
	}
	if *distance > 0 {
		params.Distance = *distance
	}
	if *rate > 0 {
		params.Rate = *rate
	}
	if *smoothTime >= 0 {
		params.SmoothTime = *smoothTime
	}

	planned, err := motion.Assemble(params)
	if err != nil {
		log.Fatalf("Failed to assemble profile: %v", err)
	}
	log.Printf("Assembled %s profile: %d samples, %.3fs", params.Trajectory, planned.Len(), planned.Duration())

	renderer, err := profileplot.NewRenderer(profileplot.MakePlotOutputDir(*outDir))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	files, err := renderer.RenderProfile(planned, params.Trajectory.String())
	if err != nil {
		log.Fatalf("Failed to render profile: %v", err)
	}

	if *advance != "" {
		mode, err := motion.ParseAdvanceMode(*advance)
		if err != nil {
			log.Fatalf("Bad -advance: %v", err)
		}
		effective := motion.WithAdvance(planned, mode, params.AdvanceK)
		comparison, err := renderer.RenderComparison(planned, effective, params.Trajectory.String())
		if err != nil {
			log.Fatalf("Failed to render comparison: %v", err)
		}
		files = append(files, comparison...)
	}

	for _, f := range files {
		log.Printf("Wrote %s", f)
	}
}
