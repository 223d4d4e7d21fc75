package main

import (
	"flag"
	"log"
	"time"

	"github.com/ivlev/scenegen/internal/config"
	"github.com/ivlev/scenegen/internal/engine"
	"github.com/ivlev/scenegen/internal/system"
)

func main() {
	log.SetFlags(0)
	start := time.Now()

	configPtr := flag.String("config", "", "Parameter file (.yaml or .toml); unset keys keep the built-in values")
	outputPtr := flag.String("output", "", "Output JSON path (default: stdout)")
	previewPtr := flag.String("preview", "", "Write a top-down PNG of the path to this file")
	seedPtr := flag.Int64("seed", 0, "Random seed (default: the configured seed)")
	curvesPtr := flag.Int("curves", 0, "Number of Bézier segments (default: the configured count)")
	independentPtr := flag.Bool("independent-radii", false, "Draw separate radii for the x and z axes")
	statsPtr := flag.Bool("stats", false, "Print a performance report and append it to benchmark.log")

	flag.Parse()

	cfg, err := config.LoadFireflies(*configPtr)
	if err != nil {
		log.Fatalf("[-] Failed to load parameters: %v", err)
	}
	applyFlags(&cfg, setFlags(), *seedPtr, *curvesPtr, *independentPtr)
	if cfg.RMin > cfg.RMax {
		log.Printf("[!] rmin %.2f is larger than rmax %.2f", cfg.RMin, cfg.RMax)
	}

	data, path, err := engine.RenderFireflies(cfg)
	if err != nil {
		log.Fatalf("[-] Failed to generate fireflies: %v", err)
	}

	if err := system.WriteOutput(*outputPtr, data); err != nil {
		log.Fatalf("[-] Failed to write output: %v", err)
	}

	if *previewPtr != "" {
		if err := engine.WriteFirefliesPreview(*previewPtr, path, cfg.Params()); err != nil {
			log.Fatalf("[-] Failed to write preview: %v", err)
		}
		log.Printf("[*] Preview saved: %s", *previewPtr)
	}

	if *outputPtr != "" {
		log.Printf("[+++] %d control points (%d curves) saved: %s", len(path), path.CurveCount(), *outputPtr)
	}

	if *statsPtr {
		stats := system.CollectStats("fireflies", 1, start)
		log.Print(stats.Report())
		if err := stats.AppendLog("benchmark.log"); err != nil {
			log.Printf("[!] Failed to write benchmark.log: %v", err)
		}
	}
}

// setFlags returns the names of the flags given on the command line
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags overrides config values only for flags that were given, so
// -seed 0 and -curves 0 are honoured
func applyFlags(cfg *config.Fireflies, set map[string]bool, seed int64, curves int, independent bool) {
	if set["seed"] {
		cfg.Seed = seed
	}
	if set["curves"] {
		cfg.Curves = curves
	}
	if set["independent-radii"] {
		cfg.IndependentRadii = independent
	}
}
