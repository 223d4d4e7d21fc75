package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/ivlev/scenegen/internal/engine"
	"github.com/ivlev/scenegen/internal/system"
)

func main() {
	log.SetFlags(0)
	start := time.Now()

	manifestPtr := flag.String("manifest", "scenegen.yaml", "Batch manifest (.yaml or .toml)")
	workersPtr := flag.Int("workers", 0, "Parallel jobs (0 uses the manifest's workers, then the CPU count)")
	statsPtr := flag.Bool("stats", false, "Print a performance report and append it to benchmark.log")

	flag.Parse()

	m, err := engine.LoadManifest(*manifestPtr)
	if err != nil {
		log.Fatalf("[-] Failed to load manifest: %v", err)
	}
	if len(m.Jobs) == 0 {
		log.Fatalf("[-] Error: manifest %s has no jobs", *manifestPtr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewProject(m, *workersPtr, log.Default())
	log.Printf("[*] Manifest: %s | Jobs: %d | Workers: %d", *manifestPtr, len(m.Jobs), project.Workers)

	results, err := project.Run(ctx)
	if err != nil {
		log.Fatalf("[-] Batch failed: %v", err)
	}

	total := 0
	for _, r := range results {
		total += r.Bytes
	}
	log.Printf("[+++] Done: %d outputs, %d bytes", len(results), total)

	if *statsPtr {
		stats := system.CollectStats("scenegen", len(results), start)
		log.Print(stats.Report())
		if err := stats.AppendLog("benchmark.log"); err != nil {
			log.Printf("[!] Failed to write benchmark.log: %v", err)
		}
	}
}
