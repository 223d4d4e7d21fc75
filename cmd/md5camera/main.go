package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ivlev/scenegen/internal/director"
	"github.com/ivlev/scenegen/internal/engine"
	"github.com/ivlev/scenegen/internal/system"
)

func main() {
	log.SetFlags(0)
	start := time.Now()

	scriptPtr := flag.String("script", "", "Track script (.yaml or .toml), or \"latest\" for the newest script in tracks/ (default: built-in movie)")
	outputPtr := flag.String("output", "", "Output track path, \"auto\" for a timestamped file in tracks/ (default: stdout)")
	previewPtr := flag.String("preview", "", "Write a top-down PNG of the eye path to this file")
	inspectPtr := flag.String("inspect", "", "Print every frame of an existing track file and exit")
	dumpPtr := flag.String("dump-script", "", "Write the script in use as YAML to this file")
	statsPtr := flag.Bool("stats", false, "Print a performance report and append it to benchmark.log")

	flag.Parse()

	if *inspectPtr != "" {
		if err := inspect(*inspectPtr); err != nil {
			log.Fatalf("[-] Failed to inspect track: %v", err)
		}
		return
	}

	script := director.DefaultScript()
	scriptPath := *scriptPtr
	if scriptPath == "latest" {
		latest, err := director.FindLatestScript()
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a script into %s/", err, director.TracksDir)
		}
		scriptPath = latest
	}
	if scriptPath != "" {
		var err error
		script, err = director.ReadScript(scriptPath)
		if err != nil {
			log.Fatalf("[-] Failed to read script: %v", err)
		}
		log.Printf("[*] Using script: %s (%d steps)", scriptPath, len(script.Steps))
	}

	if *dumpPtr != "" {
		if err := director.WriteScript(script, *dumpPtr); err != nil {
			log.Fatalf("[-] Failed to write script: %v", err)
		}
		log.Printf("[*] Script saved: %s", *dumpPtr)
	}

	data, track, err := engine.RenderTrack(script)
	if err != nil {
		log.Fatalf("[-] Failed to build track: %v", err)
	}

	output := *outputPtr
	if output == "auto" {
		output = director.GenerateTrackPath()
	}
	if err := system.WriteOutput(output, data); err != nil {
		log.Fatalf("[-] Failed to write output: %v", err)
	}

	if *previewPtr != "" {
		if err := engine.WriteTrackPreview(*previewPtr, track); err != nil {
			log.Fatalf("[-] Failed to write preview: %v", err)
		}
		log.Printf("[*] Preview saved: %s", *previewPtr)
	}

	if output != "" {
		log.Printf("[+++] %d frames saved: %s", track.Len(), output)
	}

	if *statsPtr {
		stats := system.CollectStats("md5camera", 1, start)
		log.Print(stats.Report())
		if err := stats.AppendLog("benchmark.log"); err != nil {
			log.Printf("[!] Failed to write benchmark.log: %v", err)
		}
	}
}

// inspect prints each frame of a track file the way the engine's loader does
func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	track, err := director.ReadTrack(f)
	if err != nil {
		return err
	}

	log.Printf("[*] %s: %d frames", path, track.Len())
	for i, k := range track.Frames {
		log.Printf("Frame %d: eyePos={%f, %f, %f}, camDir={%f, %f, %f}, upVec={%f, %f, %f}, fov=%f",
			i, k.Eye.X, k.Eye.Y, k.Eye.Z, k.Dir.X, k.Dir.Y, k.Dir.Z, k.Up.X, k.Up.Y, k.Up.Z, k.FOV)
	}
	return nil
}
