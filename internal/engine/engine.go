package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"

	"github.com/ivlev/scenegen/internal/config"
	"github.com/ivlev/scenegen/internal/director"
	"github.com/ivlev/scenegen/internal/fireflies"
	"github.com/ivlev/scenegen/internal/renderer"
	"github.com/ivlev/scenegen/internal/system"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownKind is returned for a job whose kind has no generator
var ErrUnknownKind = errors.New("unknown job kind")

// Result describes what one job produced
type Result struct {
	Name   string
	Output string
	Bytes  int
	Points int // Control points, fireflies jobs only
	Frames int // Keyframes, track jobs only
}

// Project runs every job of a manifest
type Project struct {
	Manifest *Manifest
	Workers  int
	Logger   *log.Logger
}

// NewProject creates a project. workers <= 0 uses the manifest's worker
// count, and the number of CPUs if that is unset too.
func NewProject(m *Manifest, workers int, logger *log.Logger) *Project {
	if workers <= 0 {
		workers = m.Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Project{
		Manifest: m,
		Workers:  workers,
		Logger:   logger,
	}
}

// Run executes the jobs on at most Workers goroutines. Every job owns its
// random source, so outputs do not depend on scheduling. The first failure
// cancels the jobs that have not started yet.
func (p *Project) Run(ctx context.Context) ([]Result, error) {
	jobs := p.Manifest.Jobs
	results := make([]Result, len(jobs))
	var done atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := RunJob(job)
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			results[i] = res

			p.Logger.Printf("[>] Ready: %d/%d %s -> %s", done.Add(1), len(jobs), job.Name, res.Output)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunJob generates one job's output and optional preview
func RunJob(job Job) (Result, error) {
	switch job.Kind {
	case KindFireflies:
		cfg, err := config.LoadFireflies(job.Config)
		if err != nil {
			return Result{}, err
		}
		data, path, err := RenderFireflies(cfg)
		if err != nil {
			return Result{}, err
		}
		if err := system.WriteOutput(job.Output, data); err != nil {
			return Result{}, err
		}
		if job.Preview != "" {
			if err := WriteFirefliesPreview(job.Preview, path, cfg.Params()); err != nil {
				return Result{}, err
			}
		}
		return Result{Name: job.Name, Output: job.Output, Bytes: len(data), Points: len(path)}, nil

	case KindTrack:
		script := director.DefaultScript()
		if job.Config != "" {
			var err error
			if script, err = director.ReadScript(job.Config); err != nil {
				return Result{}, err
			}
		}
		data, track, err := RenderTrack(script)
		if err != nil {
			return Result{}, err
		}
		if err := system.WriteOutput(job.Output, data); err != nil {
			return Result{}, err
		}
		if job.Preview != "" {
			if err := WriteTrackPreview(job.Preview, track); err != nil {
				return Result{}, err
			}
		}
		return Result{Name: job.Name, Output: job.Output, Bytes: len(data), Frames: track.Len()}, nil

	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, job.Kind)
	}
}

// RenderFireflies generates a fireflies path and its JSON document
func RenderFireflies(cfg config.Fireflies) ([]byte, fireflies.Path, error) {
	path, err := fireflies.Generate(cfg.Params())
	if err != nil {
		return nil, nil, err
	}

	data, err := fireflies.NewDocument(path, cfg.Speed).Marshal()
	if err != nil {
		return nil, nil, err
	}
	return data, path, nil
}

// RenderTrack builds a script into a track and its text form
func RenderTrack(script *director.Script) ([]byte, *director.Track, error) {
	track, err := script.Build(director.NewDirector())
	if err != nil {
		return nil, nil, err
	}
	return director.MarshalTrack(track), track, nil
}

// WriteFirefliesPreview writes the top-down PNG of a fireflies path
func WriteFirefliesPreview(file string, path fireflies.Path, params fireflies.Params) error {
	opts := renderer.DefaultOptions()
	lo, hi := renderer.PathBounds(path, params)
	if lo.X < opts.Min || lo.Z < opts.Min || hi.X > opts.Max || hi.Z > opts.Max {
		opts = opts.Fit(lo, hi)
	}
	return renderer.WritePNG(file, renderer.RenderPathPreview(path, params, opts))
}

// WriteTrackPreview writes the top-down PNG of a track's eye path
func WriteTrackPreview(file string, track *director.Track) error {
	opts := renderer.DefaultOptions().Fit(renderer.TrackBounds(track))
	return renderer.WritePNG(file, renderer.RenderTrackPreview(track, 0, opts))
}
