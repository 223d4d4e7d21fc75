package engine

import (
	"fmt"
	"path/filepath"

	"github.com/ivlev/scenegen/internal/config"
)

// Job kinds
const (
	KindFireflies = "fireflies"
	KindTrack     = "track"
)

// Manifest lists independent generator runs for one batch
type Manifest struct {
	Version string `yaml:"version" toml:"version"`
	Workers int    `yaml:"workers,omitempty" toml:"workers,omitempty"`
	Jobs    []Job  `yaml:"jobs" toml:"jobs"`
}

// Job is one generator run. Config is a fireflies parameter file or a
// track script; an empty Config uses the built-in defaults.
type Job struct {
	Name    string `yaml:"name" toml:"name"`
	Kind    string `yaml:"kind" toml:"kind"`
	Config  string `yaml:"config,omitempty" toml:"config,omitempty"`
	Output  string `yaml:"output" toml:"output"`
	Preview string `yaml:"preview,omitempty" toml:"preview,omitempty"`
}

// LoadManifest reads a manifest and resolves job paths relative to it
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if err := config.Load(path, &m); err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i := range m.Jobs {
		job := &m.Jobs[i]
		if job.Name == "" {
			job.Name = fmt.Sprintf("%s_%d", job.Kind, i+1)
		}
		job.Config = resolve(base, job.Config)
		job.Output = resolve(base, job.Output)
		job.Preview = resolve(base, job.Preview)
	}

	return &m, nil
}

func resolve(base, path string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
