package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/scenegen/internal/fireflies"
	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Fireflies holds the parameters of the fireflies generator as written in
// a config file
type Fireflies struct {
	Seed             int64      `yaml:"seed" toml:"seed"`
	Center           [3]float64 `yaml:"center" toml:"center"`
	RMin             float64    `yaml:"rmin" toml:"rmin"`
	RMax             float64    `yaml:"rmax" toml:"rmax"`
	DY               float64    `yaml:"dy" toml:"dy"`
	Curves           int        `yaml:"curves" toml:"curves"`
	Speed            float64    `yaml:"speed" toml:"speed"`
	IndependentRadii bool       `yaml:"independent_radii" toml:"independent_radii"`
}

// DefaultFireflies returns the parameters of the shipped fireflies path
func DefaultFireflies() Fireflies {
	p := fireflies.DefaultParams()
	return Fireflies{
		Seed:   p.Seed,
		Center: [3]float64{p.Center.X, p.Center.Y, p.Center.Z},
		RMin:   p.RMin,
		RMax:   p.RMax,
		DY:     p.DY,
		Curves: p.Curves,
		Speed:  fireflies.DefaultSpeed,
	}
}

// Params converts the file form into generator parameters
func (c Fireflies) Params() fireflies.Params {
	return fireflies.Params{
		Seed:             c.Seed,
		Center:           r3.Vec{X: c.Center[0], Y: c.Center[1], Z: c.Center[2]},
		RMin:             c.RMin,
		RMax:             c.RMax,
		DY:               c.DY,
		Curves:           c.Curves,
		IndependentRadii: c.IndependentRadii,
	}
}

// LoadFireflies reads fireflies parameters on top of the defaults, so a
// file only needs the keys it changes
func LoadFireflies(path string) (Fireflies, error) {
	cfg := DefaultFireflies()
	if path == "" {
		return cfg, nil
	}
	if err := Load(path, &cfg); err != nil {
		return Fireflies{}, err
	}
	return cfg, nil
}

// Load decodes a YAML (.yaml, .yml) or TOML (.toml) file into v
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	case ".toml":
		err = toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported config format %q: %s", ext, path)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
