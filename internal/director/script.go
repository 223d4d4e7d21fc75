package director

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/scenegen/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnknownStep is returned for a script step with an unsupported kind
var ErrUnknownStep = errors.New("unknown step kind")

// Step kinds
const (
	KindHold = "hold"
	KindSpin = "spin"
	KindLine = "line"
)

// Vec3 is a point or direction written as [x, y, z] in script files
type Vec3 [3]float64

// Vec converts to a gonum vector
func (v Vec3) Vec() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Script describes a movie as an ordered list of camera shots
type Script struct {
	Version string `yaml:"version" toml:"version"`
	Steps   []Step `yaml:"steps" toml:"steps"`
}

// Step is one camera shot. Which fields apply depends on Kind:
//
//	hold: eye, dir, up, frames
//	spin: origin, radius, dy, frames
//	line: start, end, dir, frames
type Step struct {
	Kind   string   `yaml:"kind" toml:"kind"`
	Eye    Vec3     `yaml:"eye,omitempty" toml:"eye,omitempty"`
	Dir    Vec3     `yaml:"dir,omitempty" toml:"dir,omitempty"`
	Up     *Vec3    `yaml:"up,omitempty" toml:"up,omitempty"`
	Origin Vec3     `yaml:"origin,omitempty" toml:"origin,omitempty"`
	Radius *float64 `yaml:"radius,omitempty" toml:"radius,omitempty"`
	DY     float64  `yaml:"dy,omitempty" toml:"dy,omitempty"`
	Start  Vec3     `yaml:"start,omitempty" toml:"start,omitempty"`
	End    Vec3     `yaml:"end,omitempty" toml:"end,omitempty"`
	Frames int      `yaml:"frames,omitempty" toml:"frames,omitempty"`
	FOV    *float64 `yaml:"fov,omitempty" toml:"fov,omitempty"`
}

// Shot runs the step through d and returns its keyframes
func (s Step) Shot(d *Director) (Sequence, error) {
	fov := d.FOV
	if s.FOV != nil {
		fov = *s.FOV
	}

	switch strings.ToLower(s.Kind) {
	case KindHold:
		up := geom.WorldUp
		if s.Up != nil {
			up = s.Up.Vec()
		}
		return d.Hold(s.Eye.Vec(), s.Dir.Vec(), up, s.Frames, fov)
	case KindSpin:
		radius := d.SpinRadius
		if s.Radius != nil {
			radius = *s.Radius
		}
		return d.Spin(s.Origin.Vec(), radius, s.DY, s.Frames, fov)
	case KindLine:
		return d.Line(s.Start.Vec(), s.End.Vec(), s.Dir.Vec(), s.Frames, fov)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, s.Kind)
	}
}

// Build runs every step in order and composites the results into a track
func (sc *Script) Build(d *Director) (*Track, error) {
	components := make([]Component, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		seq, err := step.Shot(d)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Kind, err)
		}
		components = append(components, seq)
	}
	return Composite(components...), nil
}

// DefaultScript returns the movie shipped with the engine: a long hold on
// the entrance, an orbit of the clearing, a top-down hold, a diagonal
// fly-over and a closing hold.
func DefaultScript() *Script {
	radius := 7.0
	return &Script{
		Version: "1.0",
		Steps: []Step{
			{Kind: KindHold, Eye: Vec3{31, 1.75, 14}, Dir: Vec3{1, -0.1, 1}, Up: &Vec3{0, 1, 0}, Frames: 500},
			{Kind: KindSpin, Origin: Vec3{32, 5, 32}, Radius: &radius, DY: 3},
			{Kind: KindHold, Eye: Vec3{20.5, 15, 20.5}, Dir: Vec3{0, -1, 0}, Up: &Vec3{1, 0, 0}, Frames: 100},
			{Kind: KindLine, Start: Vec3{-10, 7, -10}, End: Vec3{50, 7, 50}, Dir: Vec3{1, -0.5, 1}},
			{Kind: KindHold, Eye: Vec3{16, 5, 16}, Dir: Vec3{-1, -0.25, -1}, Up: &Vec3{0, 1, 0}, Frames: 250},
		},
	}
}

// IsZero lets the YAML encoder omit unset vectors
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}
