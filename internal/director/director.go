package director

import (
	"fmt"
	"math"

	"github.com/ivlev/scenegen/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Director builds camera shots for md5camera movie tracks
type Director struct {
	FOV           float64 // Field of view used when a shot does not set one
	SpinRadius    float64 // Orbit radius used when a spin does not set one
	FramesPerUnit int     // Frames per unit of travel for automatic frame counts
}

// NewDirector creates a new Director with default settings
func NewDirector() *Director {
	return &Director{
		FOV:           45.0,
		SpinRadius:    10.0,
		FramesPerUnit: 8,
	}
}

// Spin orbits a full circle around origin at the given radius and height
// offset, always looking at origin. frames == 0 picks a count from the
// circumference.
func (d *Director) Spin(origin r3.Vec, radius, dy float64, frames int, fov float64) (Sequence, error) {
	if frames == 0 {
		frames = geom.Round(2*math.Pi*radius) * d.FramesPerUnit
	}
	if frames <= 0 {
		return Sequence{}, nil
	}

	seq := make(Sequence, frames)
	for n := 0; n < frames; n++ {
		a := float64(n) / float64(frames) * 2 * math.Pi
		c, s := radius*math.Cos(a), radius*math.Sin(a)

		dir, err := geom.Normalize(r3.Vec{X: -c, Y: -dy, Z: -s})
		if err != nil {
			return nil, fmt.Errorf("spin frame %d: %w", n, err)
		}

		seq[n] = Keyframe{
			Eye: r3.Vec{X: origin.X + c, Y: origin.Y + dy, Z: origin.Z + s},
			Dir: dir,
			Up:  geom.WorldUp,
			FOV: fov,
		}
	}

	return seq, nil
}

// Line moves the eye from start towards end while looking along dir.
// The end point itself is not sampled. frames == 0 picks a count from the
// distance travelled.
func (d *Director) Line(start, end, dir r3.Vec, frames int, fov float64) (Sequence, error) {
	if frames == 0 {
		frames = geom.Round(geom.Distance(start, end)) * d.FramesPerUnit
	}
	if frames <= 0 {
		return Sequence{}, nil
	}

	unit, err := geom.Normalize(dir)
	if err != nil {
		return nil, fmt.Errorf("line direction: %w", err)
	}

	seq := make(Sequence, frames)
	for n := 0; n < frames; n++ {
		seq[n] = Keyframe{
			Eye: geom.Lerp(start, end, float64(n)/float64(frames)),
			Dir: unit,
			Up:  geom.WorldUp,
			FOV: fov,
		}
	}

	return seq, nil
}

// Hold repeats one camera state for exactly frames frames
func (d *Director) Hold(eye, dir, up r3.Vec, frames int, fov float64) (Sequence, error) {
	unitDir, err := geom.Normalize(dir)
	if err != nil {
		return nil, fmt.Errorf("hold direction: %w", err)
	}
	unitUp, err := geom.Normalize(up)
	if err != nil {
		return nil, fmt.Errorf("hold up vector: %w", err)
	}

	if frames <= 0 {
		return Sequence{}, nil
	}

	k := Keyframe{Eye: eye, Dir: unitDir, Up: unitUp, FOV: fov}
	seq := make(Sequence, frames)
	for i := range seq {
		seq[i] = k
	}

	return seq, nil
}
