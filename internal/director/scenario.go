package director

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Keyframe is one sampled camera state
type Keyframe struct {
	Eye r3.Vec  // Eye position
	Dir r3.Vec  // View direction (unit length)
	Up  r3.Vec  // Up vector (unit length)
	FOV float64 // Field of view in degrees, passed through unchanged
}

// Sequence is an ordered run of keyframes produced by one shot
type Sequence []Keyframe

// Component is either a single Keyframe or a Sequence
type Component interface {
	frames() []Keyframe
}

func (k Keyframe) frames() []Keyframe { return []Keyframe{k} }

func (s Sequence) frames() []Keyframe { return s }

// Track is the ordered list of keyframes played back by the engine
type Track struct {
	Frames []Keyframe
}

// Len returns the number of frames in the track
func (t *Track) Len() int {
	return len(t.Frames)
}

// AppendOne adds a single keyframe
func (t *Track) AppendOne(k Keyframe) {
	t.Frames = append(t.Frames, k)
}

// AppendMany adds every keyframe of s in order
func (t *Track) AppendMany(s Sequence) {
	t.Frames = append(t.Frames, s...)
}

// Composite flattens components into one track, keeping their order
func Composite(components ...Component) *Track {
	track := &Track{}
	for _, c := range components {
		track.Frames = append(track.Frames, c.frames()...)
	}
	return track
}
