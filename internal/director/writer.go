package director

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ivlev/scenegen/internal/config"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// ErrMalformedTrack is returned when a track file cannot be parsed
var ErrMalformedTrack = errors.New("malformed track")

// fieldsPerFrame is eye xyz, dir xyz, up xyz and fov
const fieldsPerFrame = 10

// maxPrealloc bounds the capacity reserved from a declared frame count
const maxPrealloc = 1 << 16

// MarshalTrack renders the md5camera text format: the frame count on the
// first line, then one line of space-separated values per frame
func MarshalTrack(t *Track) []byte {
	var buf bytes.Buffer
	buf.WriteString(strconv.Itoa(t.Len()))
	for _, k := range t.Frames {
		buf.WriteByte('\n')
		values := [fieldsPerFrame]float64{
			k.Eye.X, k.Eye.Y, k.Eye.Z,
			k.Dir.X, k.Dir.Y, k.Dir.Z,
			k.Up.X, k.Up.Y, k.Up.Z,
			k.FOV,
		}
		for i, v := range values {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(formatValue(v))
		}
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// formatValue rounds to 6 decimal places; negative zero is written as zero
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if s == "-0.000000" {
		return "0.000000"
	}
	return s
}

// WriteTrack writes the track to w in a single write
func WriteTrack(w io.Writer, t *Track) error {
	_, err := w.Write(MarshalTrack(t))
	return err
}

// ReadTrack parses a track in the md5camera text format
func ReadTrack(r io.Reader) (*Track, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing frame count", ErrMalformedTrack)
	}
	count, err := strconv.Atoi(sc.Text())
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad frame count %q", ErrMalformedTrack, sc.Text())
	}

	track := &Track{Frames: make([]Keyframe, 0, min(count, maxPrealloc))}
	var values [fieldsPerFrame]float64
	for frame := 0; frame < count; frame++ {
		for i := range values {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%w: expected %d frames, got %d", ErrMalformedTrack, count, frame)
			}
			v, err := strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: frame %d: %v", ErrMalformedTrack, frame, err)
			}
			values[i] = v
		}
		track.AppendOne(Keyframe{
			Eye: r3.Vec{X: values[0], Y: values[1], Z: values[2]},
			Dir: r3.Vec{X: values[3], Y: values[4], Z: values[5]},
			Up:  r3.Vec{X: values[6], Y: values[7], Z: values[8]},
			FOV: values[9],
		})
	}

	if sc.Scan() {
		return nil, fmt.Errorf("%w: trailing data after %d frames", ErrMalformedTrack, count)
	}

	return track, sc.Err()
}

// WriteScript writes a script to a YAML file
func WriteScript(script *Script, path string) error {
	data, err := yaml.Marshal(script)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadScript reads a script from a YAML or TOML file
func ReadScript(path string) (*Script, error) {
	var script Script
	if err := config.Load(path, &script); err != nil {
		return nil, err
	}

	return &script, nil
}
