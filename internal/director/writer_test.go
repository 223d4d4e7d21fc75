package director

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ivlev/scenegen/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestMarshalTrackFormat(t *testing.T) {
	track := &Track{}
	track.AppendOne(Keyframe{
		Eye: r3.Vec{X: 31, Y: 1.75, Z: 14},
		Dir: r3.Vec{X: 1.0 / 3, Y: -0.0000001, Z: 2.0 / 3},
		Up:  geom.WorldUp,
		FOV: 45,
	})

	want := "1\n" +
		"31.000000 1.750000 14.000000 0.333333 0.000000 0.666667 0.000000 1.000000 0.000000 45.000000\n"
	assert.Equal(t, want, string(MarshalTrack(track)))
}

func TestMarshalEmptyTrack(t *testing.T) {
	assert.Equal(t, "0\n", string(MarshalTrack(&Track{})))
}

func TestMarshalDefaultScript(t *testing.T) {
	track, err := DefaultScript().Build(NewDirector())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(MarshalTrack(track)), "\n"), "\n")
	require.Equal(t, strconv.Itoa(track.Len()), lines[0])
	require.Len(t, lines, track.Len()+1)

	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		require.Len(t, fields, 10, "line %d", i+1)
		for _, f := range fields {
			dot := strings.IndexByte(f, '.')
			require.NotEqual(t, -1, dot, "line %d: %s", i+1, f)
			assert.Len(t, f[dot+1:], 6, "line %d: %s", i+1, f)
		}
	}
}

func TestReadTrack(t *testing.T) {
	track, err := DefaultScript().Build(NewDirector())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTrack(&buf, track))

	read, err := ReadTrack(&buf)
	require.NoError(t, err)
	require.Equal(t, track.Len(), read.Len())

	for i := range track.Frames {
		want, got := track.Frames[i], read.Frames[i]
		assert.InDelta(t, want.Eye.X, got.Eye.X, 5e-7)
		assert.InDelta(t, want.Dir.Y, got.Dir.Y, 5e-7)
		assert.InDelta(t, want.Up.Z, got.Up.Z, 5e-7)
		assert.Equal(t, want.FOV, got.FOV)
	}
}

func TestReadTrackMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad count", "many\n"},
		{"negative count", "-1\n"},
		{"short frame", "1\n1 2 3 4 5 6 7 8 9\n"},
		{"missing frame", "2\n1 2 3 4 5 6 7 8 9 10\n"},
		{"bad value", "1\n1 2 3 4 5 6 7 8 nine 10\n"},
		{"huge count", "9223372036854775807\n1 2 3 4 5 6 7 8 9 10\n"},
		{"large count without frames", "100000000\n"},
		{"trailing data", "1\n1 2 3 4 5 6 7 8 9 10\n11\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTrack(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedTrack)
		})
	}
}

func TestScriptWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movie.yaml")
	require.NoError(t, WriteScript(DefaultScript(), path))

	read, err := ReadScript(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultScript(), read)
}

func TestReadScriptTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movie.toml")
	content := `version = "1.0"

[[steps]]
kind = "hold"
eye = [0.0, 1.0, 0.0]
dir = [1.0, 0.0, 0.0]
frames = 3

[[steps]]
kind = "line"
start = [0.0, 0.0, 0.0]
end = [4.0, 0.0, 0.0]
dir = [1.0, 0.0, 0.0]
frames = 2
fov = 60.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	script, err := ReadScript(path)
	require.NoError(t, err)

	track, err := script.Build(NewDirector())
	require.NoError(t, err)
	require.Equal(t, 5, track.Len())
	assert.Equal(t, geom.WorldUp, track.Frames[0].Up)
	assert.Equal(t, 45.0, track.Frames[0].FOV)
	assert.Equal(t, r3.Vec{X: 2}, track.Frames[4].Eye)
	assert.Equal(t, 60.0, track.Frames[4].FOV)
}
