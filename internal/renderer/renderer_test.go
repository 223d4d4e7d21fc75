package renderer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/scenegen/internal/director"
	"github.com/ivlev/scenegen/internal/fireflies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestProjectCorners(t *testing.T) {
	c := newCanvas(DefaultOptions())
	defer WritePNG(filepath.Join(t.TempDir(), "unused.png"), c.img)

	x, y := c.project(r3.Vec{X: 0, Z: 0})
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(512), y)

	x, y = c.project(r3.Vec{X: 64, Y: 100, Z: 64})
	assert.Equal(t, float32(512), x)
	assert.Equal(t, float32(0), y)

	x, y = c.project(r3.Vec{X: 32, Z: 16})
	assert.Equal(t, float32(256), x)
	assert.Equal(t, float32(384), y)
}

func TestFit(t *testing.T) {
	opts := DefaultOptions().Fit(r3.Vec{X: -10, Z: 0}, r3.Vec{X: 50, Z: 40})
	assert.InDelta(t, -16.0, opts.Min, 1e-9)
	assert.InDelta(t, 56.0, opts.Max, 1e-9)

	opts = DefaultOptions().Fit(r3.Vec{X: 3, Z: 3}, r3.Vec{X: 3, Z: 3})
	assert.Greater(t, opts.Max, opts.Min)
}

func TestRenderPathPreview(t *testing.T) {
	params := fireflies.DefaultParams()
	path, err := fireflies.Generate(params)
	require.NoError(t, err)

	img := RenderPathPreview(path, params, DefaultOptions())
	require.Equal(t, 512, img.Bounds().Dx())

	// The center of the ring stays background, the anchor of segment 1 is drawn
	cx, cy := 256, 256
	assert.Equal(t, uint8(0xff), img.RGBAAt(cx, cy).R)
	assert.Equal(t, uint8(0xff), img.RGBAAt(cx, cy).G)

	out := filepath.Join(t.TempDir(), "preview", "fireflies.png")
	require.NoError(t, WritePNG(out, img))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 512, decoded.Bounds().Dx())
}

func TestRenderPathPreviewDrawsCurve(t *testing.T) {
	params := fireflies.DefaultParams()
	path, err := fireflies.Generate(params)
	require.NoError(t, err)

	img := RenderPathPreview(path, params, DefaultOptions())
	defer WritePNG(filepath.Join(t.TempDir(), "unused.png"), img)

	painted := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if px := img.RGBAAt(x, y); px.R != 0xff || px.G != 0xff || px.B != 0xff {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 1000)
}

func TestRenderTrackPreview(t *testing.T) {
	track, err := director.DefaultScript().Build(director.NewDirector())
	require.NoError(t, err)

	lo, hi := TrackBounds(track)
	assert.Equal(t, -10.0, lo.X)
	assert.Greater(t, hi.X, 49.0)
	assert.Less(t, hi.X, 50.0)

	opts := DefaultOptions().Fit(lo, hi)
	img := RenderTrackPreview(track, 0, opts)

	// Start marker
	x, y := (&canvas{opts: opts}).project(track.Frames[0].Eye)
	px := img.RGBAAt(int(x), int(y))
	assert.Greater(t, px.G, px.R)
	assert.Greater(t, px.G, px.B)

	require.NoError(t, WritePNG(filepath.Join(t.TempDir(), "track.png"), img))
}

func TestRenderEmptyTrack(t *testing.T) {
	img := RenderTrackPreview(&director.Track{}, 10, DefaultOptions())
	assert.Equal(t, uint8(0xff), img.RGBAAt(10, 10).R)
	require.NoError(t, WritePNG(filepath.Join(t.TempDir(), "empty.png"), img))
}

func TestPathBounds(t *testing.T) {
	params := fireflies.DefaultParams()
	path, err := fireflies.Generate(params)
	require.NoError(t, err)

	lo, hi := PathBounds(path, params)
	assert.LessOrEqual(t, lo.X, 2.0)
	assert.GreaterOrEqual(t, hi.Z, 62.0)
}
