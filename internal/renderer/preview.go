package renderer

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/ivlev/scenegen/internal/director"
	"github.com/ivlev/scenegen/internal/fireflies"
	"github.com/ivlev/scenegen/internal/system"
	"gonum.org/v1/gonum/spatial/r3"
)

// samplesPerCurve controls how finely Bézier segments are drawn
const samplesPerCurve = 32

// smoothEps matches the engine's debug threshold for smooth joints
const smoothEps = 0.01

// RenderPathPreview draws a fireflies path from above: the rmin and rmax
// rings, the control cage, the evaluated curve, and the control points.
// Joints are green when smooth and red otherwise; handles are blue.
func RenderPathPreview(path fireflies.Path, params fireflies.Params, opts Options) *image.RGBA {
	c := newCanvas(opts)

	c.ring(params.Center, params.RMin, colorOrange)
	c.ring(params.Center, params.RMax, colorGreen)
	c.polyline(path, colorGray)

	if curves := path.CurveCount(); curves > 0 {
		samples := make([]r3.Vec, curves*samplesPerCurve+1)
		for i := range samples {
			samples[i] = path.Evaluate(float64(i) / samplesPerCurve)
		}
		c.polyline(samples, colorBlue)
	}

	for i, p := range path {
		if i%3 != 0 {
			c.dot(p, 4, colorBlue)
			continue
		}
		col := colorRed
		if path.SmoothAt(i, smoothEps) {
			col = colorGreen
		}
		c.dot(p, 6, col)
		if i+1 < len(path) {
			c.label(p, fmt.Sprintf("%x", (i/3)%16), colorBlack)
		}
	}

	return c.img
}

// RenderTrackPreview draws the eye path of a track from above, with a
// short view-direction tick every tickEvery frames. The first frame is
// marked green and the last red.
func RenderTrackPreview(track *director.Track, tickEvery int, opts Options) *image.RGBA {
	c := newCanvas(opts)
	if track.Len() == 0 {
		return c.img
	}
	if tickEvery <= 0 {
		tickEvery = 25
	}

	eyes := make([]r3.Vec, track.Len())
	for i, k := range track.Frames {
		eyes[i] = k.Eye
	}
	c.polyline(eyes, colorBlue)

	tick := (c.opts.Max - c.opts.Min) / 40
	for i := 0; i < track.Len(); i += tickEvery {
		k := track.Frames[i]
		c.polyline([]r3.Vec{k.Eye, r3.Add(k.Eye, r3.Scale(tick, k.Dir))}, colorOrange)
	}

	c.dot(eyes[0], 7, colorGreen)
	c.dot(eyes[len(eyes)-1], 7, colorRed)
	return c.img
}

// TrackBounds returns the box spanning every eye position of a track
func TrackBounds(track *director.Track) (lo, hi r3.Vec) {
	eyes := make(fireflies.Path, track.Len())
	for i, k := range track.Frames {
		eyes[i] = k.Eye
	}
	return eyes.Bounds()
}

// PathBounds returns the box spanning the control points and the outer ring
func PathBounds(path fireflies.Path, params fireflies.Params) (lo, hi r3.Vec) {
	lo, hi = path.Bounds()
	ring := r3.Vec{X: params.RMax, Z: params.RMax}
	return minVec(lo, r3.Sub(params.Center, ring)), maxVec(hi, r3.Add(params.Center, ring))
}

func minVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// WritePNG encodes img to path and hands the canvas back to the image pool.
// img must not be used afterwards.
func WritePNG(path string, img *image.RGBA) error {
	defer system.PutImage(img)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode preview: %w", err)
	}

	return f.Close()
}
