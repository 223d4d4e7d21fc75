package fireflies

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/ivlev/scenegen/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrTooFewCurves is returned when a path would have no second control point
var ErrTooFewCurves = errors.New("at least one curve is required")

// DefaultSeed is used when no seed is configured
const DefaultSeed int64 = 0xdeadbeef

// Params controls the shape of a generated firefly loop
type Params struct {
	Seed   int64
	Center r3.Vec
	RMin   float64
	RMax   float64
	DY     float64 // Full height of the vertical jitter band
	Curves int

	// IndependentRadii draws separate radii for the x and z axes,
	// which gives a rougher, less ring-like loop.
	IndependentRadii bool
}

// DefaultParams returns the parameters of the shipped fireflies path
func DefaultParams() Params {
	return Params{
		Seed:   DefaultSeed,
		Center: r3.Vec{X: 32, Y: 5, Z: 32},
		RMin:   16,
		RMax:   30,
		DY:     2,
		Curves: 12,
	}
}

// PointCount returns the number of control points for the given curve count
func PointCount(curves int) int {
	return 3*curves + 1
}

// Generate builds a closed loop of 3*curves+1 Bézier control points.
// Steps run in a fixed order: random sampling, smoothing of every third
// point, then closure of the first and last point.
func Generate(p Params) (Path, error) {
	if p.Curves < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCurves, p.Curves)
	}

	rng := rand.New(rand.NewSource(p.Seed))
	points := sample(p, rng)
	smooth(points)
	closeLoop(points)

	return Path(points), nil
}

// sample places n points at evenly spaced angles with random radius and height
func sample(p Params, rng *rand.Rand) []r3.Vec {
	n := PointCount(p.Curves)
	points := make([]r3.Vec, n)
	span := p.RMax - p.RMin

	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)

		rx := rng.Float64()*span + p.RMin
		y := p.DY*rng.Float64() - p.DY/2
		rz := rx
		if p.IndependentRadii {
			rz = rng.Float64()*span + p.RMin
		}

		points[i] = r3.Vec{
			X: rx*math.Cos(t) + p.Center.X,
			Y: y + p.Center.Y,
			Z: rz*math.Sin(t) + p.Center.Z,
		}
	}

	return points
}

// smooth replaces every third interior point with the midpoint of its neighbours
func smooth(points []r3.Vec) {
	for i := 3; i+1 < len(points); i += 3 {
		points[i] = geom.Midpoint(points[i-1], points[i+1])
	}
}

// closeLoop overwrites both ends with the midpoint of the second and second-to-last points
func closeLoop(points []r3.Vec) {
	n := len(points)
	end := geom.Midpoint(points[1], points[n-2])
	points[0] = end
	points[n-1] = end
}
