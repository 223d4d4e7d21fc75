package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroVector is returned when a zero-length vector has no direction
var ErrZeroVector = errors.New("zero-length vector cannot be normalized")

// WorldUp is the fixed up vector used by moving camera shots
var WorldUp = r3.Vec{X: 0, Y: 1, Z: 0}

// Normalize divides every component by the Euclidean norm of v
func Normalize(v r3.Vec) (r3.Vec, error) {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}, ErrZeroVector
	}
	return r3.Vec{X: v.X / n, Y: v.Y / n, Z: v.Z / n}, nil
}

// Midpoint returns a + (b-a)/2
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: a.X + (b.X-a.X)/2,
		Y: a.Y + (b.Y-a.Y)/2,
		Z: a.Z + (b.Z-a.Z)/2,
	}
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Vec{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(b, a))
}

// Round rounds half to even, so 2.5 becomes 2 and 3.5 becomes 4
func Round(x float64) int {
	return int(math.RoundToEven(x))
}

// Bezier evaluates a cubic Bézier curve at t in [0, 1]
func Bezier(p0, p1, p2, p3 r3.Vec, t float64) r3.Vec {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return r3.Add(
		r3.Add(r3.Scale(b0, p0), r3.Scale(b1, p1)),
		r3.Add(r3.Scale(b2, p2), r3.Scale(b3, p3)),
	)
}
