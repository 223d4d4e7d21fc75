package fireflies

import (
	"math"

	"github.com/ivlev/scenegen/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Path is a closed chain of cubic Bézier segments sharing end points.
// Segment c uses control points 3c, 3c+1, 3c+2 and 3c+3.
type Path []r3.Vec

// CurveCount returns the number of complete Bézier segments
func (p Path) CurveCount() int {
	if len(p) == 0 {
		return 0
	}
	return (len(p) - 1) / 3
}

// Closed reports whether the first and last control points coincide
func (p Path) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Evaluate returns the position at s, where the integer part selects the
// segment (wrapping around the loop) and the fraction is the local parameter
func (p Path) Evaluate(s float64) r3.Vec {
	curves := p.CurveCount()
	if curves == 0 {
		if len(p) > 0 {
			return p[0]
		}
		return r3.Vec{}
	}

	whole := math.Floor(s)
	local := s - whole
	c := int(whole) % curves
	if c < 0 {
		c += curves
	}

	return geom.Bezier(p[3*c], p[3*c+1], p[3*c+2], p[3*c+3], local)
}

// SmoothAt reports whether control point i lies on the line through its
// neighbours, within eps. The end points and out-of-range indices are never
// smooth, even on a closed path.
func (p Path) SmoothAt(i int, eps float64) bool {
	if i <= 0 || i+1 >= len(p) {
		return false
	}
	a := r3.Sub(p[i], p[i-1])
	b := r3.Sub(p[i+1], p[i-1])
	return r3.Norm(r3.Cross(a, b)) < eps
}

// Bounds returns the axis-aligned box that contains every control point
func (p Path) Bounds() (lo, hi r3.Vec) {
	if len(p) == 0 {
		return
	}
	lo, hi = p[0], p[0]
	for _, v := range p[1:] {
		lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	return lo, hi
}
