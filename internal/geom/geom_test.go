package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   r3.Vec
		want r3.Vec
	}{
		{"axis", r3.Vec{X: 5}, r3.Vec{X: 1}},
		{"negative", r3.Vec{Y: -2}, r3.Vec{Y: -1}},
		{"diagonal", r3.Vec{X: 3, Z: 4}, r3.Vec{X: 0.6, Z: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-12)
			assert.InDelta(t, 1.0, r3.Norm(got), 1e-12)
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	_, err := Normalize(r3.Vec{})
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestMidpointAndLerp(t *testing.T) {
	a := r3.Vec{X: 0, Y: 2, Z: -4}
	b := r3.Vec{X: 10, Y: 4, Z: 4}

	assert.Equal(t, r3.Vec{X: 5, Y: 3, Z: 0}, Midpoint(a, b))
	assert.Equal(t, Midpoint(a, b), Lerp(a, b, 0.5))
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.InDelta(t, math.Sqrt(100+4+64), Distance(a, b), 1e-12)
}

func TestRoundHalfToEven(t *testing.T) {
	assert.Equal(t, 2, Round(2.5))
	assert.Equal(t, 4, Round(3.5))
	assert.Equal(t, 6, Round(2*math.Pi))
	assert.Equal(t, 44, Round(2*math.Pi*7))
}

func TestBezierEndpoints(t *testing.T) {
	p0 := r3.Vec{X: 0}
	p1 := r3.Vec{X: 1, Y: 1}
	p2 := r3.Vec{X: 2, Y: 1}
	p3 := r3.Vec{X: 3}

	assert.Equal(t, p0, Bezier(p0, p1, p2, p3, 0))
	assert.Equal(t, p3, Bezier(p0, p1, p2, p3, 1))

	mid := Bezier(p0, p1, p2, p3, 0.5)
	assert.InDelta(t, 1.5, mid.X, 1e-12)
	assert.InDelta(t, 0.75, mid.Y, 1e-12)
}
