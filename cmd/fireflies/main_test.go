package main

import (
	"testing"

	"github.com/ivlev/scenegen/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name       string
		set        map[string]bool
		seed       int64
		curves     int
		wantSeed   int64
		wantCurves int
	}{
		{"nothing set", map[string]bool{}, 0, 0, config.DefaultFireflies().Seed, 12},
		{"explicit zero seed", map[string]bool{"seed": true}, 0, 0, 0, 12},
		{"seed and curves", map[string]bool{"seed": true, "curves": true}, 7, 3, 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFireflies()
			applyFlags(&cfg, tt.set, tt.seed, tt.curves, false)

			assert.Equal(t, tt.wantSeed, cfg.Seed)
			assert.Equal(t, tt.wantCurves, cfg.Curves)
			assert.False(t, cfg.IndependentRadii)
		})
	}
}

func TestApplyFlagsIndependentRadii(t *testing.T) {
	cfg := config.DefaultFireflies()
	cfg.IndependentRadii = true

	applyFlags(&cfg, map[string]bool{"independent-radii": true}, 0, 0, false)
	assert.False(t, cfg.IndependentRadii)
}
