package tendon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetaSum(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	// 4·405/7000 = 0.23142..., reported to 3 decimals.
	assert.Equal(t, 0.231, BetaSum(cfg))

	cfg.Length = 0
	assert.Equal(t, 0.0, BetaSum(cfg))

	cfg = baseConfig(SimpleHalfParabola)
	cfg.HighPt = 100
	cfg.LowPt = 100
	assert.Equal(t, 0.0, BetaSum(cfg))
}

func TestInflectionPointsPerProfile(t *testing.T) {
	tests := []struct {
		profile Profile
		wantXs  []float64
	}{
		{SimpleHalfParabola, nil},
		{InvertedHalfParabola, nil},
		{HalfParabolaReverse, []float64{289.2857142857}},
		{StraightReverseTop, []float64{289.2857142857}},
		{StraightReverseBottom, []float64{7000 - 289.2857142857}},
		{FullParabolaReverse, []float64{578.5714285714, 7000 - 578.5714285714}},
		{Bathtub, []float64{1750, 5250}},
		{MidpointReverse, []float64{3500}},
	}

	for _, tc := range tests {
		t.Run(tc.profile.Name(), func(t *testing.T) {
			cfg := baseConfig(tc.profile)
			pts := InflectionPoints(cfg)
			require.Len(t, pts, len(tc.wantXs))
			for i, want := range tc.wantXs {
				assert.InDelta(t, want, pts[i].X, 1e-6)
				assert.InDelta(t, Height(cfg, pts[i].X), pts[i].Y, 1e-9)
			}
		})
	}
}

func TestInflectionPointsSuppressedOnFlatSpan(t *testing.T) {
	for _, p := range []Profile{
		HalfParabolaReverse,
		FullParabolaReverse,
		StraightReverseTop,
		StraightReverseBottom,
	} {
		cfg := baseConfig(p)
		cfg.HighPt = 200
		cfg.LowPt = 200
		assert.Empty(t, InflectionPoints(cfg), "profile %d", int(p))
	}

	// Geometry-fixed transitions survive a flat span.
	cfg := baseConfig(Bathtub)
	cfg.HighPt = 200
	cfg.LowPt = 200
	assert.Len(t, InflectionPoints(cfg), 2)

	cfg = baseConfig(MidpointReverse)
	cfg.HighPt = 200
	cfg.LowPt = 200
	assert.Len(t, InflectionPoints(cfg), 1)
}

func TestInflectionPointsStrictlyInterior(t *testing.T) {
	// An override at the span end would place the transition on the
	// support; such candidates are discarded.
	cfg := baseConfig(HalfParabolaReverse)
	cfg.InflectionPt = "7000"
	assert.Empty(t, InflectionPoints(cfg))

	// Zero-length span discards everything, including fixed-geometry
	// transitions.
	cfg = baseConfig(Bathtub)
	cfg.Length = 0
	assert.Empty(t, InflectionPoints(cfg))
}
