package tendon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotendon/internal/units"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 445.0, RoundTo(447.3, 5))
	assert.Equal(t, 450.0, RoundTo(447.5, 5))
	assert.Equal(t, 0.125, RoundTo(0.13, 0.125))

	// Non-positive increments disable snapping.
	assert.Equal(t, 447.3, RoundTo(447.3, 0))
	assert.Equal(t, 447.3, RoundTo(447.3, -5))
}

func TestRoundToIdempotence(t *testing.T) {
	for _, inc := range []float64{5, 1, 0.125, 0.01} {
		for _, v := range []float64{447.3, 45.0, 0.0619, 123.456, -12.7} {
			once := RoundTo(v, inc)
			assert.InDelta(t, once, RoundTo(once, inc), 1e-12, "v=%v inc=%v", v, inc)
		}
	}
}

func TestSampleWalksSegments(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	segs := Distribute(cfg.Length, cfg.Spacing, units.Metric)

	points, drapes, spaces := Sample(cfg, segs)
	require.Len(t, points, 8)
	require.Len(t, drapes, 8)
	require.Len(t, spaces, 7)

	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, 7000.0, points[len(points)-1].X)
	assert.InDelta(t, 450.0, points[0].Y, 1e-9)
	assert.InDelta(t, 45.0, points[len(points)-1].Y, 1e-9)

	for i, p := range points {
		assert.Equal(t, RoundTo(p.Y, cfg.Rounding), p.Label)
		assert.Equal(t, p.Label, drapes[i])
	}
}

func TestSampleClampsFloatOvershoot(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	// Accumulation lands 0.0008 past the end, inside the clamp window.
	segs := []float64{3500.0005, 3500.0003}

	points, _, spaces := Sample(cfg, segs)
	require.Len(t, points, 3)
	assert.Equal(t, 7000.0, points[2].X)
	// No residual segment was appended.
	assert.Len(t, spaces, 2)
}

func TestSampleAppendsTerminalPoint(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	// Distribution drift left the walk 1000 short of the span end.
	segs := []float64{3000, 3000}

	points, drapes, spaces := Sample(cfg, segs)
	require.Len(t, points, 4)
	require.Len(t, drapes, 4)
	require.Len(t, spaces, 3)

	assert.Equal(t, 7000.0, points[3].X)
	assert.InDelta(t, 1000.0, spaces[2], 1e-9)
	assert.InDelta(t, 45.0, points[3].Y, 1e-9)
}

func TestSampleEmptySegments(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	points, drapes, spaces := Sample(cfg, nil)
	require.Len(t, points, 1)
	require.Len(t, drapes, 1)
	assert.Empty(t, spaces)
	assert.Equal(t, 0.0, points[0].X)

	cfg.Length = 0
	points, drapes, spaces = Sample(cfg, nil)
	assert.Empty(t, points)
	assert.Empty(t, drapes)
	assert.Empty(t, spaces)
}
