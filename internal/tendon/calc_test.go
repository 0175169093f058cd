package tendon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePipeline(t *testing.T) {
	cfg := baseConfig(HalfParabolaReverse)
	result := Calculate(cfg)

	require.Len(t, result.Points, 8)
	require.Len(t, result.Drapes, 8)
	assert.Len(t, result.Spaces, len(result.Points)-1)

	assert.Equal(t, 0.0, result.Points[0].X)
	assert.Equal(t, 7000.0, result.Points[len(result.Points)-1].X)
	assert.Equal(t, 0.231, result.BetaSum)
	require.Len(t, result.InflectionPoints, 1)
	assert.InDelta(t, 289.2857142857, result.InflectionPoints[0].X, 1e-6)

	for i, p := range result.Points {
		assert.Equal(t, p.Label, result.Drapes[i])
	}
}

func TestCalculateSpacingDirection(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	cfg.Length = 5100 // distributes to [500, 600, 1000, 1000, 1000, 1000]

	fromHigh := Calculate(cfg)
	require.Len(t, fromHigh.Spaces, 6)
	assert.Equal(t, 500.0, fromHigh.Spaces[0])
	assert.Equal(t, 600.0, fromHigh.Spaces[1])

	cfg.SpacingFromLowEnd = true
	fromLow := Calculate(cfg)
	require.Len(t, fromLow.Spaces, 6)
	assert.Equal(t, 600.0, fromLow.Spaces[4])
	assert.Equal(t, 500.0, fromLow.Spaces[5])

	// Direction changes sample locations but not the curve itself.
	assert.Equal(t, fromHigh.Points[0].Y, fromLow.Points[0].Y)
	last := len(fromHigh.Points) - 1
	assert.InDelta(t, fromHigh.Points[last].Y, fromLow.Points[last].Y, 1e-9)
}

func TestCalculateDegenerateSpan(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	cfg.Length = 0

	result := Calculate(cfg)
	assert.Empty(t, result.Points)
	assert.Empty(t, result.Drapes)
	assert.Empty(t, result.Spaces)
	assert.Equal(t, 0.0, result.BetaSum)
	assert.Empty(t, result.InflectionPoints)
}

func TestCalculateZeroSpacing(t *testing.T) {
	cfg := baseConfig(SimpleHalfParabola)
	cfg.Spacing = 0

	// The span is valid, so a single degenerate sample at the start
	// remains.
	result := Calculate(cfg)
	require.Len(t, result.Points, 1)
	assert.Equal(t, 0.0, result.Points[0].X)
	assert.Empty(t, result.Spaces)
}
