package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotendon/internal/tendon"
)

func sampleResult(t *testing.T) (tendon.ProfileConfig, tendon.CalculationResult) {
	t.Helper()
	cfg := tendon.ProfileConfig{
		Length:          7000,
		HighPt:          450,
		LowPt:           45,
		MinRadius:       2500,
		Spacing:         1000,
		Rounding:        5,
		SelectedProfile: tendon.HalfParabolaReverse,
	}
	return cfg, tendon.Calculate(cfg)
}

func TestWriteCSV(t *testing.T) {
	cfg, result := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cfg, result))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(result.Points)+1)

	header := rows[0]
	assert.Equal(t, "point", header[0])
	assert.Equal(t, "x (mm)", header[1])

	// First data row: sample 1 at the high point, no leading spacing.
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "0", rows[1][1])
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "450", rows[1][4])

	// Last row terminates at the span end.
	last := rows[len(rows)-1]
	assert.Equal(t, "7000", last[1])
	assert.Equal(t, "45", last[4])
}

func TestFormatLen(t *testing.T) {
	assert.Equal(t, "1000", formatLen(1000))
	assert.Equal(t, "19.5", formatLen(19.5))
	assert.Equal(t, "0.125", formatLen(0.125))
	assert.Equal(t, "0", formatLen(0))
}
