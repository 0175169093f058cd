package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Metric, Parse("metric"))
	assert.Equal(t, Metric, Parse("mm"))
	assert.Equal(t, Imperial, Parse("imperial"))
	assert.Equal(t, Imperial, Parse("in"))
	assert.Equal(t, Imperial, Parse("inches"))

	// Unknown names degrade to metric rather than failing.
	assert.Equal(t, Metric, Parse("furlongs"))
	assert.Equal(t, Metric, Parse(""))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "mm", Metric.Label())
	assert.Equal(t, "in", Imperial.Label())
	assert.Equal(t, "metric", Metric.String())
	assert.Equal(t, "imperial", Imperial.String())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 1000.0, Metric.DefaultSpacing())
	assert.Equal(t, 36.0, Imperial.DefaultSpacing())
	assert.Equal(t, 5.0, Metric.DefaultRounding())
	assert.Equal(t, 0.125, Imperial.DefaultRounding())
	assert.Greater(t, Metric.DefaultMinRadius(), 0.0)
	assert.Greater(t, Imperial.DefaultMinRadius(), 0.0)
}

func TestConversionRoundTrip(t *testing.T) {
	assert.InDelta(t, 25.4, ToMM(1, Imperial), 1e-12)
	assert.InDelta(t, 1.0, FromMM(25.4, Imperial), 1e-12)
	assert.Equal(t, 1234.5, ToMM(1234.5, Metric))
	assert.Equal(t, 1234.5, FromMM(1234.5, Metric))

	for _, v := range []float64{0, 1, 36, 7000.25} {
		assert.InDelta(t, v, FromMM(ToMM(v, Imperial), Imperial), 1e-9)
	}
}
