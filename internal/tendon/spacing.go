package tendon

import (
	"math"

	"github.com/alexiusacademia/gotendon/internal/units"
)

// Spacing-distribution tuning constants.
const (
	// exactTol treats a remainder this close to 0 or to the nominal
	// spacing as an exact multiple of the spacing.
	exactTol = 0.01

	// standaloneRatio is the fraction of the nominal spacing above
	// which the remainder stands as its own leading segment instead
	// of being merged and split.
	standaloneRatio = 0.7
)

// Distribute partitions a span into an ordered list of positive segment
// lengths summing to the span, starting from the high-point end.
//
// The remainder heuristic keeps sample intervals presentable on a drape
// schedule: an exact multiple yields uniform segments, a large
// remainder leads the list on its own, and a small remainder is merged
// with one nominal spacing and split into two segments. Metric spans at
// the conventional 1000 mm spacing split to round hundreds (1100 →
// 500/600); otherwise the merged length splits evenly, floored to whole
// millimetres in metric and rounded to 2 decimals in imperial.
//
// Direction flipping is the caller's concern; see Calculate.
func Distribute(length, spacing float64, unit units.System) []float64 {
	if length <= 0 || spacing <= 0 {
		return nil
	}

	count := int(math.Floor(length / spacing))
	rem := math.Mod(length, spacing)

	// Exact multiple, allowing for float drift on either side of the
	// boundary. A remainder indistinguishable from the spacing means
	// the division truncated one segment short.
	if rem <= exactTol {
		return repeatSpacing(spacing, count)
	}
	if spacing-rem <= exactTol {
		return repeatSpacing(spacing, count+1)
	}

	if rem >= standaloneRatio*spacing {
		return append([]float64{rem}, repeatSpacing(spacing, count)...)
	}

	// A span shorter than one spacing has no nominal segment to absorb.
	if count < 1 {
		return []float64{length}
	}

	// Small remainder: absorb one nominal segment and split the total
	// into two leading segments.
	totalStart := spacing + rem
	var s1 float64
	switch {
	case unit == units.Metric && math.Abs(spacing-1000) <= 1:
		s1 = math.Floor(totalStart/200) * 100
	case unit == units.Metric:
		s1 = math.Floor(totalStart / 2)
	default:
		s1 = math.Round(totalStart/2*100) / 100
	}
	s2 := totalStart - s1

	return append([]float64{s1, s2}, repeatSpacing(spacing, count-1)...)
}

func repeatSpacing(spacing float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	segs := make([]float64, n)
	for i := range segs {
		segs[i] = spacing
	}
	return segs
}
