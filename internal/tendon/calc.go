// Package tendon computes post-tensioning tendon drape profiles: a
// closed-form piecewise height function over a horizontal span, sampled
// at distributed intervals, with reverse curves near supports sized to
// respect a minimum bend radius.
//
// Every function here is a pure computation over a ProfileConfig; the
// package performs no I/O, holds no state between calls, and never
// rejects malformed input — degenerate configurations degrade to empty
// or zero results.
package tendon

// CalculationResult is the complete output of one profile calculation.
// It is rebuilt from scratch on every call and carries no identity
// beyond the call that created it.
type CalculationResult struct {
	Points           []Point           // ordered samples, x = 0 .. Length
	Drapes           []float64         // rounded heights in sample order
	Spaces           []float64         // segment lengths, len = len(Points)-1
	BetaSum          float64           // Σβ, total tangent angular change
	InflectionPoints []InflectionPoint // 0–2 entries depending on profile
}

// Calculate runs the full pipeline: spacing distribution, profile
// sampling, and the curvature summary.
//
// Segment distribution starts from the high-point end; when
// cfg.SpacingFromLowEnd is set the segment list is reversed before
// sampling, placing the odd leading segments at the low end.
func Calculate(cfg ProfileConfig) CalculationResult {
	segments := Distribute(cfg.Length, cfg.Spacing, cfg.Unit)
	if cfg.SpacingFromLowEnd {
		segments = reversed(segments)
	}

	points, drapes, spaces := Sample(cfg, segments)

	return CalculationResult{
		Points:           points,
		Drapes:           drapes,
		Spaces:           spaces,
		BetaSum:          BetaSum(cfg),
		InflectionPoints: InflectionPoints(cfg),
	}
}

func reversed(segs []float64) []float64 {
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = s
	}
	return out
}
