package tendon

// inflectionDistance returns the distance from a support at which a
// reverse-curve segment transitions into the main curve, for a segment
// of length segLen within a span of totalLen.
//
// A valid positive override wins: an absolute value directly, a percent
// value as a fraction of the total span (not of segLen). Either form is
// capped at segLen so the transition can never leave the segment.
//
// In auto mode the distance is the analytic length of a parabolic
// reverse curve whose radius of curvature stays at or above minRadius,
//
//	x = 4·h·R / (2·segLen)
//
// from second-derivative matching of the parabola, clamped to segLen/2
// so the transition cannot cross the segment midpoint. Flat spans
// (h = 0) and degenerate segments need no reverse curve and return 0.
func inflectionDistance(segLen, totalLen, highPt, lowPt, minRadius float64, ov InflectionOverride) float64 {
	switch ov.Mode {
	case Absolute:
		return min(ov.Value, segLen)
	case Percent:
		return min(ov.Value/100*totalLen, segLen)
	}

	h := highPt - lowPt
	if h < 0 {
		h = -h
	}
	if segLen <= 0 || h == 0 {
		return 0
	}

	x := (4 * h * minRadius) / (2 * segLen)
	return min(x, segLen/2)
}

// InflectionDistance sizes the reverse curve for a segment of length
// segLen under the given configuration.
func InflectionDistance(cfg ProfileConfig, segLen float64) float64 {
	return inflectionDistance(segLen, cfg.Length, cfg.HighPt, cfg.LowPt, cfg.MinRadius, cfg.Override())
}
