package tendon

import "math"

// InflectionPoint marks where the profile transitions between a
// reverse-curve piece and the main curve. Always strictly interior.
type InflectionPoint struct {
	X float64
	Y float64
}

// BetaSum approximates the total angular change of the tendon tangent
// over the span, Σβ ≈ 4·|Δh| / L, reported to 3 decimal places. Used
// downstream for friction-loss estimates.
func BetaSum(cfg ProfileConfig) float64 {
	if cfg.Length <= 0 {
		return 0
	}
	return math.Round(4*cfg.Sag()/cfg.Length*1000) / 1000
}

// InflectionPoints returns the curvature-transition locations for the
// selected profile. Families with a sag-dependent reverse curve report
// none on a flat span; the Bathtub and MidpointReverse transitions are
// fixed by geometry and reported regardless of sag. Candidates on or
// outside the supports are discarded.
func InflectionPoints(cfg ProfileConfig) []InflectionPoint {
	l := cfg.Length
	var xs []float64

	switch cfg.SelectedProfile {
	case HalfParabolaReverse, StraightReverseTop:
		if cfg.Sag() > 0 {
			xs = []float64{InflectionDistance(cfg, l)}
		}
	case StraightReverseBottom:
		if cfg.Sag() > 0 {
			xs = []float64{l - InflectionDistance(cfg, l)}
		}
	case FullParabolaReverse:
		if cfg.Sag() > 0 {
			xi := InflectionDistance(cfg, l/2)
			xs = []float64{xi, l - xi}
		}
	case Bathtub:
		xs = []float64{bathtubRatio * l, (1 - bathtubRatio) * l}
	case MidpointReverse:
		xs = []float64{l / 2}
	}

	pts := make([]InflectionPoint, 0, len(xs))
	for _, x := range xs {
		if x <= 0 || x >= l {
			continue
		}
		pts = append(pts, InflectionPoint{X: x, Y: Height(cfg, x)})
	}
	return pts
}
