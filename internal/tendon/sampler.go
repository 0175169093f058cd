package tendon

import "math"

// Point is one sampled location on the tendon profile.
type Point struct {
	X     float64 // distance from the high-end support
	Y     float64 // raw computed height
	Label float64 // height snapped to the rounding increment
}

// Sampling tolerances.
const (
	// overshootTol clamps a cumulative x that float error pushed just
	// past the span end back onto it.
	overshootTol = 0.001

	// terminalTol is the largest gap tolerated between the last sample
	// and the span end before a closing point is appended.
	terminalTol = 1.0
)

// RoundTo snaps v to the nearest multiple of inc. Non-positive
// increments disable snapping and return v unchanged.
func RoundTo(v, inc float64) float64 {
	if inc <= 0 {
		return v
	}
	return math.Round(v/inc) * inc
}

// Sample walks the segment list, evaluating the profile at each
// cumulative distance. It returns the sampled points, their rounded
// drape labels in order, and the segment list actually used — which
// gains one residual segment if the distributor's output fell short of
// the span end by more than terminalTol.
//
// The first sample is always at x = 0. Cumulative float drift past the
// end is clamped within overshootTol so the final sample lands exactly
// on the span.
func Sample(cfg ProfileConfig, segments []float64) (points []Point, drapes []float64, spaces []float64) {
	if len(segments) == 0 {
		if cfg.Length > 0 {
			p := sampleAt(cfg, 0)
			return []Point{p}, []float64{p.Label}, nil
		}
		return nil, nil, nil
	}

	spaces = segments
	points = make([]Point, 0, len(segments)+2)
	drapes = make([]float64, 0, len(segments)+2)

	appendPoint := func(x float64) {
		p := sampleAt(cfg, x)
		points = append(points, p)
		drapes = append(drapes, p.Label)
	}

	appendPoint(0)
	x := 0.0
	for _, seg := range segments {
		x += seg
		if x > cfg.Length && x-cfg.Length < overshootTol {
			x = cfg.Length
		}
		appendPoint(x)
	}

	// Distributor drift guard: terminate exactly at the span end.
	if cfg.Length > 0 && math.Abs(x-cfg.Length) > terminalTol {
		spaces = append(append([]float64{}, segments...), cfg.Length-x)
		appendPoint(cfg.Length)
	}

	return points, drapes, spaces
}

func sampleAt(cfg ProfileConfig, x float64) Point {
	y := Height(cfg, x)
	return Point{X: x, Y: y, Label: RoundTo(y, cfg.Rounding)}
}
