package tendon

// Height evaluates the tendon profile at distance x from the high-end
// support, 0 <= x <= Length. The curve family is selected by
// cfg.SelectedProfile; unknown ids fall back to a straight line.
//
// Every family reproduces the configured end heights exactly. The
// symmetric families (FullParabolaReverse, Bathtub) place HighPt at
// both supports and LowPt at the interior low point.
func Height(cfg ProfileConfig, x float64) float64 {
	switch cfg.SelectedProfile {
	case SimpleHalfParabola:
		return heightSimpleHalf(cfg, x)
	case HalfParabolaReverse:
		return heightHalfReverse(cfg, x)
	case FullParabolaReverse:
		return heightFullReverse(cfg, x)
	case Bathtub:
		return heightBathtub(cfg, x)
	case StraightReverseTop:
		return heightStraightTop(cfg, x)
	case StraightReverseBottom:
		return heightStraightBottom(cfg, x)
	case InvertedHalfParabola:
		return heightInvertedHalf(cfg, x)
	case MidpointReverse:
		return heightMidReverse(cfg, x)
	default:
		return heightStraightLine(cfg, x)
	}
}

// heightSimpleHalf: one parabola, vertex at (L, LowPt), through (0, HighPt).
func heightSimpleHalf(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	dx := (x - l) / l
	return cfg.LowPt + (cfg.HighPt-cfg.LowPt)*dx*dx
}

// heightInvertedHalf: one parabola, vertex at (0, HighPt), through (L, LowPt).
func heightInvertedHalf(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	dx := x / l
	return cfg.HighPt - (cfg.HighPt-cfg.LowPt)*dx*dx
}

// heightStraightLine is the fallback for unrecognized profile ids.
func heightStraightLine(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	return cfg.HighPt + (cfg.LowPt-cfg.HighPt)*x/l
}

// reverseMainCoeffs solves the two-parabola construction over a segment
// of length segLen dropping from high to low, with the reverse-curve
// vertex at (0, high) and the main vertex at (segLen, low):
//
//	reverse: y = high + a·x²          on [0, xi)
//	main:    y = low  + b·(x−segLen)² on [xi, segLen]
//
// Matching value and slope at xi gives
//
//	b = (high−low) / (segLen·(segLen−xi))
//	a = −(high−low) / (segLen·xi)
//
// so the pieces are C¹ at the inflection, not merely coincident.
func reverseMainCoeffs(segLen, xi, high, low float64) (a, b float64) {
	b = (high - low) / (segLen * (segLen - xi))
	a = -(high - low) / (segLen * xi)
	return a, b
}

// evalReverseMain evaluates the two-parabola construction at local x.
// Degenerate inflection distances collapse to the single parabola that
// remains well defined: the main curve when xi = 0, the reverse curve
// when xi spans the whole segment.
func evalReverseMain(segLen, xi, high, low, x float64) float64 {
	if segLen <= 0 {
		return high
	}
	if xi <= 0 {
		dx := (x - segLen) / segLen
		return low + (high-low)*dx*dx
	}
	if xi >= segLen {
		dx := x / segLen
		return high - (high-low)*dx*dx
	}

	a, b := reverseMainCoeffs(segLen, xi, high, low)
	if x < xi {
		return high + a*x*x
	}
	return low + b*(x-segLen)*(x-segLen)
}

// heightHalfReverse: reverse curve at the high end, main parabola with
// vertex at the low end, inflection sized by the solver.
func heightHalfReverse(cfg ProfileConfig, x float64) float64 {
	xi := InflectionDistance(cfg, cfg.Length)
	return evalReverseMain(cfg.Length, xi, cfg.HighPt, cfg.LowPt, x)
}

// heightFullReverse: symmetric about midspan. The half-span [0, mid]
// uses the same construction as heightHalfReverse with the main vertex
// at (mid, LowPt); the other half mirrors through xx = min(x, L−x).
func heightFullReverse(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	mid := l / 2
	xx := min(x, l-x)
	xi := InflectionDistance(cfg, mid)
	return evalReverseMain(mid, xi, cfg.HighPt, cfg.LowPt, xx)
}

// heightBathtub: parabolic ramps over the first and last quarter of the
// span, flat at LowPt between. The quarter ratio is fixed geometry.
func heightBathtub(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	ramp := bathtubRatio * l
	switch {
	case x < ramp:
		dx := (x - ramp) / ramp
		return cfg.LowPt + (cfg.HighPt-cfg.LowPt)*dx*dx
	case x > l-ramp:
		dx := (x - (l - ramp)) / ramp
		return cfg.LowPt + (cfg.HighPt-cfg.LowPt)*dx*dx
	default:
		return cfg.LowPt
	}
}

// heightStraightTop: reverse parabola with vertex at (0, HighPt) up to
// the inflection, then the tangent line carried to (L, LowPt). The
// parabola coefficient is solved so the tangent lands exactly on the
// low end:
//
//	a = (low−high) / (xi·(2L−xi))
func heightStraightTop(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	xi := InflectionDistance(cfg, l)
	if xi <= 0 {
		return heightStraightLine(cfg, x)
	}
	a := (cfg.LowPt - cfg.HighPt) / (xi * (2*l - xi))
	if x < xi {
		return cfg.HighPt + a*x*x
	}
	return cfg.HighPt + a*xi*xi + 2*a*xi*(x-xi)
}

// heightStraightBottom mirrors heightStraightTop: straight from the
// high end, tangent into a parabola with vertex at (L, LowPt).
func heightStraightBottom(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	xi := InflectionDistance(cfg, l)
	if xi <= 0 {
		return heightStraightLine(cfg, x)
	}
	b := (cfg.HighPt - cfg.LowPt) / (xi * (2*l - xi))
	if x >= l-xi {
		return cfg.LowPt + b*(x-l)*(x-l)
	}
	return cfg.HighPt - 2*b*xi*x
}

// heightMidReverse: two parabolas with vertices at the span ends,
// meeting at (L/2, (HighPt+LowPt)/2). Continuity comes from the shared
// midpoint value by construction.
func heightMidReverse(cfg ProfileConfig, x float64) float64 {
	l := cfg.Length
	if l <= 0 {
		return cfg.HighPt
	}
	if x < l/2 {
		return cfg.HighPt + 2*(cfg.LowPt-cfg.HighPt)*x*x/(l*l)
	}
	return cfg.LowPt + 2*(cfg.HighPt-cfg.LowPt)*(x-l)*(x-l)/(l*l)
}
