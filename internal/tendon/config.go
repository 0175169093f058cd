package tendon

import (
	"strconv"
	"strings"

	"github.com/alexiusacademia/gotendon/internal/units"
)

// Profile identifies one of the eight supported drape curve families.
type Profile int

const (
	// SimpleHalfParabola is a single parabola with its vertex at the
	// low end, passing through the high end.
	SimpleHalfParabola Profile = iota + 1

	// HalfParabolaReverse adds a short reverse-curve parabola at the
	// high end, sized by the inflection solver and matched in value
	// and slope to the main parabola.
	HalfParabolaReverse

	// FullParabolaReverse is symmetric about midspan: high at both
	// supports, low at midspan, with a reverse curve at each end.
	FullParabolaReverse

	// Bathtub is a flat segment at the low point with parabolic ramps
	// over the first and last quarter of the span.
	Bathtub

	// StraightReverseTop is a reverse-curve parabola at the high end
	// followed by the tangent straight line to the low end.
	StraightReverseTop

	// StraightReverseBottom is the mirror: a straight line from the
	// high end into a tangent-matched parabola at the low end.
	StraightReverseBottom

	// InvertedHalfParabola is a single parabola with its vertex at the
	// high end, passing through the low end.
	InvertedHalfParabola

	// MidpointReverse is two parabolas, one per span end, meeting at
	// the midspan mean height.
	MidpointReverse
)

// bathtubRatio is the fixed fraction of the span occupied by each
// parabolic ramp of the Bathtub profile. It is a geometric constant,
// not derived from the minimum radius.
const bathtubRatio = 0.25

var profileNames = map[Profile]string{
	SimpleHalfParabola:    "Simple half parabola",
	HalfParabolaReverse:   "Half parabola with reverse curve",
	FullParabolaReverse:   "Full parabola with reverse curves",
	Bathtub:               "Straight segment with parabolic ends",
	StraightReverseTop:    "Straight with reverse curve at top end",
	StraightReverseBottom: "Straight with reverse curve at bottom end",
	InvertedHalfParabola:  "Inverted simple half parabola",
	MidpointReverse:       "Half parabola with mid-point reverse",
}

// Name returns a human-readable description of the profile family.
func (p Profile) Name() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	return "Straight line (fallback)"
}

// Valid reports whether p is one of the eight named families.
func (p Profile) Valid() bool {
	_, ok := profileNames[p]
	return ok
}

// Profiles lists the eight families in menu order.
func Profiles() []Profile {
	return []Profile{
		SimpleHalfParabola,
		HalfParabolaReverse,
		FullParabolaReverse,
		Bathtub,
		StraightReverseTop,
		StraightReverseBottom,
		InvertedHalfParabola,
		MidpointReverse,
	}
}

// OverrideMode describes how the inflection distance is obtained.
type OverrideMode int

const (
	// Auto sizes the reverse curve analytically from the minimum
	// bend radius.
	Auto OverrideMode = iota

	// Absolute uses a user-supplied distance in the current unit.
	Absolute

	// Percent uses a user-supplied percentage of the total span.
	Percent
)

// InflectionOverride is the parsed form of the free-text inflection
// distance field. An unparseable or non-positive entry collapses to
// Auto; the invalid text is deliberately not reported.
type InflectionOverride struct {
	Mode  OverrideMode
	Value float64
}

// ParseInflectionOverride parses the free-text override once, at config
// time. Empty text, non-numeric text, and values <= 0 all mean Auto.
func ParseInflectionOverride(text string) InflectionOverride {
	text = strings.TrimSpace(text)
	if text == "" {
		return InflectionOverride{Mode: Auto}
	}

	mode := Absolute
	if strings.HasSuffix(text, "%") {
		mode = Percent
		text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v <= 0 {
		return InflectionOverride{Mode: Auto}
	}
	return InflectionOverride{Mode: mode, Value: v}
}

// ProfileConfig is the full input to a profile calculation. It is owned
// by the caller; the engine reads it and holds no state between calls.
type ProfileConfig struct {
	// Geometry (length units of Unit)
	Length    float64 // horizontal span
	HighPt    float64 // tendon height at the high end
	LowPt     float64 // tendon height at the low end
	MinRadius float64 // minimum bend radius for reverse curves

	// Sampling
	Spacing  float64 // nominal sample interval
	Rounding float64 // snap increment for reported drapes

	// Curve selection
	SelectedProfile Profile
	InflectionPt    string // "" = auto, "1200" = absolute, "15%" = percent of span

	// SpacingFromLowEnd reverses the distributed segment list so the
	// odd leading segments land at the low end instead of the high end.
	SpacingFromLowEnd bool

	Unit units.System
}

// Override returns the parsed inflection override for the config.
func (c ProfileConfig) Override() InflectionOverride {
	return ParseInflectionOverride(c.InflectionPt)
}

// Sag is the absolute height difference between the two ends.
func (c ProfileConfig) Sag() float64 {
	d := c.HighPt - c.LowPt
	if d < 0 {
		return -d
	}
	return d
}
