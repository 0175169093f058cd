package units

// System identifies the measurement system a profile is entered in.
// The core geometry is unit-agnostic; the system tag only selects the
// spacing-split rounding rule and the CLI defaults below.
type System int

const (
	Metric System = iota // millimetres
	Imperial             // inches
)

// MMPerInch is the exact conversion factor between the two systems.
const MMPerInch = 25.4

// Parse maps a user-supplied unit name to a System. Unknown names fall
// back to metric, matching the tool's degrade-don't-reject policy.
func Parse(name string) System {
	switch name {
	case "imperial", "in", "inch", "inches":
		return Imperial
	default:
		return Metric
	}
}

// Label returns the length-unit suffix used in reports.
func (s System) Label() string {
	if s == Imperial {
		return "in"
	}
	return "mm"
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// DefaultSpacing is the nominal sample interval used when the caller
// supplies none: 1 m in metric, 3 ft in imperial.
func (s System) DefaultSpacing() float64 {
	if s == Imperial {
		return 36
	}
	return 1000
}

// DefaultRounding is the drape snap increment: nearest 5 mm or 1/8 inch.
func (s System) DefaultRounding() float64 {
	if s == Imperial {
		return 0.125
	}
	return 5
}

// DefaultMinRadius is a serviceable minimum bend radius for common
// strand ducts, used only as a flag default.
func (s System) DefaultMinRadius() float64 {
	if s == Imperial {
		return 100
	}
	return 2500
}

// ToMM converts a length in the given system to millimetres.
func ToMM(v float64, s System) float64 {
	if s == Imperial {
		return v * MMPerInch
	}
	return v
}

// FromMM converts a length in millimetres to the given system.
func FromMM(v float64, s System) float64 {
	if s == Imperial {
		return v / MMPerInch
	}
	return v
}
