package lunar

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// Phase is one of the eight named segments of the lunar cycle
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	NewMoon:        "New Moon",
	WaxingCrescent: "Waxing Crescent",
	FirstQuarter:   "First Quarter",
	WaxingGibbous:  "Waxing Gibbous",
	FullMoon:       "Full Moon",
	WaningGibbous:  "Waning Gibbous",
	LastQuarter:    "Last Quarter",
	WaningCrescent: "Waning Crescent",
}

func (p Phase) String() string {
	if p < NewMoon || p > WaningCrescent {
		return "Unknown"
	}
	return phaseNames[p]
}

// IsWaxing reports whether the phase lies between New and Full Moon
func (p Phase) IsWaxing() bool {
	return p >= WaxingCrescent && p <= WaxingGibbous
}

// bandWidth is the angular width of each named phase in degrees
const bandWidth = 360.0 / 8

// PhaseAngle computes the Moon's phase angle in degrees for T Julian centuries
// since J2000.0. 0° is New Moon and 180° is Full Moon. This is the supplement
// of the Sun-Moon-Earth angle from the truncated series in Meeus ch. 48,
// good to a few hours of phase.
func PhaseAngle(T float64) float64 {
	D := meanElongation(T)
	M := sunMeanAnomaly(T)
	Mp := moonMeanAnomaly(T)

	angle := D +
		6.289*sinDeg(Mp) -
		2.100*sinDeg(M) +
		1.274*sinDeg(2*D-Mp) +
		0.658*sinDeg(2*D) +
		0.214*sinDeg(2*Mp) +
		0.110*sinDeg(D)

	return normalizeAngle(angle)
}

// Illumination returns the illuminated fraction [0,1] of the disk for a phase angle
func Illumination(angle float64) float64 {
	return (1 - cosDeg(angle)) / 2
}

// Label maps a phase angle onto one of eight 45° bands centred on the
// principal phases. Each band is half-open, [low, high).
func Label(angle float64) Phase {
	band := math.Floor(normalizeAngle(angle+bandWidth/2) / bandWidth)
	// An angle a hair below 360 can divide out to exactly 8.
	return Phase(int(band) % 8)
}

// Age returns the days elapsed since New Moon for a phase angle
func Age(angle float64) float64 {
	return normalizeAngle(angle) / 360 * SynodicMonth
}

// meanElongation is D, the Moon's mean elongation (Meeus 47.2)
func meanElongation(T float64) float64 {
	return normalizeAngle(base.Horner(T,
		297.8501921, 445267.1114034, -0.0018819, 1/545868.0, -1/113065000.0))
}

// sunMeanAnomaly is M (Meeus 47.3)
func sunMeanAnomaly(T float64) float64 {
	return normalizeAngle(base.Horner(T,
		357.5291092, 35999.0502909, -0.0001536, 1/24490000.0))
}

// moonMeanAnomaly is M′ (Meeus 47.4)
func moonMeanAnomaly(T float64) float64 {
	return normalizeAngle(base.Horner(T,
		134.9633964, 477198.8675055, 0.0087414, 1/69699.0, -1/14712000.0))
}

// normalizeAngle wraps an angle to the range [0, 360)
func normalizeAngle(angle float64) float64 {
	a := unit.PMod(angle, 360)
	if a >= 360 {
		return 0
	}
	return a
}

func sinDeg(deg float64) float64 { return unit.AngleFromDeg(deg).Sin() }
func cosDeg(deg float64) float64 { return unit.AngleFromDeg(deg).Cos() }
