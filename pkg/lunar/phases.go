package lunar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
)

// PrimaryPhase is one of the four principal phases that mark the quarters
// of a lunation.
type PrimaryPhase int

const (
	PrimaryNewMoon PrimaryPhase = iota
	PrimaryFirstQuarter
	PrimaryFullMoon
	PrimaryLastQuarter
)

// PrimaryPhases lists the principal phases in cycle order
var PrimaryPhases = [4]PrimaryPhase{
	PrimaryNewMoon,
	PrimaryFirstQuarter,
	PrimaryFullMoon,
	PrimaryLastQuarter,
}

var primaryAbbrevs = [...]string{"NM", "FQ", "FM", "LQ"}

// Phase returns the named phase this primary phase corresponds to
func (p PrimaryPhase) Phase() Phase {
	return Phase(int(p) * 2)
}

func (p PrimaryPhase) String() string {
	return p.Phase().String()
}

// Abbrev returns the two letter code for the phase, e.g. "NM"
func (p PrimaryPhase) Abbrev() string {
	if p < PrimaryNewMoon || p > PrimaryLastQuarter {
		return "??"
	}
	return primaryAbbrevs[p]
}

// fraction is the position of the phase within a lunation
func (p PrimaryPhase) fraction() float64 {
	return float64(p) / 4
}

// PhaseEvent is an occurrence of a primary phase relative to the instant a
// report was computed for. OffsetDays is negative for past occurrences.
type PhaseEvent struct {
	Kind       PrimaryPhase
	OffsetDays float64
	Time       time.Time
}

// lunationEpoch is the JDE of the New Moon of 2000-01-06, lunation 0
const lunationEpoch = 2451550.09766

// meanLunation is the mean synodic month used by the lunation index
const meanLunation = 29.530588861

const secondsPerDay = 86400.0

// boundaryEpsilon is one second in days. Offsets smaller than this are
// reported as exactly zero.
const boundaryEpsilon = 1 / secondsPerDay

// lunationIndex returns the fractional lunation number k for a Julian Day
func lunationIndex(jd float64) float64 {
	return (jd - lunationEpoch) / meanLunation
}

// Boundaries locates, for each primary phase, the nearest occurrence at or
// before jd and the nearest at or after it. Both arrays are indexed by
// PrimaryPhase. When jd falls on an occurrence the past and future offsets for
// that phase are both 0.
func (e Engine) Boundaries(jd float64) (past, future [4]PhaseEvent) {
	k0 := math.Floor(lunationIndex(jd))

	for _, kind := range PrimaryPhases {
		past[kind] = PhaseEvent{Kind: kind, OffsetDays: math.Inf(-1)}
		future[kind] = PhaseEvent{Kind: kind, OffsetDays: math.Inf(1)}

		// Corrections move an occurrence by well under a day, so two
		// lunations either side of k0 always bracket jd.
		for n := -2.0; n <= 2; n++ {
			at := e.phaseJD(k0+n+kind.fraction(), kind)
			offset := at - jd
			if math.Abs(offset) < boundaryEpsilon {
				offset = 0
			}

			if offset <= 0 && offset > past[kind].OffsetDays {
				past[kind].OffsetDays = offset
				past[kind].Time = TimeFromJulianDay(at)
			}
			if offset >= 0 && offset < future[kind].OffsetDays {
				future[kind].OffsetDays = offset
				future[kind].Time = TimeFromJulianDay(at)
			}
		}
	}

	return past, future
}

// Occurrence returns the UTC instant of a primary phase in the given
// lunation. Lunation 0 begins with the New Moon of 2000-01-06.
func (e Engine) Occurrence(kind PrimaryPhase, lunation int) time.Time {
	return TimeFromJulianDay(e.phaseJD(float64(lunation)+kind.fraction(), kind))
}

// phaseJD computes the Julian Day (UT) of the primary phase at lunation
// index k, where k is an integer for New Moon and has fraction .25, .5 or .75
// for the other phases. Meeus ch. 49, keeping the nine largest periodic
// terms of each table plus the quarter W adjustment. Omitted terms are each
// under 0.0006 day.
func (e Engine) phaseJD(k float64, kind PrimaryPhase) float64 {
	T := k / 1236.85

	jde := lunationEpoch + meanLunation*k +
		base.Horner(T, 0, 0, 0.00015437, -0.000000150, 0.00000000073)

	E := base.Horner(T, 1, -0.002516, -0.0000074)
	M := base.Horner(T, 2.5534+29.10535670*k, 0, -0.0000014, -0.00000011)
	Mp := base.Horner(T, 201.5643+385.81693528*k, 0, 0.0107582, 0.00001238, -0.000000058)
	F := base.Horner(T, 160.7108+390.67050284*k, 0, -0.0016118, -0.00000227, 0.000000011)

	var correction float64
	switch kind {
	case PrimaryNewMoon:
		correction = -0.40720*sinDeg(Mp) +
			0.17241*E*sinDeg(M) +
			0.01608*sinDeg(2*Mp) +
			0.01039*sinDeg(2*F) +
			0.00739*E*sinDeg(Mp-M) -
			0.00514*E*sinDeg(Mp+M) +
			0.00208*E*E*sinDeg(2*M) -
			0.00111*sinDeg(Mp-2*F) -
			0.00057*sinDeg(Mp+2*F)
	case PrimaryFullMoon:
		correction = -0.40614*sinDeg(Mp) +
			0.17302*E*sinDeg(M) +
			0.01614*sinDeg(2*Mp) +
			0.01043*sinDeg(2*F) +
			0.00734*E*sinDeg(Mp-M) -
			0.00515*E*sinDeg(Mp+M) +
			0.00209*E*E*sinDeg(2*M) -
			0.00111*sinDeg(Mp-2*F) -
			0.00056*sinDeg(Mp+2*F)
	default:
		correction = -0.62801*sinDeg(Mp) +
			0.17172*E*sinDeg(M) -
			0.01183*E*sinDeg(Mp+M) +
			0.00862*sinDeg(2*Mp) +
			0.00804*sinDeg(2*F) +
			0.00454*E*sinDeg(Mp-M) +
			0.00204*E*E*sinDeg(2*M) -
			0.00180*sinDeg(Mp-2*F) -
			0.00070*sinDeg(Mp+2*F)

		W := 0.00306 -
			0.00038*E*cosDeg(M) +
			0.00026*cosDeg(Mp) -
			0.00002*cosDeg(Mp-M) +
			0.00002*cosDeg(Mp+M) +
			0.00002*cosDeg(2*F)
		if kind == PrimaryFirstQuarter {
			correction += W
		} else {
			correction -= W
		}
	}

	// TT to UT
	return jde + correction - e.DeltaT/secondsPerDay
}
