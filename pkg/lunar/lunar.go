// Package lunar provides moon phase calculations using the truncated periodic
// series from Meeus, Astronomical Algorithms (2nd ed.), chapters 47-49.
// Accuracy is typically within ~0.5% illumination and well under an hour for
// the instants of the principal phases. All functions are pure; an Engine
// holds configuration only.
package lunar

import (
	"math"
	"time"
)

// SynodicMonth is the average length of the lunar cycle in days
const SynodicMonth = 29.530588853

// DefaultDeltaT is the TT-UT difference in seconds used by Calculate
const DefaultDeltaT = 69.2

// Engine computes moon phase reports
type Engine struct {
	DeltaT float64 // TT-UT in seconds, applied to phase instants
}

// NewEngine returns an Engine with the given ΔT in seconds
func NewEngine(deltaT float64) Engine {
	return Engine{DeltaT: deltaT}
}

// Report contains calculated moon phase information for one instant
type Report struct {
	Time         time.Time     // Instant the report was computed for (UTC)
	JulianDay    float64       // Julian Day of Time
	Angle        float64       // Phase angle in degrees [0,360): 0=new, 180=full
	Age          float64       // Days since new moon [0,SynodicMonth)
	Illumination float64       // Illuminated fraction [0,1]
	Phase        Phase         // Named phase
	Past         [4]PhaseEvent // Latest occurrence of each primary phase at or before Time
	Future       [4]PhaseEvent // Earliest occurrence of each primary phase at or after Time
}

// Calculate computes the moon phase report for t using DefaultDeltaT
func Calculate(t time.Time) Report {
	return Engine{DeltaT: DefaultDeltaT}.Calculate(t)
}

// Calculate computes the moon phase report for t
func (e Engine) Calculate(t time.Time) Report {
	t = t.UTC()
	jd := JulianDay(t)
	angle := PhaseAngle(JulianCenturies(jd))
	past, future := e.Boundaries(jd)

	return Report{
		Time:         t,
		JulianDay:    jd,
		Angle:        angle,
		Age:          Age(angle),
		Illumination: Illumination(angle),
		Phase:        Label(angle),
		Past:         past,
		Future:       future,
	}
}

// NearestPast returns the most recent primary phase at or before the
// report's instant.
func (r Report) NearestPast() PhaseEvent {
	best := r.Past[0]
	for _, ev := range r.Past[1:] {
		if ev.OffsetDays > best.OffsetDays {
			best = ev
		}
	}
	return best
}

// NearestFuture returns the next primary phase at or after the report's instant
func (r Report) NearestFuture() PhaseEvent {
	best := r.Future[0]
	for _, ev := range r.Future[1:] {
		if ev.OffsetDays < best.OffsetDays {
			best = ev
		}
	}
	return best
}

// Days returns the offset rounded to whole days, without sign
func (ev PhaseEvent) Days() int {
	return int(math.Round(math.Abs(ev.OffsetDays)))
}
