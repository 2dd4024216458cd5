package lunar

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

// JulianDay converts an instant to a Julian Day (UT), proleptic Gregorian
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JulianCenturies returns Julian centuries since J2000.0
func JulianCenturies(jd float64) float64 {
	return base.J2000Century(jd)
}

// TimeFromJulianDay converts a Julian Day (UT) back to a UTC instant,
// rounded to the nearest second.
func TimeFromJulianDay(jd float64) time.Time {
	return julian.JDToTime(jd).UTC().Round(time.Second)
}
