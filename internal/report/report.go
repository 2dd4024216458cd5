// Package report renders lunar.Report values into the textual views printed
// by the moon-phase command, and into a flat document for structured output.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/chrissnell/moonphase/pkg/lunar"
)

// View names one of the textual renderings of a report
type View string

const (
	ViewSummary View = "summary"
	ViewCurrent View = "current"
	ViewPhases  View = "phases"
	ViewNext    View = "next"
	ViewPrev    View = "prev"
)

// Views lists every supported view
var Views = []View{ViewSummary, ViewCurrent, ViewPhases, ViewNext, ViewPrev}

// ErrUnknownView is returned by Render for an unsupported view name
var ErrUnknownView = errors.New("unknown view")

// Render produces the named view of r
func Render(view View, r lunar.Report) (string, error) {
	switch view {
	case ViewSummary:
		return Summary(r), nil
	case ViewCurrent:
		return Current(r), nil
	case ViewPhases:
		return Phases(r), nil
	case ViewNext:
		return Next(r), nil
	case ViewPrev:
		return Prev(r), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, view)
}

// Summary is the multi-line default view
func Summary(r lunar.Report) string {
	next, prev := r.NearestFuture(), r.NearestPast()
	return fmt.Sprintf("Phase: %s\nIllumination: %s%%\n%s in %d days\n%s was %d days ago",
		r.Phase, percent(r.Illumination), next.Kind, next.Days(), prev.Kind, prev.Days())
}

// Current renders "<phase> (<illumination>%)"
func Current(r lunar.Report) string {
	return fmt.Sprintf("%s (%s%%)", r.Phase, percent(r.Illumination))
}

// Phases renders the nearest past and future primary phases, e.g.
// "Last Quarter +6, New Moon -2". Past counts carry "+", future counts "-".
func Phases(r lunar.Report) string {
	prev, next := r.NearestPast(), r.NearestFuture()
	return fmt.Sprintf("%s +%d, %s -%d", prev.Kind, prev.Days(), next.Kind, next.Days())
}

// Next renders the upcoming primary phase as "NM -2"
func Next(r lunar.Report) string {
	next := r.NearestFuture()
	return fmt.Sprintf("%s -%d", next.Kind.Abbrev(), next.Days())
}

// Prev renders the latest primary phase as "LQ +6"
func Prev(r lunar.Report) string {
	prev := r.NearestPast()
	return fmt.Sprintf("%s +%d", prev.Kind.Abbrev(), prev.Days())
}

func percent(fraction float64) string {
	return fmt.Sprintf("%.1f", fraction*100)
}

// Event is the structured form of a lunar.PhaseEvent
type Event struct {
	Phase      string    `json:"phase"`
	Code       string    `json:"code"`
	OffsetDays float64   `json:"offset_days"`
	Days       int       `json:"days"`
	Time       time.Time `json:"time"`
}

// Document is the structured form of a report used for JSON and MessagePack
type Document struct {
	Time         time.Time `json:"time"`
	JulianDay    float64   `json:"julian_day"`
	PhaseAngle   float64   `json:"phase_angle"`
	AgeDays      float64   `json:"age_days"`
	Illumination float64   `json:"illumination"`
	Phase        string    `json:"phase"`
	Waxing       bool      `json:"waxing"`
	Next         Event     `json:"next"`
	Prev         Event     `json:"prev"`
	Past         []Event   `json:"past"`
	Future       []Event   `json:"future"`
}

// NewDocument flattens r for structured output
func NewDocument(r lunar.Report) Document {
	doc := Document{
		Time:         r.Time,
		JulianDay:    r.JulianDay,
		PhaseAngle:   r.Angle,
		AgeDays:      r.Age,
		Illumination: r.Illumination,
		Phase:        r.Phase.String(),
		Waxing:       r.Angle < 180,
		Next:         newEvent(r.NearestFuture()),
		Prev:         newEvent(r.NearestPast()),
		Past:         make([]Event, 0, len(r.Past)),
		Future:       make([]Event, 0, len(r.Future)),
	}
	for _, kind := range lunar.PrimaryPhases {
		doc.Past = append(doc.Past, newEvent(r.Past[kind]))
		doc.Future = append(doc.Future, newEvent(r.Future[kind]))
	}
	return doc
}

func newEvent(ev lunar.PhaseEvent) Event {
	return Event{
		Phase:      ev.Kind.String(),
		Code:       ev.Kind.Abbrev(),
		OffsetDays: ev.OffsetDays,
		Days:       ev.Days(),
		Time:       ev.Time,
	}
}
