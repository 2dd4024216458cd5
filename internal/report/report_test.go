package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrissnell/moonphase/pkg/lunar"
)

// waningCrescent is a report two days before New Moon with the Last Quarter
// six days behind.
func waningCrescent() lunar.Report {
	at := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
	ev := func(kind lunar.PrimaryPhase, days float64) lunar.PhaseEvent {
		return lunar.PhaseEvent{
			Kind:       kind,
			OffsetDays: days,
			Time:       at.Add(time.Duration(days * 24 * float64(time.Hour))),
		}
	}

	return lunar.Report{
		Time:         at,
		JulianDay:    2460378.0,
		Angle:        337.6,
		Age:          27.7,
		Illumination: 0.038,
		Phase:        lunar.WaningCrescent,
		Past: [4]lunar.PhaseEvent{
			ev(lunar.PrimaryNewMoon, -27.6),
			ev(lunar.PrimaryFirstQuarter, -20.3),
			ev(lunar.PrimaryFullMoon, -13.1),
			ev(lunar.PrimaryLastQuarter, -6.2),
		},
		Future: [4]lunar.PhaseEvent{
			ev(lunar.PrimaryNewMoon, 1.9),
			ev(lunar.PrimaryFirstQuarter, 9.3),
			ev(lunar.PrimaryFullMoon, 16.4),
			ev(lunar.PrimaryLastQuarter, 23.3),
		},
	}
}

func TestRenderViews(t *testing.T) {
	r := waningCrescent()

	tests := []struct {
		view     View
		expected string
	}{
		{ViewCurrent, "Waning Crescent (3.8%)"},
		{ViewNext, "NM -2"},
		{ViewPrev, "LQ +6"},
		{ViewPhases, "Last Quarter +6, New Moon -2"},
		{ViewSummary, "Phase: Waning Crescent\nIllumination: 3.8%\nNew Moon in 2 days\nLast Quarter was 6 days ago"},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			got, err := Render(tt.view, r)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderUnknownView(t *testing.T) {
	_, err := Render("tomorrow", waningCrescent())
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestRenderAllViews(t *testing.T) {
	r := lunar.Calculate(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	for _, view := range Views {
		out, err := Render(view, r)
		require.NoError(t, err, view)
		assert.NotEmpty(t, out, view)
		assert.NotContains(t, out, "Unknown", view)
	}
}

func TestViewsFromEngine(t *testing.T) {
	// 54 hours before the New Moon of 2023-02-20 07:06 UTC
	r := lunar.Calculate(time.Date(2023, 2, 18, 1, 6, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(Current(r), "Waning Crescent ("), Current(r))
	assert.Equal(t, "NM -2", Next(r))
	assert.Equal(t, "LQ +4", Prev(r))
	assert.Equal(t, "Last Quarter +4, New Moon -2", Phases(r))
}

func TestBoundaryViews(t *testing.T) {
	// On a New Moon both directions report it with a zero count
	e := lunar.NewEngine(lunar.DefaultDeltaT)
	r := e.Calculate(e.Occurrence(lunar.PrimaryNewMoon, 300))

	assert.Equal(t, "NM -0", Next(r))
	assert.Equal(t, "NM +0", Prev(r))
	assert.Equal(t, "New Moon (0.0%)", Current(r))
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(waningCrescent())

	assert.Equal(t, "Waning Crescent", doc.Phase)
	assert.False(t, doc.Waxing)
	assert.Equal(t, "NM", doc.Next.Code)
	assert.Equal(t, 2, doc.Next.Days)
	assert.Equal(t, "Last Quarter", doc.Prev.Phase)
	assert.InDelta(t, -6.2, doc.Prev.OffsetDays, 1e-9)
	require.Len(t, doc.Past, 4)
	require.Len(t, doc.Future, 4)
	assert.Equal(t, "FQ", doc.Future[1].Code)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"phase":"Waning Crescent"`)
	assert.Contains(t, string(raw), `"code":"LQ"`)
}
