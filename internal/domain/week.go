package domain

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/calendar"
)

// Day is a calendar day serialized as YYYY-MM-DD.
type Day time.Time

func NewDay(t time.Time) *Day {
	d := Day(calendar.Day(t))
	return &d
}

func (d Day) Time() time.Time {
	return time.Time(d)
}

func (d Day) String() string {
	return time.Time(d).Format(time.DateOnly)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	*d = Day(t)
	return nil
}

// Week is the response shape of a custom week.
type Week struct {
	Year      int    `json:"year"`
	Week      int    `json:"week"`
	StartDate Day    `json:"start_date"`
	EndDate   Day    `json:"end_date"`
	Label     string `json:"label"`
}

func NewWeek(w calendar.Week) *Week {
	return &Week{
		Year:      w.Year,
		Week:      w.Number,
		StartDate: Day(w.Start),
		EndDate:   Day(w.End),
		Label:     w.Label(),
	}
}

// WeekLookup answers a week range request. Available is false when the
// requested year/week has no date range; the dashboard renders that as N/A.
type WeekLookup struct {
	Available bool  `json:"available"`
	Week      *Week `json:"week,omitempty"`
}
