// Package calendar maps calendar dates to the business's custom week numbering.
//
// Custom weeks run Saturday to Friday. Week 1 of a custom year starts on the
// Saturday on or before January 1 of that calendar year, so week 1 always
// contains January 1. A custom year has 52 or 53 weeks.
package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	daysPerWeek   = 7
	secondsPerDay = 24 * 60 * 60

	// MaxWeekNumber is the highest week number a custom year can have.
	MaxWeekNumber = 53

	minYear = 1
	maxYear = 9999
)

// Week is a single Saturday to Friday custom week.
type Week struct {
	Year   int       `json:"year"`
	Number int       `json:"week"`
	Start  time.Time `json:"start_date"`
	End    time.Time `json:"end_date"`
}

// Contains reports whether the calendar day of t falls inside the week.
func (w Week) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Next returns the week that immediately follows w, in the same year's numbering.
func (w Week) Next() Week {
	next, _ := WeekDateRange(w.Year, w.Number+1)
	return next
}

// Label renders the week the way the dashboard shows a selected week.
func (w Week) Label() string {
	return fmt.Sprintf("Week %d: %s - %s", w.Number, w.Start.Format("02 Jan"), w.End.Format("02 Jan, 2006"))
}

// Date builds a calendar day at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day drops the time of day and zone of t, keeping its wall-clock date.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// saturdayIndex numbers weekdays Saturday=0 .. Friday=6.
func saturdayIndex(t time.Time) int {
	// time.Weekday is Sunday=0, so Saturday (6) maps to 0 and Sunday to 1.
	return (int(t.Weekday()) + 1) % daysPerWeek
}

// WeekStartOfYear returns the Saturday that starts week 1 of the custom year.
func WeekStartOfYear(year int) time.Time {
	jan1 := Date(year, time.January, 1)
	return jan1.AddDate(0, 0, -saturdayIndex(jan1))
}

// WeekDateRange returns the Saturday..Friday range of the given week. The
// boolean is false when no range exists: week below 1 or a year outside the
// four digit range. Week numbers above 53 are not rejected.
func WeekDateRange(year, week int) (Week, bool) {
	if year < minYear || year > maxYear || week < 1 {
		return Week{}, false
	}

	start := WeekStartOfYear(year).AddDate(0, 0, (week-1)*daysPerWeek)
	return Week{
		Year:   year,
		Number: week,
		Start:  start,
		End:    start.AddDate(0, 0, daysPerWeek-1),
	}, true
}

// ParseWeekDateRange is WeekDateRange for raw filter values such as query
// parameters. Anything that is not an integer yields the no-range result.
func ParseWeekDateRange(year, week string) (Week, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Week{}, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(week))
	if err != nil {
		return Week{}, false
	}
	return WeekDateRange(y, w)
}

// DateToCustomWeek returns the custom year and week number that contain t.
// Late-December days on or after the next year's week 1 Saturday belong to
// the next custom year.
func DateToCustomWeek(t time.Time) (year, week int) {
	d := Day(t)
	year = d.Year()
	if !d.Before(WeekStartOfYear(year + 1)) {
		year++
	}
	return year, floorDiv(daysBetween(WeekStartOfYear(year), d), daysPerWeek) + 1
}

// WeekOf is DateToCustomWeek returning the full week.
func WeekOf(t time.Time) Week {
	w, _ := WeekDateRange(DateToCustomWeek(t))
	return w
}

// WeeksInYear returns 52 or 53.
func WeeksInYear(year int) int {
	return daysBetween(WeekStartOfYear(year), WeekStartOfYear(year+1)) / daysPerWeek
}

// CurrentWeekNumberAt counts weeks from the year's week 1 origin up to today,
// clamped to [1, 53] so the result is usable as a default selector even when
// today lies outside the year.
func CurrentWeekNumberAt(year int, today time.Time) int {
	week := floorDiv(daysBetween(WeekStartOfYear(year), Day(today)), daysPerWeek) + 1
	if week < 1 {
		return 1
	}
	if week > MaxWeekNumber {
		return MaxWeekNumber
	}
	return week
}

// LastCompletedWeek picks the latest available week whose Friday is before
// today. Without a completed week it falls back to the latest available week,
// and to week 1 when nothing is available.
func LastCompletedWeek(availableWeeks []int, year int, today time.Time) int {
	if len(availableWeeks) == 0 {
		return 1
	}

	weeks := sortedCopy(availableWeeks)
	d := Day(today)

	completed := 0
	for _, wk := range weeks {
		r, ok := WeekDateRange(year, wk)
		if !ok {
			continue
		}
		if r.End.Before(d) {
			completed = wk
		}
	}
	if completed > 0 {
		return completed
	}

	return weeks[len(weeks)-1]
}

// LastCompletedWeekRange returns the Saturday..Friday window that ended
// before today, regardless of year numbering.
func LastCompletedWeekRange(today time.Time) Week {
	d := Day(today)
	end := d.AddDate(0, 0, -(saturdayIndex(d) + 1))
	year, week := DateToCustomWeek(end)
	return Week{
		Year:   year,
		Number: week,
		Start:  end.AddDate(0, 0, -(daysPerWeek - 1)),
		End:    end,
	}
}

// DefaultComparisonYears returns the last two years for year-over-year views,
// or the single most recent year when only one exists.
func DefaultComparisonYears(availableYears []int) []int {
	years := sortedCopy(availableYears)
	switch len(years) {
	case 0:
		return []int{}
	case 1:
		return []int{years[0]}
	default:
		return []int{years[len(years)-2], years[len(years)-1]}
	}
}

func sortedCopy(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	sort.Ints(out)
	return out
}

func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
