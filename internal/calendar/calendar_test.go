package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStartOfYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		want time.Time
	}{
		{name: "2024 starts on a Monday, week 1 begins the Saturday before", year: 2024, want: Date(2023, time.December, 30)},
		{name: "2022 starts on a Saturday", year: 2022, want: Date(2022, time.January, 1)},
		{name: "2023 starts on a Sunday", year: 2023, want: Date(2022, time.December, 31)},
		{name: "2025 starts on a Wednesday", year: 2025, want: Date(2024, time.December, 28)},
		{name: "2021 starts on a Friday", year: 2021, want: Date(2020, time.December, 26)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartOfYear(tt.year))
		})
	}
}

func TestWeekStartOfYear_Properties(t *testing.T) {
	for year := 1950; year <= 2150; year++ {
		start := WeekStartOfYear(year)
		jan1 := Date(year, time.January, 1)

		assert.Equal(t, time.Saturday, start.Weekday(), "year %d", year)
		assert.False(t, start.After(jan1), "year %d", year)
		assert.True(t, start.After(jan1.AddDate(0, 0, -7)), "year %d", year)
	}
}

func TestWeekDateRange(t *testing.T) {
	w, ok := WeekDateRange(2024, 1)
	require.True(t, ok)
	assert.Equal(t, Date(2023, time.December, 30), w.Start)
	assert.Equal(t, Date(2024, time.January, 5), w.End)

	w, ok = WeekDateRange(2022, 1)
	require.True(t, ok)
	assert.Equal(t, Date(2022, time.January, 1), w.Start)
	assert.Equal(t, Date(2022, time.January, 7), w.End)

	w, ok = WeekDateRange(2024, 3)
	require.True(t, ok)
	assert.Equal(t, Date(2024, time.January, 13), w.Start)
	assert.Equal(t, Date(2024, time.January, 19), w.End)
	assert.Equal(t, "Week 3: 13 Jan - 19 Jan, 2024", w.Label())
}

func TestWeekDateRange_NoRange(t *testing.T) {
	tests := []struct {
		name string
		year int
		week int
	}{
		{name: "week zero", year: 2024, week: 0},
		{name: "negative week", year: 2024, week: -3},
		{name: "year zero", year: 0, week: 1},
		{name: "five digit year", year: 10000, week: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := WeekDateRange(tt.year, tt.week)
			assert.False(t, ok)
			assert.Equal(t, Week{}, w)
		})
	}
}

func TestParseWeekDateRange(t *testing.T) {
	tests := []struct {
		name   string
		year   string
		week   string
		wantOK bool
		start  time.Time
	}{
		{name: "plain integers", year: "2024", week: "2", wantOK: true, start: Date(2024, time.January, 6)},
		{name: "surrounding spaces", year: " 2022 ", week: " 1", wantOK: true, start: Date(2022, time.January, 1)},
		{name: "zero padded week", year: "2024", week: "08", wantOK: true, start: Date(2024, time.February, 17)},
		{name: "non numeric year", year: "abc", week: "1"},
		{name: "decimal week", year: "2024", week: "1.5"},
		{name: "empty week", year: "2024", week: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := ParseWeekDateRange(tt.year, tt.week)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.start, w.Start)
				assert.Equal(t, tt.start.AddDate(0, 0, 6), w.End)
			}
		})
	}
}

func TestWeekDateRange_Properties(t *testing.T) {
	for year := 2015; year <= 2035; year++ {
		for week := 1; week <= 60; week++ {
			w, ok := WeekDateRange(year, week)
			require.True(t, ok)

			assert.Equal(t, w.Start.AddDate(0, 0, 6), w.End)
			assert.Equal(t, WeekStartOfYear(year).AddDate(0, 0, 7*(week-1)), w.Start)

			next, ok := WeekDateRange(year, week+1)
			require.True(t, ok)
			assert.Equal(t, w.End.AddDate(0, 0, 1), next.Start, "year %d week %d", year, week)
			assert.Equal(t, next, w.Next())
		}
	}
}

func TestDateToCustomWeek(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantYear int
		wantWeek int
	}{
		{name: "week 1 Saturday in previous December", date: Date(2023, time.December, 30), wantYear: 2024, wantWeek: 1},
		{name: "last Friday of 2023 numbering", date: Date(2023, time.December, 29), wantYear: 2023, wantWeek: 52},
		{name: "January 1 2024", date: Date(2024, time.January, 1), wantYear: 2024, wantWeek: 1},
		{name: "first Friday of 2024", date: Date(2024, time.January, 5), wantYear: 2024, wantWeek: 1},
		{name: "second Saturday of 2024", date: Date(2024, time.January, 6), wantYear: 2024, wantWeek: 2},
		{name: "year starting on Saturday", date: Date(2022, time.January, 1), wantYear: 2022, wantWeek: 1},
		{name: "53rd week of 2021", date: Date(2021, time.December, 31), wantYear: 2021, wantWeek: 53},
		{name: "time of day is ignored", date: time.Date(2024, time.January, 5, 23, 59, 0, 0, time.UTC), wantYear: 2024, wantWeek: 1},
		{name: "zone keeps wall clock date", date: time.Date(2024, time.January, 6, 0, 30, 0, 0, time.FixedZone("BST", 3600)), wantYear: 2024, wantWeek: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := DateToCustomWeek(tt.date)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantWeek, week)
		})
	}
}

func TestDateToCustomWeek_RoundTrip(t *testing.T) {
	start := Date(2018, time.December, 1)
	end := Date(2031, time.February, 1)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		year, week := DateToCustomWeek(d)
		require.GreaterOrEqual(t, week, 1)
		require.LessOrEqual(t, week, WeeksInYear(year), "date %s", d.Format(time.DateOnly))

		w, ok := WeekDateRange(year, week)
		require.True(t, ok)
		assert.True(t, w.Contains(d), "date %s not in %d/%d", d.Format(time.DateOnly), year, week)
		assert.Equal(t, w, WeekOf(d))
	}
}

func TestWeeksInYear(t *testing.T) {
	assert.Equal(t, 53, WeeksInYear(2021))
	assert.Equal(t, 52, WeeksInYear(2022))
	assert.Equal(t, 52, WeeksInYear(2023))
	assert.Equal(t, 52, WeeksInYear(2024))
	assert.Equal(t, 53, WeeksInYear(2027))
}

func TestCurrentWeekNumberAt(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		today time.Time
		want  int
	}{
		{name: "inside week 2", year: 2024, today: Date(2024, time.January, 8), want: 2},
		{name: "first day of week 1", year: 2024, today: Date(2023, time.December, 30), want: 1},
		{name: "before the year clamps to 1", year: 2024, today: Date(2023, time.June, 1), want: 1},
		{name: "long after the year clamps to 53", year: 2024, today: Date(2026, time.January, 1), want: 53},
		{name: "far past year clamps to 53", year: 1900, today: Date(2024, time.March, 1), want: 53},
		{name: "far future year clamps to 1", year: 2400, today: Date(2024, time.March, 1), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentWeekNumberAt(tt.year, tt.today))
		})
	}
}

func TestCurrentWeekNumberAt_AlwaysInRange(t *testing.T) {
	for year := 2020; year <= 2028; year++ {
		for d := Date(2019, time.January, 1); d.Before(Date(2030, time.January, 1)); d = d.AddDate(0, 0, 5) {
			got := CurrentWeekNumberAt(year, d)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, MaxWeekNumber)
		}
	}
}

func TestLastCompletedWeek(t *testing.T) {
	tests := []struct {
		name  string
		weeks []int
		year  int
		today time.Time
		want  int
	}{
		{name: "after week 3 ends", weeks: []int{1, 2, 3}, year: 2024, today: Date(2024, time.January, 20), want: 3},
		{name: "within week 2 only week 1 is complete", weeks: []int{1, 2, 3}, year: 2024, today: Date(2024, time.January, 8), want: 1},
		{name: "on the Friday that ends week 2", weeks: []int{1, 2, 3}, year: 2024, today: Date(2024, time.January, 12), want: 1},
		{name: "nothing completed falls back to latest available", weeks: []int{1, 2, 3}, year: 2024, today: Date(2024, time.January, 2), want: 3},
		{name: "unsorted input", weeks: []int{3, 1, 2}, year: 2024, today: Date(2024, time.January, 15), want: 2},
		{name: "no weeks", weeks: []int{}, year: 2024, today: Date(2024, time.May, 1), want: 1},
		{name: "nil weeks", weeks: nil, year: 2024, today: Date(2024, time.May, 1), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastCompletedWeek(tt.weeks, tt.year, tt.today))
		})
	}
}

func TestLastCompletedWeekRange(t *testing.T) {
	w := LastCompletedWeekRange(Date(2024, time.January, 10))
	assert.Equal(t, Date(2023, time.December, 30), w.Start)
	assert.Equal(t, Date(2024, time.January, 5), w.End)
	assert.Equal(t, 2024, w.Year)
	assert.Equal(t, 1, w.Number)

	// On a Saturday the week that ended yesterday is the last complete one.
	w = LastCompletedWeekRange(Date(2024, time.January, 13))
	assert.Equal(t, Date(2024, time.January, 6), w.Start)
	assert.Equal(t, Date(2024, time.January, 12), w.End)
	assert.Equal(t, time.Friday, w.End.Weekday())
}

func TestDefaultComparisonYears(t *testing.T) {
	assert.Equal(t, []int{2024, 2025}, DefaultComparisonYears([]int{2023, 2024, 2025}))
	assert.Equal(t, []int{2025}, DefaultComparisonYears([]int{2025}))
	assert.Equal(t, []int{}, DefaultComparisonYears([]int{}))
	assert.Equal(t, []int{}, DefaultComparisonYears(nil))
	assert.Equal(t, []int{2023, 2024}, DefaultComparisonYears([]int{2024, 2022, 2023}))
}

func TestCalendar_WithFixedClock(t *testing.T) {
	cal := New(FixedClock(time.Date(2024, time.January, 8, 15, 4, 5, 0, time.UTC)))

	assert.Equal(t, Date(2024, time.January, 8), cal.Today())
	assert.Equal(t, Date(2024, time.January, 7), cal.Yesterday())
	assert.Equal(t, 2024, cal.CurrentYear())
	assert.Equal(t, 2, cal.CurrentWeekNumber(2024))
	assert.Equal(t, 1, cal.LastCompletedWeek([]int{1, 2, 3}, 2024))
	assert.Equal(t, Date(2024, time.January, 5), cal.LastCompletedWeekRange().End)
}
