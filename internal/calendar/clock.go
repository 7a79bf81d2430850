package calendar

import "time"

// Clock supplies "now". Calendar code never reads the system clock directly.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the configured location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Calendar binds the calendar functions to a clock.
type Calendar struct {
	clock Clock
}

func New(clock Clock) *Calendar {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Calendar{clock: clock}
}

// Today is the clock's current calendar day.
func (c *Calendar) Today() time.Time {
	return Day(c.clock.Now())
}

// CurrentYear is the custom year containing today.
func (c *Calendar) CurrentYear() int {
	year, _ := DateToCustomWeek(c.Today())
	return year
}

// CurrentWeekNumber is CurrentWeekNumberAt for today.
func (c *Calendar) CurrentWeekNumber(year int) int {
	return CurrentWeekNumberAt(year, c.Today())
}

// LastCompletedWeek is LastCompletedWeek evaluated against today.
func (c *Calendar) LastCompletedWeek(availableWeeks []int, year int) int {
	return LastCompletedWeek(availableWeeks, year, c.Today())
}

// LastCompletedWeekRange is the Saturday..Friday window that ended before today.
func (c *Calendar) LastCompletedWeekRange() Week {
	return LastCompletedWeekRange(c.Today())
}

// Yesterday is the day before today.
func (c *Calendar) Yesterday() time.Time {
	return c.Today().AddDate(0, 0, -1)
}
