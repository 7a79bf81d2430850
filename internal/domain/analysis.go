package domain

import (
	"fmt"
	"time"
)

// UnassignedPriceRange labels sales whose channel carries no price range.
const UnassignedPriceRange = "0"

// SeasonAll matches every season.
const SeasonAll = "ALL"

// YearWeekRevenue is the raw aggregate of one custom week of one year.
type YearWeekRevenue struct {
	Year    int
	Week    int
	Revenue float64
	Units   int
}

type YearSeries struct {
	Year    int              `json:"year"`
	Revenue float64          `json:"revenue"`
	Units   int              `json:"units"`
	Weeks   []*WeeklyRevenue `json:"weeks"`
}

// YearOverYearTrend lines up weekly revenue of several years by week number.
type YearOverYearTrend struct {
	Years  []int         `json:"years"`
	Series []*YearSeries `json:"series"`
}

// MonthDay is a day of the year without the year, encoded as month*100+day.
type MonthDay int

const (
	FirstMonthDay MonthDay = 101
	LastMonthDay  MonthDay = 1231
)

// ParseMonthDay reads MM-DD. An empty string yields 0.
func ParseMonthDay(s string) (MonthDay, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse("01-02", s)
	if err != nil {
		return 0, fmt.Errorf("invalid month-day %q, expected MM-DD", s)
	}
	return MonthDay(int(t.Month())*100 + t.Day()), nil
}

func (m MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(m)/100, int(m)%100)
}

// SalesFilter narrows the breakdown aggregations. Empty slices do not filter.
// When From is after To the month-day window wraps over the new year.
type SalesFilter struct {
	Years    []int
	Weeks    []int
	Channels []string
	Listings []string
	Season   string
	From     MonthDay
	To       MonthDay
}

// HasDayWindow reports whether the filter restricts the day of year.
func (f SalesFilter) HasDayWindow() bool {
	return f.From != 0 || f.To != 0
}

// PriceRangeTotals is the raw aggregate of one applicable price range.
type PriceRangeTotals struct {
	Range   string
	Revenue float64
	Units   int
}

type PriceRangeSummary struct {
	Range      string  `json:"range"`
	Revenue    float64 `json:"revenue"`
	Units      int     `json:"units"`
	SalesShare float64 `json:"sales_share"` // % of total revenue
	AOV        float64 `json:"aov"`
}

type PriceRangeReport struct {
	Years   []int                `json:"years"`
	Weeks   []int                `json:"weeks,omitempty"`
	Revenue float64              `json:"revenue"`
	Ranges  []*PriceRangeSummary `json:"ranges"`
}

// ListingYearTotals is the raw aggregate of one listing in one custom year.
type ListingYearTotals struct {
	Listing string
	Year    int
	Revenue float64
	Units   int
}

type ListingYear struct {
	Year     int     `json:"year"`
	Units    int     `json:"units"`
	Revenue  float64 `json:"revenue"`
	AvgPrice float64 `json:"avg_price"`
}

type ListingSeasonality struct {
	Listing string         `json:"listing"`
	Years   []*ListingYear `json:"years"`
}

type SeasonalityReport struct {
	Years    []int                 `json:"years"`
	Season   string                `json:"season,omitempty"`
	From     string                `json:"from"`
	To       string                `json:"to"`
	Listings []*ListingSeasonality `json:"listings"`
}
