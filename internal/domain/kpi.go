package domain

import "github.com/vfg2006/sales-analytics-api/pkg/utils"

// YearTotals is the raw aggregate of one custom year for a week or range.
type YearTotals struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
	Units   int     `json:"units"`
}

type WeekKPI struct {
	Year          int      `json:"year"`
	Week          *Week    `json:"week,omitempty"`
	Revenue       float64  `json:"revenue"`
	Units         int      `json:"units"`
	AOV           float64  `json:"aov"`
	RevenueChange *float64 `json:"revenue_change,omitempty"` // % vs previous year in the list
	UnitsChange   *float64 `json:"units_change,omitempty"`
	AOVChange     *float64 `json:"aov_change,omitempty"`
}

type WeekKPIReport struct {
	Week  int        `json:"week"`
	Years []*WeekKPI `json:"years"`
}

type YTDRevenue struct {
	Year          int      `json:"year"`
	Revenue       float64  `json:"revenue"`
	RevenueChange *float64 `json:"revenue_change,omitempty"`
}

type YTDComparison struct {
	ThroughWeek int           `json:"through_week"`
	Years       []*YTDRevenue `json:"years"`
}

type WeeklyRevenue struct {
	Week     int     `json:"week"`
	Revenue  float64 `json:"revenue"`
	Units    int     `json:"units"`
	Selected bool    `json:"selected"`
}

type WeeklyTrend struct {
	Year         int              `json:"year"`
	SelectedWeek int              `json:"selected_week"`
	Weeks        []*WeeklyRevenue `json:"weeks"`
}

// AOV is revenue per unit, 0 without units.
func AOV(revenue float64, units int) float64 {
	if units == 0 {
		return 0
	}
	return revenue / float64(units)
}

// PercentChange is nil when there is no previous value to compare against.
func PercentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
	return &change
}
