package domain

// AvailablePeriods lists the custom years and weeks present in the stored sales
// data and the defaults the dashboard filters start from.
type AvailablePeriods struct {
	Years              []int `json:"years"`                // Custom years with data, ascending
	ComparisonYears    []int `json:"comparison_years"`     // Default year-over-year selection
	CurrentYear        int   `json:"current_year"`         // Latest custom year with data
	Weeks              []int `json:"weeks"`                // Weeks with data in CurrentYear
	CurrentWeek        int   `json:"current_week"`         // Week containing today, clamped to [1, 53]
	DefaultWeek        int   `json:"default_week"`         // Current week if it has data, else last completed week
	DefaultWeekRange   *Week `json:"default_week_range"`   // Date range of DefaultWeek
	EarliestRecordDate *Day  `json:"earliest_record_date"` // Oldest sales date
	LatestRecordDate   *Day  `json:"latest_record_date"`   // Most recent sales date
}
