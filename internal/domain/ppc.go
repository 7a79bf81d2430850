package domain

import (
	"time"

	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// PPCAllCountries selects every marketplace worksheet.
const PPCAllCountries = "All"

// PPCRecord is one day of advertising metrics for a marketplace. ACOS and
// TACOS are the percentages reported by the worksheet, nil when blank.
type PPCRecord struct {
	Country     string    `json:"country"`
	Date        time.Time `json:"date"`
	Sessions    int64     `json:"sessions"`
	PageViews   int64     `json:"page_views"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	AdOrders    int64     `json:"ad_orders"`
	AdUnits     int64     `json:"ad_units"`
	AdSpend     float64   `json:"ad_spend"`
	AdSales     float64   `json:"ad_sales"`
	TotalSales  float64   `json:"total_sales"`
	TotalUnits  int64     `json:"total_units"`
	ACOS        *float64  `json:"acos,omitempty"`
	TACOS       *float64  `json:"tacos,omitempty"`
}

// PPCTotals accumulates PPC records and derives the advertising ratios.
type PPCTotals struct {
	Days        int     `json:"days"`
	Sessions    int64   `json:"sessions"`
	PageViews   int64   `json:"page_views"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	AdOrders    int64   `json:"ad_orders"`
	AdSpend     float64 `json:"ad_spend"`
	AdSales     float64 `json:"ad_sales"`
	TotalSales  float64 `json:"total_sales"`
	ACOS        float64 `json:"acos"`  // ad spend / ad sales, %
	TACOS       float64 `json:"tacos"` // ad spend / total sales, %
	ROAS        float64 `json:"roas"`
	CTR         float64 `json:"ctr"` // clicks / impressions, %
	CPC         float64 `json:"cpc"`
	CPA         float64 `json:"cpa"`
}

func (t *PPCTotals) Add(r *PPCRecord) {
	t.Sessions += r.Sessions
	t.PageViews += r.PageViews
	t.Impressions += r.Impressions
	t.Clicks += r.Clicks
	t.AdOrders += r.AdOrders
	t.AdSpend += r.AdSpend
	t.AdSales += r.AdSales
	t.TotalSales += r.TotalSales
}

// Finalize computes the ratios and rounds the money fields.
func (t *PPCTotals) Finalize() {
	t.ACOS = utils.RoundWithTwoDecimalPlace(ratio(t.AdSpend, t.AdSales) * 100)
	t.TACOS = utils.RoundWithTwoDecimalPlace(ratio(t.AdSpend, t.TotalSales) * 100)
	t.ROAS = utils.RoundWithTwoDecimalPlace(ratio(t.AdSales, t.AdSpend))
	t.CTR = utils.RoundWithTwoDecimalPlace(ratio(float64(t.Clicks), float64(t.Impressions)) * 100)
	t.CPC = utils.RoundWithTwoDecimalPlace(ratio(t.AdSpend, float64(t.Clicks)))
	t.CPA = utils.RoundWithTwoDecimalPlace(ratio(t.AdSpend, float64(t.AdOrders)))
	t.AdSpend = utils.RoundWithTwoDecimalPlace(t.AdSpend)
	t.AdSales = utils.RoundWithTwoDecimalPlace(t.AdSales)
	t.TotalSales = utils.RoundWithTwoDecimalPlace(t.TotalSales)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// PPCWindow is a 7-day window ending on the latest day with data.
type PPCWindow struct {
	StartDate Day        `json:"start_date"`
	EndDate   Day        `json:"end_date"`
	Totals    *PPCTotals `json:"totals"`
	AvgACOS   *float64   `json:"avg_acos,omitempty"`
	AvgTACOS  *float64   `json:"avg_tacos,omitempty"`
}

// PPCWeekOverWeek compares the last 7 days against the 7 days before them.
// Count metrics change in %, ACOS and TACOS averages in percentage points.
type PPCWeekOverWeek struct {
	Current           *PPCWindow `json:"current"`
	Previous          *PPCWindow `json:"previous"`
	AdSpendChange     *float64   `json:"ad_spend_change,omitempty"`
	AdSalesChange     *float64   `json:"ad_sales_change,omitempty"`
	TotalSalesChange  *float64   `json:"total_sales_change,omitempty"`
	ClicksChange      *float64   `json:"clicks_change,omitempty"`
	ImpressionsChange *float64   `json:"impressions_change,omitempty"`
	ACOSChange        *float64   `json:"acos_change_pp,omitempty"`
	TACOSChange       *float64   `json:"tacos_change_pp,omitempty"`
}

type PPCWeekTotals struct {
	Year   int        `json:"year"`
	Week   int        `json:"week"`
	Totals *PPCTotals `json:"totals"`
}

type PPCSummary struct {
	Country      string           `json:"country"`
	StartDate    Day              `json:"start_date"`
	EndDate      Day              `json:"end_date"`
	Totals       *PPCTotals       `json:"totals"`
	WeekOverWeek *PPCWeekOverWeek `json:"week_over_week,omitempty"`
	Weeks        []*PPCWeekTotals `json:"weeks"`
}

// PPCFilters selects the marketplace and an optional date range.
type PPCFilters struct {
	Country   string
	StartDate *time.Time
	EndDate   *time.Time
}
