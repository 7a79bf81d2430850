package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestSalesInsertQuery(t *testing.T) {
	records := []*domain.SalesRecord{
		{Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), SalesValue: 12.5, Quantity: 1, Channel: "Amazon UK", CustomYear: 2024, CustomWeek: 2},
		{Date: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), SalesValue: 8, Quantity: 2, Channel: "Etsy", CustomYear: 2024, CustomWeek: 2},
	}

	query, args, err := salesInsertQuery("2024", records).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO sales_records")
	assert.Contains(t, query, "price_range_uk")
	assert.Contains(t, query, "$26")
	assert.Len(t, args, 26)
	assert.Equal(t, "2024", args[0])
	assert.Equal(t, "2024-01-06", args[1])
	assert.Equal(t, 2, args[25])
}

func TestYearTotalsQuery(t *testing.T) {
	query, args, err := yearTotalsQuery(squirrel.Eq{"custom_week": 7}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT custom_year, COALESCE(SUM(sales_value), 0), COALESCE(SUM(quantity), 0) FROM sales_records WHERE custom_week = $1 GROUP BY custom_year ORDER BY custom_year ASC",
		query)
	assert.Equal(t, []any{7}, args)
}

func TestRevenueBetweenQuery(t *testing.T) {
	start := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	query, args, err := revenueBetweenQuery(start, end, "amazon").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "channel ILIKE $3")
	assert.Equal(t, []any{"2024-01-06", "2024-01-12", "%amazon%"}, args)

	query, args, err = revenueBetweenQuery(start, end, "").ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "ILIKE")
	assert.Len(t, args, 2)
}

func TestCountryFilter(t *testing.T) {
	sql, args, err := countryFilter(domain.PPCAllCountries).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "TRUE", sql)
	assert.Empty(t, args)

	sql, args, err = countryFilter("UK").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "country = ?", sql)
	assert.Equal(t, []any{"UK"}, args)
}

func TestLastPerDay(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []*domain.PPCRecord{
		{Date: day, Clicks: 1},
		{Date: day.AddDate(0, 0, 1), Clicks: 2},
		{Date: day, Clicks: 3},
	}

	got := lastPerDay(records)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].Clicks)
	assert.Equal(t, int64(2), got[1].Clicks)
}

func TestFirstPerDay(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	targets := []*domain.TargetRecord{
		{Date: day, DailyTarget: 100},
		{Date: day.AddDate(0, 0, 1), DailyTarget: 200},
		{Date: day, DailyTarget: 999},
	}

	got := firstPerDay(targets)

	require.Len(t, got, 2)
	assert.Equal(t, 100.0, got[0].DailyTarget)
	assert.Equal(t, 200.0, got[1].DailyTarget)
}

func TestYearWeekRevenueQuery(t *testing.T) {
	query, args, err := yearWeekRevenueQuery([]int{2023, 2024}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE custom_year IN ($1,$2)")
	assert.Contains(t, query, "GROUP BY custom_year, custom_week")
	assert.Contains(t, query, "ORDER BY custom_year ASC, custom_week ASC")
	assert.Equal(t, []any{2023, 2024}, args)
}

func TestDayWindow(t *testing.T) {
	tests := []struct {
		name     string
		from, to domain.MonthDay
		wantOr   bool
		wantArgs []any
	}{
		{name: "plain window", from: 301, to: 630, wantArgs: []any{301, 630}},
		{name: "open start", to: 630, wantArgs: []any{101, 630}},
		{name: "open end", from: 301, wantArgs: []any{301, 1231}},
		{name: "wraps over new year", from: 1101, to: 228, wantOr: true, wantArgs: []any{1101, 228}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := dayWindow(tt.from, tt.to).ToSql()
			require.NoError(t, err)

			assert.Contains(t, sql, "EXTRACT(MONTH FROM sale_date)")
			assert.Equal(t, tt.wantOr, strings.Contains(sql, " OR "))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPriceRangeQuery(t *testing.T) {
	query, args, err := priceRangeQuery(domain.SalesFilter{
		Years:    []int{2024},
		Weeks:    []int{10, 11},
		Channels: []string{"Amazon UK"},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "CASE WHEN")
	assert.Contains(t, query, "COALESCE(NULLIF(price_range_uk, ''), $3)")
	assert.Contains(t, query, "AS applicable_range")
	assert.Contains(t, query, "custom_year IN ($8)")
	assert.Contains(t, query, "custom_week IN ($9,$10)")
	assert.Contains(t, query, "channel IN ($11)")
	assert.Contains(t, query, "GROUP BY applicable_range")
	assert.NotContains(t, query, "season")
	assert.Equal(t, []any{
		"%website uk%", "%amazon uk%", domain.UnassignedPriceRange,
		"%website us%", "%amazon us%", domain.UnassignedPriceRange,
		domain.UnassignedPriceRange,
		2024, 10, 11, "Amazon UK",
	}, args)
}

func TestListingYearQuery(t *testing.T) {
	tests := []struct {
		name        string
		filter      domain.SalesFilter
		contains    []string
		notContains []string
		wantArgs    int
	}{
		{
			name:        "no filter",
			filter:      domain.SalesFilter{},
			contains:    []string{"listing <> $1", "GROUP BY listing, custom_year"},
			notContains: []string{"season", "EXTRACT"},
			wantArgs:    1,
		},
		{
			name:        "all seasons",
			filter:      domain.SalesFilter{Season: "all", Years: []int{2024, 2025}},
			contains:    []string{"custom_year IN ($2,$3)"},
			notContains: []string{"season"},
			wantArgs:    3,
		},
		{
			name:     "season and day window",
			filter:   domain.SalesFilter{Season: "SS25", Listings: []string{"Solid Pants"}, From: 301, To: 831},
			contains: []string{"listing IN ($2)", "season = $3", "BETWEEN $4 AND $5"},
			wantArgs: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listingYearQuery(tt.filter).ToSql()
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, query, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, query, unwanted)
			}
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestPPCInsertQuery(t *testing.T) {
	acos := 0.25
	records := []*domain.PPCRecord{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), AdSpend: 10, AdSales: 40, ACOS: &acos},
	}

	query, args, err := ppcInsertQuery("UK", records).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO ppc_metrics")
	assert.Len(t, args, len(ppcColumns))
	assert.Equal(t, "UK", args[0])
	assert.Equal(t, "2024-03-01", args[1])
}
