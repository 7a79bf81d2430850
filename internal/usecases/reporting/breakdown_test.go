package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type mockRepo = mocks.MockSalesRecordRepository

func TestYearOverYearTrend(t *testing.T) {
	tests := []struct {
		name      string
		years     []int
		setup     func(repo *mockRepo)
		wantYears []int
	}{
		{
			name:  "defaults to the last two years",
			years: nil,
			setup: func(repo *mockRepo) {
				repo.EXPECT().AvailableYears(gomock.Any()).Return([]int{2022, 2023, 2024}, nil)
			},
			wantYears: []int{2023, 2024},
		},
		{
			name:      "sorts and dedupes requested years",
			years:     []int{2024, 2023, 2024},
			setup:     func(repo *mockRepo) {},
			wantYears: []int{2023, 2024},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			ctx := context.Background()

			tt.setup(repo)
			repo.EXPECT().WeeklyRevenueByYears(ctx, tt.wantYears).Return([]*domain.YearWeekRevenue{
				{Year: 2023, Week: 1, Revenue: 100.004, Units: 4},
				{Year: 2023, Week: 2, Revenue: 50, Units: 2},
				{Year: 2024, Week: 1, Revenue: 120, Units: 5},
			}, nil)

			trend, err := svc.YearOverYearTrend(ctx, tt.years)
			require.NoError(t, err)

			assert.Equal(t, tt.wantYears, trend.Years)
			require.Len(t, trend.Series, 2)

			prev := trend.Series[0]
			assert.Equal(t, 2023, prev.Year)
			assert.Equal(t, 150.0, prev.Revenue)
			assert.Equal(t, 6, prev.Units)
			require.Len(t, prev.Weeks, 2)
			assert.Equal(t, 100.0, prev.Weeks[0].Revenue)

			curr := trend.Series[1]
			assert.Equal(t, 2024, curr.Year)
			require.Len(t, curr.Weeks, 1)
			assert.Equal(t, 1, curr.Weeks[0].Week)
		})
	}
}

func TestYearOverYearTrend_NoData(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().AvailableYears(ctx).Return([]int{}, nil)

	trend, err := svc.YearOverYearTrend(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, trend.Years)
	assert.Empty(t, trend.Series)
}

func TestYearOverYearTrend_Errors(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.YearOverYearTrend(ctx, []int{2024, 0})
	assert.ErrorIs(t, err, ErrInvalidYear)

	repo.EXPECT().WeeklyRevenueByYears(ctx, []int{2024}).Return(nil, errors.New("connection refused"))
	_, err = svc.YearOverYearTrend(ctx, []int{2024})
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestPriceRanges(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().AvailableYears(ctx).Return([]int{2023, 2024}, nil)
	repo.EXPECT().PriceRangeTotals(ctx, domain.SalesFilter{
		Years:    []int{2023, 2024},
		Weeks:    []int{10},
		Channels: []string{"Amazon UK"},
	}).Return([]*domain.PriceRangeTotals{
		{Range: domain.UnassignedPriceRange, Revenue: 100, Units: 4},
		{Range: "£20-£30", Revenue: 300, Units: 12},
	}, nil)

	report, err := svc.PriceRanges(ctx, domain.SalesFilter{
		Weeks:    []int{10},
		Channels: []string{"Amazon UK"},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{2023, 2024}, report.Years)
	assert.Equal(t, 400.0, report.Revenue)
	require.Len(t, report.Ranges, 2)
	assert.Equal(t, 25.0, report.Ranges[0].SalesShare)
	assert.Equal(t, "£20-£30", report.Ranges[1].Range)
	assert.Equal(t, 75.0, report.Ranges[1].SalesShare)
	assert.Equal(t, 25.0, report.Ranges[1].AOV)
}

func TestPriceRanges_Errors(t *testing.T) {
	tests := []struct {
		name    string
		filter  domain.SalesFilter
		setup   func(repo *mockRepo)
		wantErr error
	}{
		{
			name:    "week out of range",
			filter:  domain.SalesFilter{Weeks: []int{54}},
			setup:   func(repo *mockRepo) {},
			wantErr: ErrInvalidWeek,
		},
		{
			name:   "years lookup fails",
			filter: domain.SalesFilter{},
			setup: func(repo *mockRepo) {
				repo.EXPECT().AvailableYears(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: ErrDatabaseOperation,
		},
		{
			name:   "aggregation fails",
			filter: domain.SalesFilter{Years: []int{2024}},
			setup: func(repo *mockRepo) {
				repo.EXPECT().PriceRangeTotals(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			tt.setup(repo)

			_, err := svc.PriceRanges(context.Background(), tt.filter)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSeasonality(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	filter := domain.SalesFilter{Season: "SS24", From: 301, To: 831}

	repo.EXPECT().AvailableYears(ctx).Return([]int{2021, 2022, 2023, 2024}, nil)
	repo.EXPECT().ListingYearTotals(ctx, domain.SalesFilter{
		Years:  []int{2022, 2023, 2024},
		Season: "SS24",
		From:   301,
		To:     831,
	}).Return([]*domain.ListingYearTotals{
		{Listing: "Belts", Year: 2024, Revenue: 90, Units: 3},
		{Listing: "Socks", Year: 2023, Revenue: 10, Units: 2},
		{Listing: "Solid Shorts", Year: 2023, Revenue: 200, Units: 8},
		{Listing: "Solid Shorts", Year: 2024, Revenue: 0, Units: 0},
		{Listing: "Pattern Pants", Year: 2024, Revenue: 500, Units: 10},
	}, nil)

	report, err := svc.Seasonality(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, []int{2022, 2023, 2024}, report.Years)
	assert.Equal(t, "03-01", report.From)
	assert.Equal(t, "08-31", report.To)

	names := make([]string, 0, len(report.Listings))
	for _, l := range report.Listings {
		names = append(names, l.Listing)
	}
	assert.Equal(t, []string{"Pattern Pants", "Solid Shorts", "Belts", "Socks"}, names)

	shorts := report.Listings[1]
	require.Len(t, shorts.Years, 2)
	assert.Equal(t, 25.0, shorts.Years[0].AvgPrice)
	assert.Equal(t, 0.0, shorts.Years[1].AvgPrice)
}

func TestSeasonality_FullYearWindow(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().ListingYearTotals(ctx, domain.SalesFilter{Years: []int{2024}}).Return([]*domain.ListingYearTotals{}, nil)

	report, err := svc.Seasonality(ctx, domain.SalesFilter{Years: []int{2024}})
	require.NoError(t, err)

	assert.Equal(t, "01-01", report.From)
	assert.Equal(t, "12-31", report.To)
	assert.Empty(t, report.Listings)
}
