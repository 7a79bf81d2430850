package targeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Wednesday 06 Mar 2024; the last completed week is Sat 24 Feb - Fri 01 Mar.
var today = time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc     TargetTracker
	sales   *mocks.MockSalesRecordRepository
	targets *mocks.MockTargetRepository
}

func newFixture(t *testing.T, channelFilter string) fixture {
	ctrl := gomock.NewController(t)
	sales := mocks.NewMockSalesRecordRepository(ctrl)
	targets := mocks.NewMockTargetRepository(ctrl)
	return fixture{
		svc:     NewService(sales, targets, calendar.New(calendar.FixedClock(today)), channelFilter),
		sales:   sales,
		targets: targets,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return calendar.Date(y, m, d)
}

func TestLastWeekPerformance(t *testing.T) {
	f := newFixture(t, "")
	start, end := day(2024, 2, 24), day(2024, 3, 1)

	f.targets.EXPECT().SumBetween(gomock.Any(), start, end).Return(7000.0, nil)
	f.sales.EXPECT().RevenueBetween(gomock.Any(), start, end, domain.AmazonChannel).Return(7700.0, nil)

	perf, err := f.svc.LastWeekPerformance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.TargetPeriodLastWeek, perf.Period)
	assert.Equal(t, "2024-02-24", perf.StartDate.String())
	assert.Equal(t, "2024-03-01", perf.EndDate.String())
	assert.Equal(t, 700.0, perf.Variance)
	assert.Equal(t, 10.0, perf.VariancePercent)
	assert.True(t, perf.OnTarget)
}

func TestDailyPerformance(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{name: "defaults to yesterday", date: "", want: day(2024, 3, 5)},
		{name: "explicit date", date: "2024-01-15", want: day(2024, 1, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "amazon")

			f.targets.EXPECT().SumBetween(gomock.Any(), tt.want, tt.want).Return(1000.0, nil)
			f.sales.EXPECT().RevenueBetween(gomock.Any(), tt.want, tt.want, "amazon").Return(900.0, nil)

			perf, err := f.svc.DailyPerformance(context.Background(), tt.date)
			require.NoError(t, err)

			assert.Equal(t, -100.0, perf.Variance)
			assert.Equal(t, -10.0, perf.VariancePercent)
			assert.False(t, perf.OnTarget)
		})
	}
}

func TestDailyPerformance_InvalidDate(t *testing.T) {
	f := newFixture(t, "")

	_, err := f.svc.DailyPerformance(context.Background(), "yesterday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeekPerformance(t *testing.T) {
	f := newFixture(t, "")
	start, end := day(2023, 12, 30), day(2024, 1, 5)

	f.targets.EXPECT().SumBetween(gomock.Any(), start, end).Return(0.0, nil)
	f.sales.EXPECT().RevenueBetween(gomock.Any(), start, end, domain.AmazonChannel).Return(500.0, nil)

	perf, err := f.svc.WeekPerformance(context.Background(), "2024", "1")
	require.NoError(t, err)

	assert.Equal(t, "Week 1: 30 Dec - 05 Jan, 2024", perf.Label)
	assert.Equal(t, 0.0, perf.Variance)
	assert.Equal(t, 0.0, perf.VariancePercent)
}

func TestWeekPerformance_NoRange(t *testing.T) {
	f := newFixture(t, "")

	for _, input := range [][2]string{{"2024", "0"}, {"abc", "1"}, {"2024", ""}} {
		_, err := f.svc.WeekPerformance(context.Background(), input[0], input[1])
		assert.ErrorIs(t, err, ErrNoRange, input)
	}
}

func TestWeekPerformance_RepositoryError(t *testing.T) {
	f := newFixture(t, "")

	f.targets.EXPECT().SumBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, errors.New("timeout")).AnyTimes()
	f.sales.EXPECT().RevenueBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()

	_, err := f.svc.WeekPerformance(context.Background(), "2024", "2")
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
