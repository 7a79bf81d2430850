package targeting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type TargetTracker interface {
	LastWeekPerformance(ctx context.Context) (*domain.TargetPerformance, error)
	DailyPerformance(ctx context.Context, date string) (*domain.TargetPerformance, error)
	WeekPerformance(ctx context.Context, year, week string) (*domain.TargetPerformance, error)
}

type Service struct {
	salesRepository  repository.SalesRecordRepository
	targetRepository repository.TargetRepository
	calendar         *calendar.Calendar
	channelFilter    string
}

// NewService measures revenue of channels containing channelFilter against
// the daily targets. An empty filter falls back to the Amazon channel.
func NewService(
	salesRepository repository.SalesRecordRepository,
	targetRepository repository.TargetRepository,
	cal *calendar.Calendar,
	channelFilter string,
) TargetTracker {
	if channelFilter == "" {
		channelFilter = domain.AmazonChannel
	}
	return &Service{
		salesRepository:  salesRepository,
		targetRepository: targetRepository,
		calendar:         cal,
		channelFilter:    channelFilter,
	}
}

// LastWeekPerformance covers the Saturday..Friday window that ended before today.
func (s *Service) LastWeekPerformance(ctx context.Context) (*domain.TargetPerformance, error) {
	week := s.calendar.LastCompletedWeekRange()
	return s.performance(ctx, domain.TargetPeriodLastWeek, week.Start, week.End, "Last week: "+week.Label())
}

// DailyPerformance defaults to yesterday when date is empty.
func (s *Service) DailyPerformance(ctx context.Context, date string) (*domain.TargetPerformance, error) {
	d, err := utils.ParseDate(date)
	if err != nil {
		return nil, NewTargetError(ErrInvalidDate, apiErrors.ErrInvalidFormat, fmt.Sprintf("%q, expected YYYY-MM-DD", date))
	}

	day := s.calendar.Yesterday()
	if d != nil {
		day = calendar.Day(*d)
	}

	return s.performance(ctx, domain.TargetPeriodDaily, day, day, day.Format("Mon 02 Jan 2006"))
}

func (s *Service) WeekPerformance(ctx context.Context, year, week string) (*domain.TargetPerformance, error) {
	r, ok := calendar.ParseWeekDateRange(year, week)
	if !ok {
		return nil, NewTargetError(ErrNoRange, apiErrors.ErrInvalidPeriod, fmt.Sprintf("year %q week %q", year, week))
	}

	return s.performance(ctx, domain.TargetPeriodWeek, r.Start, r.End, r.Label())
}

func (s *Service) performance(ctx context.Context, period domain.TargetPeriod, start, end time.Time, label string) (*domain.TargetPerformance, error) {
	var target, actual float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		target, err = s.targetRepository.SumBetween(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		actual, err = s.salesRepository.RevenueBetween(gctx, start, end, s.channelFilter)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"period": period,
			"start":  start.Format(time.DateOnly),
			"end":    end.Format(time.DateOnly),
			"error":  err.Error(),
		}).Error("targets: failed to load target performance")
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "loading target performance")
	}

	return domain.NewTargetPerformance(period, start, end, label, target, actual), nil
}
