package advertising

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const windowDays = 7

type Advertiser interface {
	Summary(ctx context.Context, filters domain.PPCFilters) (*domain.PPCSummary, error)
}

type Service struct {
	ppcRepository repository.PPCRepository
	defaultDays   int
}

func NewService(ppcRepository repository.PPCRepository, defaultDays int) Advertiser {
	if defaultDays < 1 {
		defaultDays = 30
	}
	return &Service{
		ppcRepository: ppcRepository,
		defaultDays:   defaultDays,
	}
}

// Summary aggregates PPC metrics for a country, or every country with "All".
// Without explicit dates it covers the last defaultDays days that have data.
// The week-over-week block compares the 7 days ending on the last day in the
// range with the 7 days before them.
func (s *Service) Summary(ctx context.Context, filters domain.PPCFilters) (*domain.PPCSummary, error) {
	country := filters.Country
	if country == "" {
		country = domain.PPCAllCountries
	}
	logger := logrus.WithField("country", country)

	earliest, latest, err := s.ppcRepository.DateBounds(ctx, country)
	if err != nil {
		logger.WithError(err).Error("ppc: failed to read date bounds")
		return nil, NewPPCError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, country, "reading date bounds")
	}
	if latest == nil {
		return nil, NewPPCError(ErrNoData, apiErrors.ErrNoData, country, "")
	}

	start, end := s.defaultRange(*earliest, *latest)
	if filters.StartDate != nil {
		start = calendar.Day(*filters.StartDate)
	}
	if filters.EndDate != nil {
		end = calendar.Day(*filters.EndDate)
	}
	if start.After(end) {
		return nil, NewPPCError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, country, start.Format(time.DateOnly)+" > "+end.Format(time.DateOnly))
	}

	records, err := s.ppcRepository.ListBetween(ctx, country, start, end)
	if err != nil {
		logger.WithError(err).Error("ppc: failed to list records")
		return nil, NewPPCError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, country, "listing records")
	}
	if len(records) == 0 {
		return nil, NewPPCError(ErrNoData, apiErrors.ErrNoData, country, start.Format(time.DateOnly)+" to "+end.Format(time.DateOnly))
	}

	summary := &domain.PPCSummary{
		Country:   country,
		StartDate: *domain.NewDay(start),
		EndDate:   *domain.NewDay(end),
		Totals:    totalize(records),
		Weeks:     weeklyTotals(records),
	}

	last := lastDate(records)
	window, err := s.ppcRepository.ListBetween(ctx, country, last.AddDate(0, 0, -(2*windowDays-1)), last)
	if err != nil {
		logger.WithError(err).Error("ppc: failed to list week over week records")
		return nil, NewPPCError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, country, "listing week over week records")
	}
	summary.WeekOverWeek = weekOverWeek(window, last)

	return summary, nil
}

func (s *Service) defaultRange(earliest, latest time.Time) (time.Time, time.Time) {
	end := calendar.Day(latest)
	start := end.AddDate(0, 0, -(s.defaultDays - 1))
	if first := calendar.Day(earliest); start.Before(first) {
		start = first
	}
	return start, end
}

func totalize(records []*domain.PPCRecord) *domain.PPCTotals {
	totals := &domain.PPCTotals{}
	days := map[time.Time]struct{}{}
	for _, r := range records {
		totals.Add(r)
		days[calendar.Day(r.Date)] = struct{}{}
	}
	totals.Days = len(days)
	totals.Finalize()
	return totals
}

func lastDate(records []*domain.PPCRecord) time.Time {
	var last time.Time
	for _, r := range records {
		if d := calendar.Day(r.Date); d.After(last) {
			last = d
		}
	}
	return last
}

func weeklyTotals(records []*domain.PPCRecord) []*domain.PPCWeekTotals {
	type key struct{ year, week int }
	groups := map[key][]*domain.PPCRecord{}
	for _, r := range records {
		year, week := calendar.DateToCustomWeek(r.Date)
		k := key{year, week}
		groups[k] = append(groups[k], r)
	}

	weeks := make([]*domain.PPCWeekTotals, 0, len(groups))
	for k, recs := range groups {
		weeks = append(weeks, &domain.PPCWeekTotals{
			Year:   k.year,
			Week:   k.week,
			Totals: totalize(recs),
		})
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year < weeks[j].Year
		}
		return weeks[i].Week < weeks[j].Week
	})

	return weeks
}

func weekOverWeek(records []*domain.PPCRecord, last time.Time) *domain.PPCWeekOverWeek {
	currentStart := last.AddDate(0, 0, -(windowDays - 1))
	previousEnd := currentStart.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -(windowDays - 1))

	var current, previous []*domain.PPCRecord
	for _, r := range records {
		d := calendar.Day(r.Date)
		switch {
		case !d.Before(currentStart) && !d.After(last):
			current = append(current, r)
		case !d.Before(previousStart) && !d.After(previousEnd):
			previous = append(previous, r)
		}
	}

	cur := newWindow(current, currentStart, last)
	prev := newWindow(previous, previousStart, previousEnd)

	return &domain.PPCWeekOverWeek{
		Current:           cur,
		Previous:          prev,
		AdSpendChange:     domain.PercentChange(cur.Totals.AdSpend, prev.Totals.AdSpend),
		AdSalesChange:     domain.PercentChange(cur.Totals.AdSales, prev.Totals.AdSales),
		TotalSalesChange:  domain.PercentChange(cur.Totals.TotalSales, prev.Totals.TotalSales),
		ClicksChange:      domain.PercentChange(float64(cur.Totals.Clicks), float64(prev.Totals.Clicks)),
		ImpressionsChange: domain.PercentChange(float64(cur.Totals.Impressions), float64(prev.Totals.Impressions)),
		ACOSChange:        pointChange(cur.AvgACOS, prev.AvgACOS),
		TACOSChange:       pointChange(cur.AvgTACOS, prev.AvgTACOS),
	}
}

func newWindow(records []*domain.PPCRecord, start, end time.Time) *domain.PPCWindow {
	var acos, tacos []float64
	for _, r := range records {
		if r.ACOS != nil {
			acos = append(acos, *r.ACOS)
		}
		if r.TACOS != nil {
			tacos = append(tacos, *r.TACOS)
		}
	}

	return &domain.PPCWindow{
		StartDate: *domain.NewDay(start),
		EndDate:   *domain.NewDay(end),
		Totals:    totalize(records),
		AvgACOS:   mean(acos),
		AvgTACOS:  mean(tacos),
	}
}

// mean is nil for an empty sample.
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(sum / float64(len(values))))
}

// pointChange is the difference in percentage points.
func pointChange(current, previous *float64) *float64 {
	if current == nil || previous == nil {
		return nil
	}
	return utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(*current - *previous))
}
