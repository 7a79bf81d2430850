package reporting

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type Reporter interface {
	Periods(ctx context.Context) (*domain.AvailablePeriods, error)
	WeekKPIs(ctx context.Context, week int) (*domain.WeekKPIReport, error)
	YearToDate(ctx context.Context, week int) (*domain.YTDComparison, error)
	WeeklyTrend(ctx context.Context, year, selectedWeek int) (*domain.WeeklyTrend, error)
	WeekRange(year, week string) *domain.WeekLookup
	DateWeek(date string) (*domain.Week, error)
	CurrentWeek(year int) (*domain.Week, error)
	YearOverYearTrend(ctx context.Context, years []int) (*domain.YearOverYearTrend, error)
	PriceRanges(ctx context.Context, filter domain.SalesFilter) (*domain.PriceRangeReport, error)
	Seasonality(ctx context.Context, filter domain.SalesFilter) (*domain.SeasonalityReport, error)
}

type Service struct {
	salesRepository repository.SalesRecordRepository
	calendar        *calendar.Calendar
}

func NewService(salesRepository repository.SalesRecordRepository, cal *calendar.Calendar) Reporter {
	return &Service{
		salesRepository: salesRepository,
		calendar:        cal,
	}
}

// Periods describes what the stored data covers. The default week is the
// current week when it already has sales, otherwise the last completed week.
func (s *Service) Periods(ctx context.Context) (*domain.AvailablePeriods, error) {
	years, err := s.salesRepository.AvailableYears(ctx)
	if err != nil {
		logrus.WithError(err).Error("reporting: failed to list available years")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "listing years")
	}

	currentYear := s.calendar.CurrentYear()
	if len(years) > 0 {
		currentYear = years[len(years)-1]
	}

	weeks, err := s.salesRepository.AvailableWeeks(ctx, currentYear)
	if err != nil {
		logrus.WithError(err).WithField("year", currentYear).Error("reporting: failed to list available weeks")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "listing weeks")
	}

	currentWeek := s.calendar.CurrentWeekNumber(currentYear)
	defaultWeek := s.calendar.LastCompletedWeek(weeks, currentYear)
	for _, w := range weeks {
		if w == currentWeek {
			defaultWeek = currentWeek
			break
		}
	}

	periods := &domain.AvailablePeriods{
		Years:           years,
		ComparisonYears: calendar.DefaultComparisonYears(years),
		CurrentYear:     currentYear,
		Weeks:           weeks,
		CurrentWeek:     currentWeek,
		DefaultWeek:     defaultWeek,
	}
	if r, ok := calendar.WeekDateRange(currentYear, defaultWeek); ok {
		periods.DefaultWeekRange = domain.NewWeek(r)
	}

	earliest, latest, err := s.salesRepository.DateBounds(ctx)
	if err != nil {
		logrus.WithError(err).Error("reporting: failed to read sales date bounds")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "reading date bounds")
	}
	if earliest != nil {
		periods.EarliestRecordDate = domain.NewDay(*earliest)
	}
	if latest != nil {
		periods.LatestRecordDate = domain.NewDay(*latest)
	}

	return periods, nil
}

func validateWeek(week int) error {
	if week < 1 || week > calendar.MaxWeekNumber {
		return NewReportError(ErrInvalidWeek, apiErrors.ErrInvalidPeriod, strconv.Itoa(week))
	}
	return nil
}

// WeekKPIs compares the same custom week across every year with data. Each
// year's change is relative to the year before it in the list.
func (s *Service) WeekKPIs(ctx context.Context, week int) (*domain.WeekKPIReport, error) {
	if err := validateWeek(week); err != nil {
		return nil, err
	}

	totals, err := s.salesRepository.TotalsByYearForWeek(ctx, week)
	if err != nil {
		logrus.WithError(err).WithField("week", week).Error("reporting: failed to load week totals")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "loading week totals")
	}

	report := &domain.WeekKPIReport{
		Week:  week,
		Years: make([]*domain.WeekKPI, 0, len(totals)),
	}

	var prev *domain.YearTotals
	for _, t := range totals {
		aov := domain.AOV(t.Revenue, t.Units)
		kpi := &domain.WeekKPI{
			Year:    t.Year,
			Revenue: utils.RoundWithTwoDecimalPlace(t.Revenue),
			Units:   t.Units,
			AOV:     utils.RoundWithTwoDecimalPlace(aov),
		}
		if r, ok := calendar.WeekDateRange(t.Year, week); ok {
			kpi.Week = domain.NewWeek(r)
		}
		if prev != nil {
			kpi.RevenueChange = domain.PercentChange(t.Revenue, prev.Revenue)
			kpi.UnitsChange = domain.PercentChange(float64(t.Units), float64(prev.Units))
			kpi.AOVChange = domain.PercentChange(aov, domain.AOV(prev.Revenue, prev.Units))
		}
		report.Years = append(report.Years, kpi)
		prev = t
	}

	return report, nil
}

// YearToDate sums revenue from week 1 through week for every year.
func (s *Service) YearToDate(ctx context.Context, week int) (*domain.YTDComparison, error) {
	if err := validateWeek(week); err != nil {
		return nil, err
	}

	totals, err := s.salesRepository.YTDRevenueByYear(ctx, week)
	if err != nil {
		logrus.WithError(err).WithField("week", week).Error("reporting: failed to load year to date revenue")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "loading year to date revenue")
	}

	comparison := &domain.YTDComparison{
		ThroughWeek: week,
		Years:       make([]*domain.YTDRevenue, 0, len(totals)),
	}
	for i, t := range totals {
		ytd := &domain.YTDRevenue{
			Year:    t.Year,
			Revenue: utils.RoundWithTwoDecimalPlace(t.Revenue),
		}
		if i > 0 {
			ytd.RevenueChange = domain.PercentChange(t.Revenue, totals[i-1].Revenue)
		}
		comparison.Years = append(comparison.Years, ytd)
	}

	return comparison, nil
}

// WeeklyTrend lists revenue per week of year. A zero selectedWeek selects the
// last completed week with data.
func (s *Service) WeeklyTrend(ctx context.Context, year, selectedWeek int) (*domain.WeeklyTrend, error) {
	if _, ok := calendar.WeekDateRange(year, 1); !ok {
		return nil, NewReportError(ErrInvalidYear, apiErrors.ErrInvalidPeriod, strconv.Itoa(year))
	}
	if selectedWeek != 0 {
		if err := validateWeek(selectedWeek); err != nil {
			return nil, err
		}
	}

	weeks, err := s.salesRepository.WeeklyRevenue(ctx, year)
	if err != nil {
		logrus.WithError(err).WithField("year", year).Error("reporting: failed to load weekly revenue")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "loading weekly revenue")
	}

	if selectedWeek == 0 {
		available := make([]int, 0, len(weeks))
		for _, w := range weeks {
			available = append(available, w.Week)
		}
		selectedWeek = s.calendar.LastCompletedWeek(available, year)
	}

	for _, w := range weeks {
		w.Revenue = utils.RoundWithTwoDecimalPlace(w.Revenue)
		w.Selected = w.Week == selectedWeek
	}

	return &domain.WeeklyTrend{
		Year:         year,
		SelectedWeek: selectedWeek,
		Weeks:        weeks,
	}, nil
}

// WeekRange never fails: values without a date range come back unavailable.
func (s *Service) WeekRange(year, week string) *domain.WeekLookup {
	r, ok := calendar.ParseWeekDateRange(year, week)
	if !ok {
		return &domain.WeekLookup{Available: false}
	}
	return &domain.WeekLookup{Available: true, Week: domain.NewWeek(r)}
}

// DateWeek returns the custom week containing date, today when date is empty.
func (s *Service) DateWeek(date string) (*domain.Week, error) {
	d, err := utils.ParseDate(date)
	if err != nil {
		return nil, NewReportError(ErrInvalidDate, apiErrors.ErrInvalidFormat, fmt.Sprintf("%q, expected YYYY-MM-DD", date))
	}

	day := s.calendar.Today()
	if d != nil {
		day = *d
	}

	return domain.NewWeek(calendar.WeekOf(day)), nil
}

// CurrentWeek returns the week of year that today falls in, clamped to the
// year's weeks. A zero year means the current custom year.
func (s *Service) CurrentWeek(year int) (*domain.Week, error) {
	if year == 0 {
		year = s.calendar.CurrentYear()
	}

	if _, ok := calendar.WeekDateRange(year, 1); !ok {
		return nil, NewReportError(ErrInvalidYear, apiErrors.ErrInvalidPeriod, strconv.Itoa(year))
	}

	week := min(s.calendar.CurrentWeekNumber(year), calendar.WeeksInYear(year))
	r, ok := calendar.WeekDateRange(year, week)
	if !ok {
		return nil, NewReportError(ErrInvalidYear, apiErrors.ErrInvalidPeriod, strconv.Itoa(year))
	}

	return domain.NewWeek(r), nil
}
