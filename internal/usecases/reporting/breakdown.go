package reporting

import (
	"context"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// seasonalityYears is how many of the latest years seasonality compares by
// default.
const seasonalityYears = 3

// Core listings lead the seasonality table in this order; the rest follow
// alphabetically.
var preferredListings = []string{
	"Pattern Pants",
	"Patterned Pants",
	"Solid Pants",
	"Pattern Shorts",
	"Patterned Shorts",
	"Solid Shorts",
	"Patterned Polos",
	"Pattern Polos",
	"Solid Polos",
}

func normalizeYears(years []int) ([]int, error) {
	out := slices.Clone(years)
	slices.Sort(out)
	out = slices.Compact(out)
	for _, y := range out {
		if _, ok := calendar.WeekDateRange(y, 1); !ok {
			return nil, NewReportError(ErrInvalidYear, apiErrors.ErrInvalidPeriod, strconv.Itoa(y))
		}
	}
	return out, nil
}

// resolveYears validates the requested years, or picks defaults from the
// stored data when none are given.
func (s *Service) resolveYears(ctx context.Context, years []int, defaults func([]int) []int) ([]int, error) {
	if len(years) > 0 {
		return normalizeYears(years)
	}

	available, err := s.salesRepository.AvailableYears(ctx)
	if err != nil {
		logrus.WithError(err).Error("reporting: failed to list available years")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "listing years")
	}
	return defaults(available), nil
}

func latestYears(n int) func([]int) []int {
	return func(available []int) []int {
		years := slices.Clone(available)
		slices.Sort(years)
		if len(years) > n {
			years = years[len(years)-n:]
		}
		return years
	}
}

// YearOverYearTrend lines up weekly revenue of several years. Without years it
// compares the default comparison years.
func (s *Service) YearOverYearTrend(ctx context.Context, years []int) (*domain.YearOverYearTrend, error) {
	years, err := s.resolveYears(ctx, years, calendar.DefaultComparisonYears)
	if err != nil {
		return nil, err
	}

	trend := &domain.YearOverYearTrend{
		Years:  years,
		Series: make([]*domain.YearSeries, 0, len(years)),
	}
	if len(years) == 0 {
		return trend, nil
	}

	rows, err := s.salesRepository.WeeklyRevenueByYears(ctx, years)
	if err != nil {
		logrus.WithError(err).WithField("years", years).Error("reporting: failed to load weekly revenue by year")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "loading weekly revenue")
	}

	byYear := make(map[int]*domain.YearSeries, len(years))
	for _, y := range years {
		series := &domain.YearSeries{Year: y, Weeks: make([]*domain.WeeklyRevenue, 0)}
		byYear[y] = series
		trend.Series = append(trend.Series, series)
	}
	for _, row := range rows {
		series, ok := byYear[row.Year]
		if !ok {
			continue
		}
		series.Revenue += row.Revenue
		series.Units += row.Units
		series.Weeks = append(series.Weeks, &domain.WeeklyRevenue{
			Week:    row.Week,
			Revenue: utils.RoundWithTwoDecimalPlace(row.Revenue),
			Units:   row.Units,
		})
	}
	for _, series := range trend.Series {
		series.Revenue = utils.RoundWithTwoDecimalPlace(series.Revenue)
	}

	return trend, nil
}

func validateWeeks(weeks []int) error {
	for _, w := range weeks {
		if err := validateWeek(w); err != nil {
			return err
		}
	}
	return nil
}

// PriceRanges sums sales per applicable price range with each range's share of
// revenue. Without years it uses the default comparison years.
func (s *Service) PriceRanges(ctx context.Context, filter domain.SalesFilter) (*domain.PriceRangeReport, error) {
	if err := validateWeeks(filter.Weeks); err != nil {
		return nil, err
	}
	years, err := s.resolveYears(ctx, filter.Years, calendar.DefaultComparisonYears)
	if err != nil {
		return nil, err
	}
	filter.Years = years

	report := &domain.PriceRangeReport{
		Years:  years,
		Weeks:  filter.Weeks,
		Ranges: make([]*domain.PriceRangeSummary, 0),
	}
	if len(years) == 0 {
		return report, nil
	}

	totals, err := s.salesRepository.PriceRangeTotals(ctx, filter)
	if err != nil {
		logrus.WithError(err).WithField("years", years).Error("reporting: failed to load price range totals")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "loading price ranges")
	}

	var revenue float64
	for _, t := range totals {
		revenue += t.Revenue
	}

	for _, t := range totals {
		summary := &domain.PriceRangeSummary{
			Range:   t.Range,
			Revenue: utils.RoundWithTwoDecimalPlace(t.Revenue),
			Units:   t.Units,
			AOV:     utils.RoundWithTwoDecimalPlace(domain.AOV(t.Revenue, t.Units)),
		}
		if revenue != 0 {
			summary.SalesShare = utils.RoundWithTwoDecimalPlace(t.Revenue / revenue * 100)
		}
		report.Ranges = append(report.Ranges, summary)
	}
	report.Revenue = utils.RoundWithTwoDecimalPlace(revenue)

	return report, nil
}

// Seasonality compares units and revenue per listing across years, optionally
// limited to a season and a month-day window. Without years it uses the three
// latest years.
func (s *Service) Seasonality(ctx context.Context, filter domain.SalesFilter) (*domain.SeasonalityReport, error) {
	years, err := s.resolveYears(ctx, filter.Years, latestYears(seasonalityYears))
	if err != nil {
		return nil, err
	}
	filter.Years = years

	from, to := filter.From, filter.To
	if from == 0 {
		from = domain.FirstMonthDay
	}
	if to == 0 {
		to = domain.LastMonthDay
	}

	report := &domain.SeasonalityReport{
		Years:    years,
		Season:   filter.Season,
		From:     from.String(),
		To:       to.String(),
		Listings: make([]*domain.ListingSeasonality, 0),
	}
	if len(years) == 0 {
		return report, nil
	}

	totals, err := s.salesRepository.ListingYearTotals(ctx, filter)
	if err != nil {
		logrus.WithError(err).WithField("years", years).Error("reporting: failed to load listing totals")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "loading seasonality")
	}

	byListing := make(map[string]*domain.ListingSeasonality)
	for _, t := range totals {
		listing, ok := byListing[t.Listing]
		if !ok {
			listing = &domain.ListingSeasonality{Listing: t.Listing, Years: make([]*domain.ListingYear, 0, len(years))}
			byListing[t.Listing] = listing
			report.Listings = append(report.Listings, listing)
		}
		listing.Years = append(listing.Years, &domain.ListingYear{
			Year:     t.Year,
			Units:    t.Units,
			Revenue:  utils.RoundWithTwoDecimalPlace(t.Revenue),
			AvgPrice: utils.RoundWithTwoDecimalPlace(domain.AOV(t.Revenue, t.Units)),
		})
	}

	slices.SortStableFunc(report.Listings, func(a, b *domain.ListingSeasonality) int {
		return listingRank(a.Listing) - listingRank(b.Listing)
	})

	return report, nil
}

// listingRank places preferred listings first; all others tie and keep their
// alphabetical order.
func listingRank(listing string) int {
	if i := slices.Index(preferredListings, listing); i >= 0 {
		return i
	}
	return len(preferredListings)
}
