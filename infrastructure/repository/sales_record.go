package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesRecordsTable = "sales_records"
	insertBatchSize   = 500
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type SalesRecordRepository interface {
	ReplaceSheet(ctx context.Context, sheet string, records []*domain.SalesRecord) (int, error)
	AvailableYears(ctx context.Context) ([]int, error)
	AvailableWeeks(ctx context.Context, year int) ([]int, error)
	TotalsByYearForWeek(ctx context.Context, week int) ([]*domain.YearTotals, error)
	YTDRevenueByYear(ctx context.Context, throughWeek int) ([]*domain.YearTotals, error)
	WeeklyRevenue(ctx context.Context, year int) ([]*domain.WeeklyRevenue, error)
	RevenueBetween(ctx context.Context, start, end time.Time, channelFilter string) (float64, error)
	DateBounds(ctx context.Context) (earliest, latest *time.Time, err error)
	WeeklyRevenueByYears(ctx context.Context, years []int) ([]*domain.YearWeekRevenue, error)
	PriceRangeTotals(ctx context.Context, filter domain.SalesFilter) ([]*domain.PriceRangeTotals, error)
	ListingYearTotals(ctx context.Context, filter domain.SalesFilter) ([]*domain.ListingYearTotals, error)
}

type salesRecordRepository struct {
	conn postgres.Conn
}

func NewSalesRecordRepository(conn postgres.Conn) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// ReplaceSheet swaps every stored row of a worksheet for records in one
// transaction.
func (r *salesRecordRepository) ReplaceSheet(ctx context.Context, sheet string, records []*domain.SalesRecord) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Delete(salesRecordsTable).
			Where(squirrel.Eq{"source_sheet": sheet}).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building delete query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("error deleting sheet rows: %w", err)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			query, args, err := salesInsertQuery(sheet, records[start:end]).ToSql()
			if err != nil {
				return fmt.Errorf("error building insert query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("error inserting sales rows: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

func salesInsertQuery(sheet string, records []*domain.SalesRecord) squirrel.InsertBuilder {
	q := psql.Insert(salesRecordsTable).
		Columns("source_sheet", "sale_date", "sales_value", "quantity", "channel", "sku", "listing", "product",
			"season", "price_range_uk", "price_range_us", "custom_year", "custom_week")
	for _, rec := range records {
		q = q.Values(
			sheet,
			rec.Date.Format(time.DateOnly),
			rec.SalesValue,
			rec.Quantity,
			rec.Channel,
			rec.SKU,
			rec.Listing,
			rec.Product,
			rec.Season,
			rec.PriceRangeUK,
			rec.PriceRangeUS,
			rec.CustomYear,
			rec.CustomWeek,
		)
	}
	return q
}

func (r *salesRecordRepository) AvailableYears(ctx context.Context) ([]int, error) {
	query, args, err := psql.Select("DISTINCT custom_year").
		From(salesRecordsTable).
		OrderBy("custom_year ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryInts(ctx, query, args...)
}

func (r *salesRecordRepository) AvailableWeeks(ctx context.Context, year int) ([]int, error) {
	query, args, err := psql.Select("DISTINCT custom_week").
		From(salesRecordsTable).
		Where(squirrel.Eq{"custom_year": year}).
		OrderBy("custom_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryInts(ctx, query, args...)
}

func (r *salesRecordRepository) queryInts(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	values := make([]int, 0)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return values, nil
}

func yearTotalsQuery(where squirrel.Sqlizer) squirrel.SelectBuilder {
	return psql.Select("custom_year", "COALESCE(SUM(sales_value), 0)", "COALESCE(SUM(quantity), 0)").
		From(salesRecordsTable).
		Where(where).
		GroupBy("custom_year").
		OrderBy("custom_year ASC")
}

func (r *salesRecordRepository) TotalsByYearForWeek(ctx context.Context, week int) ([]*domain.YearTotals, error) {
	return r.queryYearTotals(ctx, yearTotalsQuery(squirrel.Eq{"custom_week": week}))
}

func (r *salesRecordRepository) YTDRevenueByYear(ctx context.Context, throughWeek int) ([]*domain.YearTotals, error) {
	return r.queryYearTotals(ctx, yearTotalsQuery(squirrel.And{
		squirrel.GtOrEq{"custom_week": 1},
		squirrel.LtOrEq{"custom_week": throughWeek},
	}))
}

func (r *salesRecordRepository) queryYearTotals(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.YearTotals, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.YearTotals, 0)
	for rows.Next() {
		t := &domain.YearTotals{}
		if err := rows.Scan(&t.Year, &t.Revenue, &t.Units); err != nil {
			return nil, fmt.Errorf("error scanning year totals: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

func (r *salesRecordRepository) WeeklyRevenue(ctx context.Context, year int) ([]*domain.WeeklyRevenue, error) {
	query, args, err := psql.Select("custom_week", "COALESCE(SUM(sales_value), 0)", "COALESCE(SUM(quantity), 0)").
		From(salesRecordsTable).
		Where(squirrel.Eq{"custom_year": year}).
		GroupBy("custom_week").
		OrderBy("custom_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	weeks := make([]*domain.WeeklyRevenue, 0)
	for rows.Next() {
		w := &domain.WeeklyRevenue{}
		if err := rows.Scan(&w.Week, &w.Revenue, &w.Units); err != nil {
			return nil, fmt.Errorf("error scanning weekly revenue: %w", err)
		}
		weeks = append(weeks, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return weeks, nil
}

func revenueBetweenQuery(start, end time.Time, channelFilter string) squirrel.SelectBuilder {
	q := psql.Select("COALESCE(SUM(sales_value), 0)").
		From(salesRecordsTable).
		Where(squirrel.GtOrEq{"sale_date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sale_date": end.Format(time.DateOnly)})
	if channelFilter != "" {
		q = q.Where(squirrel.ILike{"channel": "%" + channelFilter + "%"})
	}
	return q
}

// RevenueBetween sums revenue over an inclusive date range. A non-empty
// channelFilter keeps channels that contain it, ignoring case.
func (r *salesRecordRepository) RevenueBetween(ctx context.Context, start, end time.Time, channelFilter string) (float64, error) {
	query, args, err := revenueBetweenQuery(start, end, channelFilter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing revenue: %w", err)
	}

	return total, nil
}

func (r *salesRecordRepository) DateBounds(ctx context.Context) (*time.Time, *time.Time, error) {
	query, args, err := psql.Select("MIN(sale_date)", "MAX(sale_date)").
		From(salesRecordsTable).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("error building query: %w", err)
	}

	var earliest, latest sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&earliest, &latest); err != nil {
		return nil, nil, fmt.Errorf("error reading date bounds: %w", err)
	}

	return nullTimePtr(earliest), nullTimePtr(latest), nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func yearWeekRevenueQuery(years []int) squirrel.SelectBuilder {
	return psql.Select("custom_year", "custom_week", "COALESCE(SUM(sales_value), 0)", "COALESCE(SUM(quantity), 0)").
		From(salesRecordsTable).
		Where(squirrel.Eq{"custom_year": years}).
		GroupBy("custom_year", "custom_week").
		OrderBy("custom_year ASC", "custom_week ASC")
}

// WeeklyRevenueByYears returns one row per year and week that has sales.
func (r *salesRecordRepository) WeeklyRevenueByYears(ctx context.Context, years []int) ([]*domain.YearWeekRevenue, error) {
	query, args, err := yearWeekRevenueQuery(years).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	weeks := make([]*domain.YearWeekRevenue, 0)
	for rows.Next() {
		w := &domain.YearWeekRevenue{}
		if err := rows.Scan(&w.Year, &w.Week, &w.Revenue, &w.Units); err != nil {
			return nil, fmt.Errorf("error scanning weekly revenue: %w", err)
		}
		weeks = append(weeks, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return weeks, nil
}

const monthDayExpr = "(EXTRACT(MONTH FROM sale_date) * 100 + EXTRACT(DAY FROM sale_date))"

func dayWindow(from, to domain.MonthDay) squirrel.Sqlizer {
	if from == 0 {
		from = domain.FirstMonthDay
	}
	if to == 0 {
		to = domain.LastMonthDay
	}
	if from <= to {
		return squirrel.Expr(monthDayExpr+" BETWEEN ? AND ?", int(from), int(to))
	}
	return squirrel.Or{
		squirrel.Expr(monthDayExpr+" >= ?", int(from)),
		squirrel.Expr(monthDayExpr+" <= ?", int(to)),
	}
}

func applySalesFilter(q squirrel.SelectBuilder, f domain.SalesFilter) squirrel.SelectBuilder {
	if len(f.Years) > 0 {
		q = q.Where(squirrel.Eq{"custom_year": f.Years})
	}
	if len(f.Weeks) > 0 {
		q = q.Where(squirrel.Eq{"custom_week": f.Weeks})
	}
	if len(f.Channels) > 0 {
		q = q.Where(squirrel.Eq{"channel": f.Channels})
	}
	if len(f.Listings) > 0 {
		q = q.Where(squirrel.Eq{"listing": f.Listings})
	}
	if f.Season != "" && !strings.EqualFold(f.Season, domain.SeasonAll) {
		q = q.Where(squirrel.Eq{"season": f.Season})
	}
	if f.HasDayWindow() {
		q = q.Where(dayWindow(f.From, f.To))
	}
	return q
}

func channelContainsAny(keywords ...string) squirrel.Or {
	or := make(squirrel.Or, 0, len(keywords))
	for _, k := range keywords {
		or = append(or, squirrel.ILike{"channel": "%" + k + "%"})
	}
	return or
}

// UK channels are priced by the UK range column and US channels by the US
// one. Every other channel, or a blank range, is unassigned.
var applicablePriceRange = squirrel.Case().
	When(channelContainsAny("website uk", "amazon uk"),
		squirrel.Expr("COALESCE(NULLIF(price_range_uk, ''), ?)", domain.UnassignedPriceRange)).
	When(channelContainsAny("website us", "amazon us"),
		squirrel.Expr("COALESCE(NULLIF(price_range_us, ''), ?)", domain.UnassignedPriceRange)).
	Else(squirrel.Expr("?", domain.UnassignedPriceRange))

func priceRangeQuery(f domain.SalesFilter) squirrel.SelectBuilder {
	q := psql.Select().
		Column(squirrel.Alias(applicablePriceRange, "applicable_range")).
		Columns("COALESCE(SUM(sales_value), 0)", "COALESCE(SUM(quantity), 0)").
		From(salesRecordsTable)
	return applySalesFilter(q, f).
		GroupBy("applicable_range").
		OrderBy("applicable_range ASC")
}

func (r *salesRecordRepository) PriceRangeTotals(ctx context.Context, filter domain.SalesFilter) ([]*domain.PriceRangeTotals, error) {
	query, args, err := priceRangeQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.PriceRangeTotals, 0)
	for rows.Next() {
		t := &domain.PriceRangeTotals{}
		if err := rows.Scan(&t.Range, &t.Revenue, &t.Units); err != nil {
			return nil, fmt.Errorf("error scanning price range totals: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

func listingYearQuery(f domain.SalesFilter) squirrel.SelectBuilder {
	q := psql.Select("listing", "custom_year", "COALESCE(SUM(sales_value), 0)", "COALESCE(SUM(quantity), 0)").
		From(salesRecordsTable).
		Where(squirrel.NotEq{"listing": ""})
	return applySalesFilter(q, f).
		GroupBy("listing", "custom_year").
		OrderBy("listing ASC", "custom_year ASC")
}

// ListingYearTotals aggregates units and revenue per listing and custom year.
// Rows without a listing are left out.
func (r *salesRecordRepository) ListingYearTotals(ctx context.Context, filter domain.SalesFilter) ([]*domain.ListingYearTotals, error) {
	query, args, err := listingYearQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.ListingYearTotals, 0)
	for rows.Next() {
		t := &domain.ListingYearTotals{}
		if err := rows.Scan(&t.Listing, &t.Year, &t.Revenue, &t.Units); err != nil {
			return nil, fmt.Errorf("error scanning listing totals: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}
