package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const ppcMetricsTable = "ppc_metrics"

var ppcColumns = []string{
	"country", "metric_date", "sessions", "page_views", "impressions", "clicks",
	"ad_orders", "ad_units", "ad_spend", "ad_sales", "total_sales", "total_units", "acos", "tacos",
}

type PPCRepository interface {
	ReplaceCountry(ctx context.Context, country string, records []*domain.PPCRecord) (int, error)
	ListBetween(ctx context.Context, country string, start, end time.Time) ([]*domain.PPCRecord, error)
	DateBounds(ctx context.Context, country string) (earliest, latest *time.Time, err error)
}

type ppcRepository struct {
	conn postgres.Conn
}

func NewPPCRepository(conn postgres.Conn) PPCRepository {
	return &ppcRepository{
		conn: conn,
	}
}

// ReplaceCountry swaps the stored rows of one country. Worksheets occasionally
// repeat a day; the last row wins.
func (r *ppcRepository) ReplaceCountry(ctx context.Context, country string, records []*domain.PPCRecord) (int, error) {
	records = lastPerDay(records)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Delete(ppcMetricsTable).
			Where(squirrel.Eq{"country": country}).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building delete query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("error deleting ppc rows: %w", err)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			query, args, err := ppcInsertQuery(country, records[start:end]).ToSql()
			if err != nil {
				return fmt.Errorf("error building insert query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("error inserting ppc rows: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

func lastPerDay(records []*domain.PPCRecord) []*domain.PPCRecord {
	index := make(map[string]int, len(records))
	out := make([]*domain.PPCRecord, 0, len(records))
	for _, rec := range records {
		key := rec.Date.Format(time.DateOnly)
		if i, ok := index[key]; ok {
			out[i] = rec
			continue
		}
		index[key] = len(out)
		out = append(out, rec)
	}
	return out
}

func ppcInsertQuery(country string, records []*domain.PPCRecord) squirrel.InsertBuilder {
	q := psql.Insert(ppcMetricsTable).Columns(ppcColumns...)
	for _, rec := range records {
		q = q.Values(
			country,
			rec.Date.Format(time.DateOnly),
			rec.Sessions,
			rec.PageViews,
			rec.Impressions,
			rec.Clicks,
			rec.AdOrders,
			rec.AdUnits,
			rec.AdSpend,
			rec.AdSales,
			rec.TotalSales,
			rec.TotalUnits,
			rec.ACOS,
			rec.TACOS,
		)
	}
	return q
}

func countryFilter(country string) squirrel.Sqlizer {
	if country == "" || country == domain.PPCAllCountries {
		return squirrel.Expr("TRUE")
	}
	return squirrel.Eq{"country": country}
}

func (r *ppcRepository) ListBetween(ctx context.Context, country string, start, end time.Time) ([]*domain.PPCRecord, error) {
	query, args, err := psql.Select(ppcColumns...).
		From(ppcMetricsTable).
		Where(countryFilter(country)).
		Where(squirrel.GtOrEq{"metric_date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"metric_date": end.Format(time.DateOnly)}).
		OrderBy("metric_date ASC", "country ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.PPCRecord, 0)
	for rows.Next() {
		rec := &domain.PPCRecord{}
		var acos, tacos sql.NullFloat64
		err := rows.Scan(
			&rec.Country,
			&rec.Date,
			&rec.Sessions,
			&rec.PageViews,
			&rec.Impressions,
			&rec.Clicks,
			&rec.AdOrders,
			&rec.AdUnits,
			&rec.AdSpend,
			&rec.AdSales,
			&rec.TotalSales,
			&rec.TotalUnits,
			&acos,
			&tacos,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning ppc row: %w", err)
		}
		if acos.Valid {
			rec.ACOS = &acos.Float64
		}
		if tacos.Valid {
			rec.TACOS = &tacos.Float64
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

func (r *ppcRepository) DateBounds(ctx context.Context, country string) (*time.Time, *time.Time, error) {
	query, args, err := psql.Select("MIN(metric_date)", "MAX(metric_date)").
		From(ppcMetricsTable).
		Where(countryFilter(country)).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("error building query: %w", err)
	}

	var earliest, latest sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&earliest, &latest); err != nil {
		return nil, nil, fmt.Errorf("error reading ppc date bounds: %w", err)
	}

	return nullTimePtr(earliest), nullTimePtr(latest), nil
}
