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

const salesTargetsTable = "sales_targets"

type TargetRepository interface {
	ReplaceAll(ctx context.Context, targets []*domain.TargetRecord) (int, error)
	SumBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type targetRepository struct {
	conn postgres.Conn
}

func NewTargetRepository(conn postgres.Conn) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

// ReplaceAll replaces the whole target table. Duplicate dates keep the first
// row of the worksheet.
func (r *targetRepository) ReplaceAll(ctx context.Context, targets []*domain.TargetRecord) (int, error) {
	unique := firstPerDay(targets)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+salesTargetsTable); err != nil {
			return fmt.Errorf("error clearing targets: %w", err)
		}

		for start := 0; start < len(unique); start += insertBatchSize {
			end := min(start+insertBatchSize, len(unique))

			q := psql.Insert(salesTargetsTable).Columns("target_date", "daily_target")
			for _, t := range unique[start:end] {
				q = q.Values(t.Date.Format(time.DateOnly), t.DailyTarget)
			}

			query, args, err := q.ToSql()
			if err != nil {
				return fmt.Errorf("error building insert query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("error inserting targets: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(unique), nil
}

func firstPerDay(targets []*domain.TargetRecord) []*domain.TargetRecord {
	seen := make(map[string]struct{}, len(targets))
	unique := make([]*domain.TargetRecord, 0, len(targets))
	for _, t := range targets {
		key := t.Date.Format(time.DateOnly)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, t)
	}
	return unique
}

func (r *targetRepository) SumBetween(ctx context.Context, start, end time.Time) (float64, error) {
	query, args, err := psql.Select("COALESCE(SUM(daily_target), 0)").
		From(salesTargetsTable).
		Where(squirrel.GtOrEq{"target_date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"target_date": end.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing targets: %w", err)
	}

	return total, nil
}
