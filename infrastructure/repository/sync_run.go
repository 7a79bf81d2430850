package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const syncRunsTable = "sync_runs"

type SyncRunRepository interface {
	Start(ctx context.Context, run *domain.SyncRun) error
	Finish(ctx context.Context, run *domain.SyncRun) error
	Latest(ctx context.Context) (*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn postgres.Conn
}

func NewSyncRunRepository(conn postgres.Conn) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) Start(ctx context.Context, run *domain.SyncRun) error {
	query, args, err := psql.Insert(syncRunsTable).
		Columns("id", "trigger", "status", "started_at").
		Values(run.ID, run.Trigger, run.Status, run.StartedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error inserting sync run: %w", err)
	}

	return nil
}

func (r *syncRunRepository) Finish(ctx context.Context, run *domain.SyncRun) error {
	query, args, err := psql.Update(syncRunsTable).
		Set("status", run.Status).
		Set("sales_rows", run.SalesRows).
		Set("target_rows", run.TargetRows).
		Set("ppc_rows", run.PPCRows).
		Set("errors", pq.Array(run.Errors)).
		Set("completed_at", run.CompletedAt).
		Where(squirrel.Eq{"id": run.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error updating sync run: %w", err)
	}

	return nil
}

func (r *syncRunRepository) Latest(ctx context.Context) (*domain.SyncRun, error) {
	query, args, err := psql.Select("id", "trigger", "status", "sales_rows", "target_rows", "ppc_rows", "errors", "started_at", "completed_at").
		From(syncRunsTable).
		OrderBy("started_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	run := &domain.SyncRun{}
	var completedAt sql.NullTime
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&run.ID,
		&run.Trigger,
		&run.Status,
		&run.SalesRows,
		&run.TargetRows,
		&run.PPCRows,
		pq.Array(&run.Errors),
		&run.StartedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning sync run: %w", err)
	}
	run.CompletedAt = nullTimePtr(completedAt)

	return run, nil
}
