// Package migration creates and upgrades the reporting schema.
package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
)

type step struct {
	version int
	name    string
	sql     string
}

var steps = []step{
	{
		version: 1,
		name:    "sales_records",
		sql: `
CREATE TABLE IF NOT EXISTS sales_records (
	id           BIGSERIAL PRIMARY KEY,
	source_sheet TEXT           NOT NULL,
	sale_date    DATE           NOT NULL,
	sales_value  NUMERIC(14, 2) NOT NULL DEFAULT 0,
	quantity     INTEGER        NOT NULL DEFAULT 0,
	channel      TEXT           NOT NULL DEFAULT '',
	sku          TEXT           NOT NULL DEFAULT '',
	listing      TEXT           NOT NULL DEFAULT '',
	product      TEXT           NOT NULL DEFAULT '',
	custom_year  INTEGER        NOT NULL,
	custom_week  INTEGER        NOT NULL,
	created_at   TIMESTAMPTZ    NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_sales_records_custom_week ON sales_records (custom_year, custom_week);
CREATE INDEX IF NOT EXISTS idx_sales_records_sale_date ON sales_records (sale_date);
CREATE INDEX IF NOT EXISTS idx_sales_records_source_sheet ON sales_records (source_sheet);`,
	},
	{
		version: 2,
		name:    "sales_targets",
		sql: `
CREATE TABLE IF NOT EXISTS sales_targets (
	target_date  DATE           PRIMARY KEY,
	daily_target NUMERIC(14, 2) NOT NULL,
	updated_at   TIMESTAMPTZ    NOT NULL DEFAULT NOW()
);`,
	},
	{
		version: 3,
		name:    "ppc_metrics",
		sql: `
CREATE TABLE IF NOT EXISTS ppc_metrics (
	country     TEXT           NOT NULL,
	metric_date DATE           NOT NULL,
	sessions    BIGINT         NOT NULL DEFAULT 0,
	page_views  BIGINT         NOT NULL DEFAULT 0,
	impressions BIGINT         NOT NULL DEFAULT 0,
	clicks      BIGINT         NOT NULL DEFAULT 0,
	ad_orders   BIGINT         NOT NULL DEFAULT 0,
	ad_units    BIGINT         NOT NULL DEFAULT 0,
	ad_spend    NUMERIC(14, 2) NOT NULL DEFAULT 0,
	ad_sales    NUMERIC(14, 2) NOT NULL DEFAULT 0,
	total_sales NUMERIC(14, 2) NOT NULL DEFAULT 0,
	total_units BIGINT         NOT NULL DEFAULT 0,
	acos        NUMERIC(8, 2),
	tacos       NUMERIC(8, 2),
	PRIMARY KEY (country, metric_date)
);`,
	},
	{
		version: 4,
		name:    "sync_runs",
		sql: `
CREATE TABLE IF NOT EXISTS sync_runs (
	id           TEXT        PRIMARY KEY,
	trigger      TEXT        NOT NULL,
	status       TEXT        NOT NULL,
	sales_rows   INTEGER     NOT NULL DEFAULT 0,
	target_rows  INTEGER     NOT NULL DEFAULT 0,
	ppc_rows     INTEGER     NOT NULL DEFAULT 0,
	errors       TEXT[]      NOT NULL DEFAULT '{}',
	started_at   TIMESTAMPTZ NOT NULL,
	completed_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs (started_at DESC);`,
	},
	{
		version: 5,
		name:    "sales_records_breakdown_columns",
		sql: `
ALTER TABLE sales_records
	ADD COLUMN IF NOT EXISTS season         TEXT NOT NULL DEFAULT '',
	ADD COLUMN IF NOT EXISTS price_range_uk TEXT NOT NULL DEFAULT '',
	ADD COLUMN IF NOT EXISTS price_range_us TEXT NOT NULL DEFAULT '';
CREATE INDEX IF NOT EXISTS idx_sales_records_listing ON sales_records (listing, custom_year);`,
	},
}

// Migrate applies every step newer than the recorded schema version, each in
// its own transaction.
func Migrate(ctx context.Context, conn postgres.Conn) error {
	_, err := conn.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    INTEGER     PRIMARY KEY,
	name       TEXT        NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`)
	if err != nil {
		return fmt.Errorf("migration: create schema_migrations: %w", err)
	}

	var current int
	row := conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("migration: read version: %w", err)
	}

	for _, s := range steps {
		if s.version <= current {
			continue
		}

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, s.sql); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, s.version, s.name)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration: step %d (%s): %w", s.version, s.name, err)
		}

		logrus.WithFields(logrus.Fields{
			"version": s.version,
			"name":    s.name,
		}).Info("migration: step applied")
	}

	return nil
}
