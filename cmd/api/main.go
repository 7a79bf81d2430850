package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/calendar"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/advertising"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Migrate(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("failed to apply database migrations")
	}

	salesRepo := repository.NewSalesRecordRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	ppcRepo := repository.NewPPCRepository(pgConn)
	syncRunRepo := repository.NewSyncRunRepository(pgConn)

	cal := calendar.New(calendar.SystemClock{Location: cfg.App.Location})

	authenticator := authenticating.NewService(cfg.Auth)
	reporter := reporting.NewService(salesRepo, cal)
	tracker := targeting.NewService(salesRepo, targetRepo, cal, cfg.Reporting.AmazonChannelFilter)
	advertiser := advertising.NewService(ppcRepo, cfg.Reporting.PPCDefaultDays)

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg.Sheets)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create Google Sheets client")
	}
	sheetsIntegrator := sheets.New(cfg.Sheets, sheetsClient)

	sheetsSyncService := scheduler.NewSheetsSyncService(
		sheetsIntegrator,
		salesRepo,
		targetRepo,
		ppcRepo,
		syncRunRepo,
		cfg,
	)

	if err := sheetsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start sheets sync scheduler")
	} else {
		logrus.Info("sheets sync scheduler started")
	}

	server, err := api.New(
		cfg,
		reporter,
		tracker,
		advertiser,
		authenticator,
		sheetsSyncService,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	if log.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
