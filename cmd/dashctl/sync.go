package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy the spreadsheets into the database once",
		Long: `Run a single sheets sync pass with the same configuration as the API.

Migrations are applied first. The command fails when the pass fails.`,
		Args: cobra.NoArgs,
		RunE: runSync,
	}
	cmd.Flags().Bool("json", false, "Print the run as JSON")
	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	defer conn.Close()

	if err := migration.Migrate(ctx, conn); err != nil {
		return err
	}

	client, err := sheetsclient.NewClient(ctx, cfg.Sheets)
	if err != nil {
		return fmt.Errorf("creating Google Sheets client: %w", err)
	}

	service := scheduler.NewSheetsSyncService(
		sheets.New(cfg.Sheets, client),
		repository.NewSalesRecordRepository(conn),
		repository.NewTargetRepository(conn),
		repository.NewPPCRepository(conn),
		repository.NewSyncRunRepository(conn),
		cfg,
	)

	fmt.Fprintln(cmd.ErrOrStderr(), "Syncing spreadsheets...")

	run, err := service.SyncNow(ctx, scheduler.TriggerCLI)
	if run != nil {
		printRun(cmd, run)
	}
	if err != nil {
		return err
	}
	if run.Status == domain.SyncStatusFailed {
		return fmt.Errorf("sync %s failed", run.ID)
	}
	return nil
}

func printRun(cmd *cobra.Command, run *domain.SyncRun) {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		fmt.Fprintln(out, utils.PrettyJson(run))
		return
	}

	fmt.Fprintf(out, "Run:         %s\n", run.ID)
	fmt.Fprintf(out, "Status:      %s\n", run.Status)
	fmt.Fprintf(out, "Sales rows:  %d\n", run.SalesRows)
	fmt.Fprintf(out, "Target rows: %d\n", run.TargetRows)
	fmt.Fprintf(out, "PPC rows:    %d\n", run.PPCRows)
	if len(run.Errors) > 0 {
		fmt.Fprintf(out, "Errors:\n  %s\n", strings.Join(run.Errors, "\n  "))
	}
}
