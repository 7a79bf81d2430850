package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

const CronJobTypeSheets = "sheets"

// SheetsSyncer is the part of the sheets sync service the cron routes drive.
type SheetsSyncer interface {
	TriggerManualSync() error
	GetStatus() map[string]any
	LatestRun(ctx context.Context) (*domain.SyncRun, error)
}

type CronJobServices struct {
	SheetsSyncService SheetsSyncer
}

func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		switch cronType {
		case CronJobTypeSheets:
			if services.SheetsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "sheets sync service not available", nil)
				return
			}
			if err := services.SheetsSyncService.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrSyncInProgress) {
					apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
					return
				}
				writeServiceError(w, r, err)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: sheets", map[string]string{"type": cronType})
			return
		}

		logger.WithField("type", cronType).Info("cron: manual run started")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	})
}

func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if services.SheetsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "sheets sync service not available", nil)
			return
		}

		status := services.SheetsSyncService.GetStatus()
		if status["last_run"] == (*domain.SyncRun)(nil) {
			run, err := services.SheetsSyncService.LatestRun(r.Context())
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("cron: could not load last recorded run")
			} else {
				status["last_run"] = run
			}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			CronJobTypeSheets: status,
		})
	})
}
