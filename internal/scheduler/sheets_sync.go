package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	TriggerCron    = "cron"
	TriggerManual  = "manual"
	TriggerStartup = "startup"
	TriggerCLI     = "cli"
)

var ErrSyncInProgress = errors.New("sheets sync already running")

type SheetsSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	RunOnStart        bool
}

// SheetsSyncService copies the spreadsheets into the database on a schedule.
type SheetsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetsSyncConfig
	integrator          sheets.SheetsIntegrator
	salesRepo           repository.SalesRecordRepository
	targetRepo          repository.TargetRepository
	ppcRepo             repository.PPCRepository
	syncRunRepo         repository.SyncRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRun             *domain.SyncRun
	now                 func() time.Time
}

func NewSheetsSyncService(
	integrator sheets.SheetsIntegrator,
	salesRepo repository.SalesRecordRepository,
	targetRepo repository.TargetRepository,
	ppcRepo repository.PPCRepository,
	syncRunRepo repository.SyncRunRepository,
	appConfig *config.Config,
) *SheetsSyncService {
	syncConfig := SheetsSyncConfig{
		CronSchedule:      appConfig.SheetsSync.CronSchedule,
		MaxConcurrentJobs: max(appConfig.SheetsSync.MaxConcurrentJobs, 1),
		SyncEnabled:       appConfig.SheetsSync.Enabled,
		RunOnStart:        appConfig.SheetsSync.RunOnStart,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"run_on_start":        syncConfig.RunOnStart,
	}).Info("sheets sync: configuration loaded")

	return &SheetsSyncService{
		scheduler:   gocron.NewScheduler(location),
		config:      syncConfig,
		integrator:  integrator,
		salesRepo:   salesRepo,
		targetRepo:  targetRepo,
		ppcRepo:     ppcRepo,
		syncRunRepo: syncRunRepo,
		now:         time.Now,
	}
}

func (s *SheetsSyncService) Start(ctx context.Context) error {
	if s.config.RunOnStart {
		go func() {
			if _, err := s.SyncNow(ctx, TriggerStartup); err != nil {
				logrus.WithError(err).Error("sheets sync: start-up sync failed")
			}
		}()
	}

	if !s.config.SyncEnabled {
		logrus.Info("sheets sync: scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("sheets sync: starting scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncNow(ctx, TriggerCron); err != nil {
			logrus.WithError(err).Error("sheets sync: scheduled sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling sheets sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("sheets sync: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync starts a sync in the background.
func (s *SheetsSyncService) TriggerManualSync() error {
	if s.IsRunning() {
		logrus.Info("sheets sync: already running, ignoring manual trigger")
		return ErrSyncInProgress
	}

	logrus.Info("sheets sync: manual sync requested")
	go func() {
		if _, err := s.SyncNow(context.Background(), TriggerManual); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("sheets sync: manual sync failed")
		}
	}()

	return nil
}

func (s *SheetsSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// SyncNow runs one sync pass and blocks until it finishes. Only one pass runs
// at a time; a concurrent call returns ErrSyncInProgress.
func (s *SheetsSyncService) SyncNow(ctx context.Context, trigger string) (*domain.SyncRun, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("error generating sync run id: %w", err)
	}

	run := &domain.SyncRun{
		ID:        id,
		Trigger:   trigger,
		Status:    domain.SyncStatusRunning,
		StartedAt: s.now(),
	}
	logger := logrus.WithFields(logrus.Fields{"run_id": run.ID, "trigger": trigger})
	logger.Info("sheets sync: started")

	if err := s.syncRunRepo.Start(ctx, run); err != nil {
		logger.WithError(err).Warn("sheets sync: could not record run start")
	}

	data, err := s.integrator.Fetch(ctx)
	if err != nil {
		run.Errors = append(run.Errors, err.Error())
		s.finish(ctx, run, false)
		return run, err
	}
	for _, e := range data.Errors {
		run.Errors = append(run.Errors, e.Error())
	}

	saved := s.persist(ctx, run, data)
	s.finish(ctx, run, saved)

	logger.WithFields(logrus.Fields{
		"status":      run.Status,
		"sales_rows":  run.SalesRows,
		"target_rows": run.TargetRows,
		"ppc_rows":    run.PPCRows,
		"errors":      len(run.Errors),
		"duration":    run.CompletedAt.Sub(run.StartedAt).String(),
	}).Info("sheets sync: finished")

	return run, nil
}

// persist replaces the stored rows of every worksheet that was read. It
// reports whether at least one worksheet was saved.
func (s *SheetsSyncService) persist(ctx context.Context, run *domain.SyncRun, data *domain.SheetData) bool {
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		saved     bool
		semaphore = make(chan struct{}, s.config.MaxConcurrentJobs)
	)

	job := func(name string, fn func() (int, error), add func(int)) {
		wg.Add(1)
		semaphore <- struct{}{}
		go func() {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			n, err := fn()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"run_id":    run.ID,
					"worksheet": name,
					"error":     err.Error(),
				}).Error("sheets sync: failed to save worksheet")
				run.Errors = append(run.Errors, fmt.Sprintf("%s: %s", name, err.Error()))
				return
			}
			add(n)
			saved = true
		}()
	}

	for sheet, records := range data.Sales {
		domain.AnnotateAll(records)
		job(sheet, func() (int, error) {
			return s.salesRepo.ReplaceSheet(ctx, sheet, records)
		}, func(n int) { run.SalesRows += n })
	}

	if data.TargetsRead {
		job("targets", func() (int, error) {
			return s.targetRepo.ReplaceAll(ctx, data.Targets)
		}, func(n int) { run.TargetRows += n })
	}

	for country, records := range data.PPC {
		job("ppc "+country, func() (int, error) {
			return s.ppcRepo.ReplaceCountry(ctx, country, records)
		}, func(n int) { run.PPCRows += n })
	}

	wg.Wait()

	return saved
}

func (s *SheetsSyncService) finish(ctx context.Context, run *domain.SyncRun, saved bool) {
	completedAt := s.now()
	run.CompletedAt = &completedAt

	switch {
	case len(run.Errors) == 0:
		run.Status = domain.SyncStatusSuccess
	case saved:
		run.Status = domain.SyncStatusPartial
	default:
		run.Status = domain.SyncStatusFailed
	}

	if err := s.syncRunRepo.Finish(ctx, run); err != nil {
		logrus.WithError(err).WithField("run_id", run.ID).Warn("sheets sync: could not record run result")
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = completedAt
	s.lastRun = run
	s.syncMutex.Unlock()
}

// LatestRun returns the last run of this process, or the last recorded run
// when nothing ran since start-up.
func (s *SheetsSyncService) LatestRun(ctx context.Context) (*domain.SyncRun, error) {
	s.syncMutex.Lock()
	run := s.lastRun
	s.syncMutex.Unlock()
	if run != nil {
		return run, nil
	}

	return s.syncRunRepo.Latest(ctx)
}

func (s *SheetsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run":               s.lastRun,
	}
}
