package sheets

import (
	"context"
	"regexp"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	sheetsdomain "github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

const maxParallelReads = 4

var (
	ErrInvalidSpreadsheetURL = errors.New("invalid spreadsheet url")
	ErrWorksheetNotFound     = errors.New("worksheet not found")

	spreadsheetKeyPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	bareKeyPattern        = regexp.MustCompile(`^[a-zA-Z0-9-_]{20,}$`)
)

type SheetsIntegrator interface {
	Fetch(ctx context.Context) (*domain.SheetData, error)
}

type SheetsService struct {
	cfg    config.Sheets
	Client sheetsclient.Client
}

func New(cfg config.Sheets, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

// ExtractSpreadsheetID returns the key of a Google Sheets URL. A bare key is
// returned as is.
func ExtractSpreadsheetID(url string) (string, error) {
	if m := spreadsheetKeyPattern.FindStringSubmatch(url); m != nil {
		return m[1], nil
	}
	if bareKeyPattern.MatchString(url) {
		return url, nil
	}
	return "", errors.Wrapf(ErrInvalidSpreadsheetURL, "%q", url)
}

// Fetch reads the sales, targets and PPC worksheets. A worksheet that fails is
// reported in SheetData.Errors and the others are still returned; only a
// cancelled context aborts the whole fetch.
func (s *SheetsService) Fetch(ctx context.Context) (*domain.SheetData, error) {
	data := &domain.SheetData{
		Sales: map[string][]*domain.SalesRecord{},
		PPC:   map[string][]*domain.PPCRecord{},
	}
	var mu sync.Mutex
	addError := func(err error) {
		mu.Lock()
		data.Errors = append(data.Errors, err)
		mu.Unlock()
	}

	salesID, salesTitles, err := s.openSpreadsheet(ctx, s.cfg.SalesURL)
	if err != nil {
		addError(errors.Wrap(err, "sales spreadsheet"))
	}
	ppcID, ppcTitles, err := s.openSpreadsheet(ctx, s.cfg.PPCURL)
	if err != nil {
		addError(errors.Wrap(err, "ppc spreadsheet"))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	if salesID != "" {
		for _, title := range s.cfg.SalesWorksheets {
			if !slices.Contains(salesTitles, title) {
				logrus.WithField("worksheet", title).Warn("sheets: sales worksheet not found, skipping")
				continue
			}
			g.Go(func() error {
				records, err := s.readSales(gctx, salesID, title)
				if err != nil {
					addError(err)
					return gctx.Err()
				}
				if len(records) == 0 {
					logrus.WithField("worksheet", title).Debug("sheets: sales worksheet is empty, skipping")
					return nil
				}
				mu.Lock()
				data.Sales[title] = records
				mu.Unlock()
				return nil
			})
		}

		if slices.Contains(salesTitles, s.cfg.TargetsWorksheet) {
			g.Go(func() error {
				targets, err := s.readTargets(gctx, salesID)
				if err != nil {
					addError(err)
					return gctx.Err()
				}
				mu.Lock()
				data.Targets = targets
				data.TargetsRead = true
				mu.Unlock()
				return nil
			})
		} else {
			addError(errors.Wrapf(ErrWorksheetNotFound, "targets worksheet %s", s.cfg.TargetsWorksheet))
		}
	}

	if ppcID != "" {
		for _, country := range s.cfg.PPCCountries {
			if !slices.Contains(ppcTitles, country) {
				logrus.WithField("country", country).Warn("sheets: ppc worksheet not found, skipping")
				continue
			}
			g.Go(func() error {
				records, err := s.readPPC(gctx, ppcID, country)
				if err != nil {
					addError(err)
					return gctx.Err()
				}
				mu.Lock()
				data.PPC[country] = records
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "sheets fetch cancelled")
	}

	return data, nil
}

func (s *SheetsService) openSpreadsheet(ctx context.Context, url string) (string, []string, error) {
	id, err := ExtractSpreadsheetID(url)
	if err != nil {
		return "", nil, err
	}

	titles, err := s.Client.ListWorksheets(ctx, id)
	if err != nil {
		return "", nil, errors.Wrap(err, "listing worksheets")
	}

	return id, titles, nil
}

func (s *SheetsService) readSales(ctx context.Context, spreadsheetID, title string) ([]*domain.SalesRecord, error) {
	rows, err := s.Client.ReadWorksheet(ctx, spreadsheetID, title)
	if err != nil {
		return nil, errors.Wrapf(err, "sales worksheet %s", title)
	}

	result, err := sheetsdomain.SalesRecords(title, rows)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"worksheet": title,
		"rows":      len(result.Records),
		"dropped":   result.Dropped,
	}).Debug("sheets: sales worksheet loaded")

	return result.Records, nil
}

func (s *SheetsService) readTargets(ctx context.Context, spreadsheetID string) ([]*domain.TargetRecord, error) {
	rows, err := s.Client.ReadWorksheet(ctx, spreadsheetID, s.cfg.TargetsWorksheet)
	if err != nil {
		return nil, errors.Wrapf(err, "targets worksheet %s", s.cfg.TargetsWorksheet)
	}

	result, err := sheetsdomain.TargetRecords(rows)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"worksheet": s.cfg.TargetsWorksheet,
		"rows":      len(result.Records),
		"dropped":   result.Dropped,
	}).Debug("sheets: targets worksheet loaded")

	return result.Records, nil
}

func (s *SheetsService) readPPC(ctx context.Context, spreadsheetID, country string) ([]*domain.PPCRecord, error) {
	rows, err := s.Client.ReadWorksheet(ctx, spreadsheetID, country)
	if err != nil {
		return nil, errors.Wrapf(err, "ppc worksheet %s", country)
	}

	result, err := sheetsdomain.PPCRecords(country, rows)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"country": country,
		"rows":    len(result.Records),
		"dropped": result.Dropped,
	}).Debug("sheets: ppc worksheet loaded")

	return result.Records, nil
}
