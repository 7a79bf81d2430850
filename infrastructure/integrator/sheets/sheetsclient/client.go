package sheetsclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const requestTimeout = 45 * time.Second

type Client interface {
	ListWorksheets(ctx context.Context, spreadsheetID string) ([]string, error)
	ReadWorksheet(ctx context.Context, spreadsheetID, title string) ([][]string, error)
}

type SheetsClient struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, cfg config.Sheets) (Client, error) {
	svc, err := sheets.NewService(ctx, ClientOptions(cfg.Credentials)...)
	if err != nil {
		return nil, fmt.Errorf("error creating sheets service: %w", err)
	}

	return &SheetsClient{
		service: svc,
	}, nil
}

// ClientOptions accepts either a service account JSON document or a path to
// one. An empty value falls back to application default credentials.
func ClientOptions(credentials string) []option.ClientOption {
	creds := strings.TrimSpace(credentials)
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if creds == "" {
		return opts
	}
	if strings.HasPrefix(creds, "{") {
		return append(opts, option.WithCredentialsJSON([]byte(creds)))
	}
	return append(opts, option.WithCredentialsFile(creds))
}

func (c *SheetsClient) ListWorksheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error reading spreadsheet %s: %w", spreadsheetID, err)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}

	return titles, nil
}

// ReadWorksheet returns every populated row of a worksheet as displayed in
// the spreadsheet, header row first.
func (c *SheetsClient) ReadWorksheet(ctx context.Context, spreadsheetID, title string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, quoteTitle(title)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error reading worksheet %s: %w", title, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// quoteTitle turns a worksheet title into an A1 range covering the whole sheet.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
