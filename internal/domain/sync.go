package domain

import "time"

type SyncStatus string

const (
	SyncStatusRunning SyncStatus = "running"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncRun records one pass of the sheets sync.
type SyncRun struct {
	ID          string     `json:"id"`
	Trigger     string     `json:"trigger"`
	Status      SyncStatus `json:"status"`
	SalesRows   int        `json:"sales_rows"`
	TargetRows  int        `json:"target_rows"`
	PPCRows     int        `json:"ppc_rows"`
	Errors      []string   `json:"errors,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SheetData is what a sync pass read from the spreadsheets.
type SheetData struct {
	Sales   map[string][]*SalesRecord // by worksheet title
	Targets []*TargetRecord
	PPC     map[string][]*PPCRecord // by country
	Errors  []error

	// TargetsRead is false when the targets worksheet could not be read; the
	// stored targets are then left untouched.
	TargetsRead bool
}
