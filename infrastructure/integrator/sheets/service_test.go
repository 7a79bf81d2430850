package sheets

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"go.uber.org/mock/gomock"
)

const (
	salesKey = "1AbCdEfGhIjKlMnOpQrStUvWxYz0123456789"
	ppcKey   = "1PpcKeyAbCdEfGhIjKlMnOpQrStUv"
)

func testConfig() config.Sheets {
	return config.Sheets{
		SalesURL:         "https://docs.google.com/spreadsheets/d/" + salesKey + "/edit#gid=0",
		PPCURL:           "https://docs.google.com/spreadsheets/d/" + ppcKey + "/edit",
		SalesWorksheets:  []string{"2023", "2024"},
		TargetsWorksheet: "TARGETS",
		PPCCountries:     []string{"UK", "US"},
	}
}

func TestExtractSpreadsheetID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "edit url", url: "https://docs.google.com/spreadsheets/d/" + salesKey + "/edit#gid=0", want: salesKey},
		{name: "bare key", url: salesKey, want: salesKey},
		{name: "with dash and underscore", url: "https://docs.google.com/spreadsheets/d/ab-c_d/edit", want: "ab-c_d"},
		{name: "empty", url: "", wantErr: true},
		{name: "other site", url: "https://example.com/file", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSpreadsheetID(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpreadsheetURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSheetsService_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().ListWorksheets(gomock.Any(), salesKey).Return([]string{"2024", "TARGETS"}, nil)
	client.EXPECT().ListWorksheets(gomock.Any(), ppcKey).Return([]string{"UK", "US"}, nil)

	client.EXPECT().ReadWorksheet(gomock.Any(), salesKey, "2024").Return([][]string{
		{"Date", "Sales Value (£)", "Order Quantity", "Sales Channel"},
		{"01/06/2024", "£10.00", "1", "Amazon UK"},
	}, nil)
	client.EXPECT().ReadWorksheet(gomock.Any(), salesKey, "TARGETS").Return([][]string{
		{"Date", "Daily Target (£)"},
		{"06/01/2024", "£100"},
	}, nil)
	client.EXPECT().ReadWorksheet(gomock.Any(), ppcKey, "UK").Return([][]string{
		{"Date", "Ad Spend"},
		{"06/01/2024", "£5"},
	}, nil)
	client.EXPECT().ReadWorksheet(gomock.Any(), ppcKey, "US").Return(nil, errors.New("quota exceeded"))

	data, err := New(testConfig(), client).Fetch(context.Background())
	require.NoError(t, err)

	assert.Len(t, data.Sales, 1)
	assert.Len(t, data.Sales["2024"], 1)
	assert.NotContains(t, data.Sales, "2023")
	assert.True(t, data.TargetsRead)
	assert.Len(t, data.Targets, 1)
	assert.Len(t, data.PPC["UK"], 1)
	assert.NotContains(t, data.PPC, "US")
	require.Len(t, data.Errors, 1)
	assert.Contains(t, data.Errors[0].Error(), "ppc worksheet US")
}

func TestSheetsService_Fetch_SpreadsheetUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := testConfig()
	cfg.PPCURL = ""

	client.EXPECT().ListWorksheets(gomock.Any(), salesKey).Return(nil, errors.New("forbidden"))

	data, err := New(cfg, client).Fetch(context.Background())
	require.NoError(t, err)

	assert.Empty(t, data.Sales)
	assert.False(t, data.TargetsRead)
	assert.Len(t, data.Errors, 2)
}

func TestSheetsService_Fetch_MissingTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := testConfig()
	cfg.PPCURL = ""
	cfg.SalesWorksheets = nil

	client.EXPECT().ListWorksheets(gomock.Any(), salesKey).Return([]string{"2024"}, nil)

	data, err := New(cfg, client).Fetch(context.Background())
	require.NoError(t, err)

	assert.False(t, data.TargetsRead)
	require.Len(t, data.Errors, 2)
	assert.ErrorIs(t, data.Errors[1], ErrWorksheetNotFound)
}
