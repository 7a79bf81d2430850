package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

func TestGetYearOverYear(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantYears  []int
		wantStatus int
		wantCode   string
	}{
		{
			name:       "default years",
			target:     "/v1/kpi/yoy",
			wantYears:  nil,
			wantStatus: http.StatusOK,
		},
		{
			name:       "comma separated years",
			target:     "/v1/kpi/yoy?years=2023,2024",
			wantYears:  []int{2023, 2024},
			wantStatus: http.StatusOK,
		},
		{
			name:       "repeated years",
			target:     "/v1/kpi/yoy?years=2022&years=2024",
			wantYears:  []int{2022, 2024},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non numeric year",
			target:     "/v1/kpi/yoy?years=2024,last",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotYears []int
			called := false
			service := stubReporter{
				yoy: func(years []int) (*domain.YearOverYearTrend, error) {
					called = true
					gotYears = years
					return &domain.YearOverYearTrend{Years: []int{2023, 2024}, Series: []*domain.YearSeries{}}, nil
				},
			}

			rec := serve(t, KPIs(service), http.MethodGet, tt.target, domain.RoleViewer)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.False(t, called)
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			assert.Equal(t, tt.wantYears, gotYears)
			assert.JSONEq(t, `{"years":[2023,2024],"series":[]}`, rec.Body.String())
		})
	}
}

func TestGetPriceRanges(t *testing.T) {
	var got domain.SalesFilter
	service := stubReporter{
		priceRanges: func(filter domain.SalesFilter) (*domain.PriceRangeReport, error) {
			got = filter
			return &domain.PriceRangeReport{Years: filter.Years, Ranges: []*domain.PriceRangeSummary{}}, nil
		},
	}

	rec := serve(t, Sales(service), http.MethodGet,
		"/v1/sales/price-ranges?years=2024&weeks=9,10&channels=Amazon%20UK,RA%20Website%20UK", domain.RoleViewer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{2024}, got.Years)
	assert.Equal(t, []int{9, 10}, got.Weeks)
	assert.Equal(t, []string{"Amazon UK", "RA Website UK"}, got.Channels)
	assert.JSONEq(t, `{"years":[2024],"revenue":0,"ranges":[]}`, rec.Body.String())
}

func TestGetPriceRanges_InvalidWeek(t *testing.T) {
	service := stubReporter{
		priceRanges: func(domain.SalesFilter) (*domain.PriceRangeReport, error) {
			return nil, reporting.NewReportError(reporting.ErrInvalidWeek, apiErrors.ErrInvalidPeriod, "60")
		},
	}

	rec := serve(t, Sales(service), http.MethodGet, "/v1/sales/price-ranges?weeks=60", domain.RoleViewer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeError(t, rec).Code)
}

func TestGetSeasonality(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		want       domain.SalesFilter
		wantStatus int
	}{
		{
			name:       "all filters",
			target:     "/v1/sales/seasonality?years=2024,2025&season=SS25&listings=Solid%20Pants&channels=Amazon%20UK&from=11-01&to=02-28",
			want:       domain.SalesFilter{Years: []int{2024, 2025}, Season: "SS25", Listings: []string{"Solid Pants"}, Channels: []string{"Amazon UK"}, From: 1101, To: 228},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no filters",
			target:     "/v1/sales/seasonality",
			want:       domain.SalesFilter{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad month day",
			target:     "/v1/sales/seasonality?from=2024-03-01",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.SalesFilter
			service := stubReporter{
				seasonality: func(filter domain.SalesFilter) (*domain.SeasonalityReport, error) {
					got = filter
					return &domain.SeasonalityReport{Years: filter.Years, Listings: []*domain.ListingSeasonality{}}, nil
				},
			}

			rec := serve(t, Sales(service), http.MethodGet, tt.target, domain.RoleViewer)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSalesRoutes_RequireClaims(t *testing.T) {
	rec := serve(t, Sales(stubReporter{}), http.MethodGet, "/v1/sales/seasonality", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
}
