package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/advertising"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

func GetPPCSummary(service advertising.Advertiser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be YYYY-MM-DD", nil)
			return
		}
		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be YYYY-MM-DD", nil)
			return
		}

		country := strings.ToUpper(strings.TrimSpace(query.Get("country")))
		if country == "" || country == strings.ToUpper(domain.PPCAllCountries) {
			country = domain.PPCAllCountries
		}

		summary, err := service.Summary(r.Context(), domain.PPCFilters{
			Country:   country,
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"country": summary.Country,
			"weeks":   len(summary.Weeks),
		}).Debug("ppc: summary built")

		writeJSON(w, r, http.StatusOK, summary)
	})
}
