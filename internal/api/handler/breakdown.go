package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func GetYearOverYear(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		years, err := queryInts(r, "years")
		if err != nil {
			invalidListParam(w, "years")
			return
		}

		trend, err := service.YearOverYearTrend(r.Context(), years)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("years", trend.Years).Debug("kpi: year over year trend built")

		writeJSON(w, r, http.StatusOK, trend)
	})
}

func GetPriceRanges(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		years, err := queryInts(r, "years")
		if err != nil {
			invalidListParam(w, "years")
			return
		}
		weeks, err := queryInts(r, "weeks")
		if err != nil {
			invalidListParam(w, "weeks")
			return
		}

		report, err := service.PriceRanges(r.Context(), domain.SalesFilter{
			Years:    years,
			Weeks:    weeks,
			Channels: queryStrings(r, "channels"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetSeasonality(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		years, err := queryInts(r, "years")
		if err != nil {
			invalidListParam(w, "years")
			return
		}

		query := r.URL.Query()
		from, err := domain.ParseMonthDay(query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from must be MM-DD", map[string]string{"param": "from"})
			return
		}
		to, err := domain.ParseMonthDay(query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "to must be MM-DD", map[string]string{"param": "to"})
			return
		}

		report, err := service.Seasonality(r.Context(), domain.SalesFilter{
			Years:    years,
			Channels: queryStrings(r, "channels"),
			Listings: queryStrings(r, "listings"),
			Season:   query.Get("season"),
			From:     from,
			To:       to,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"years":    report.Years,
			"listings": len(report.Listings),
		}).Debug("seasonality: report built")

		writeJSON(w, r, http.StatusOK, report)
	})
}
