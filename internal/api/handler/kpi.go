package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func GetPeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.Periods(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"year": periods.CurrentYear,
			"week": periods.DefaultWeek,
		}).Debug("periods: resolved defaults")

		writeJSON(w, r, http.StatusOK, periods)
	})
}

func GetWeekKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("week"))
		if err != nil {
			invalidParam(w, "week")
			return
		}

		report, err := service.WeekKPIs(r.Context(), week)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetYearToDate(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		week, err := queryInt(r, "week")
		if err != nil {
			invalidParam(w, "week")
			return
		}
		if week == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "week is required", nil)
			return
		}

		ytd, err := service.YearToDate(r.Context(), week)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, ytd)
	})
}

func GetWeeklyTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, err := queryInt(r, "year")
		if err != nil {
			invalidParam(w, "year")
			return
		}
		week, err := queryInt(r, "week")
		if err != nil {
			invalidParam(w, "week")
			return
		}

		trend, err := service.WeeklyTrend(r.Context(), year, week)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, trend)
	})
}
