package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
)

// GetWeekRange answers with "available": false instead of an error when the
// year and week have no date range.
func GetWeekRange(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		writeJSON(w, r, http.StatusOK, service.WeekRange(params.ByName("year"), params.ByName("week")))
	})
}

func GetDateWeek(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		week, err := service.DateWeek(r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, week)
	})
}

func GetCurrentWeek(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, err := queryInt(r, "year")
		if err != nil {
			invalidParam(w, "year")
			return
		}

		week, err := service.CurrentWeek(year)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, week)
	})
}
