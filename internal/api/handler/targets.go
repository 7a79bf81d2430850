package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/targeting"
)

func GetLastWeekTarget(service targeting.TargetTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perf, err := service.LastWeekPerformance(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, perf)
	})
}

func GetDailyTarget(service targeting.TargetTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perf, err := service.DailyPerformance(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, perf)
	})
}

func GetWeekTarget(service targeting.TargetTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		perf, err := service.WeekPerformance(r.Context(), params.ByName("year"), params.ByName("week"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, perf)
	})
}
