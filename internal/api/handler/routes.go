package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/advertising"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Calendar(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/calendar/weeks/:year/:week",
			Method:      http.MethodGet,
			Handler:     GetWeekRange(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calendar/date",
			Method:      http.MethodGet,
			Handler:     GetDateWeek(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calendar/current",
			Method:      http.MethodGet,
			Handler:     GetCurrentWeek(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func KPIs(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     GetPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/weeks/:week",
			Method:      http.MethodGet,
			Handler:     GetWeekKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/ytd",
			Method:      http.MethodGet,
			Handler:     GetYearToDate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/trend",
			Method:      http.MethodGet,
			Handler:     GetWeeklyTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/yoy",
			Method:      http.MethodGet,
			Handler:     GetYearOverYear(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/price-ranges",
			Method:      http.MethodGet,
			Handler:     GetPriceRanges(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/seasonality",
			Method:      http.MethodGet,
			Handler:     GetSeasonality(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Targets(service targeting.TargetTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets/last-week",
			Method:      http.MethodGet,
			Handler:     GetLastWeekTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/weeks/:year/:week",
			Method:      http.MethodGet,
			Handler:     GetWeekTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func PPC(service advertising.Advertiser) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ppc/summary",
			Method:      http.MethodGet,
			Handler:     GetPPCSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
