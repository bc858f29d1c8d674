package handler

import (
	"net/http"

	"github.com/vfg2006/kpis-manager-api/internal/api/handler/router"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/advising"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/budgeting"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/comparing"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/goalsetting"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/measuring"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/selling"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/summarizing"
	"github.com/vfg2006/kpis-manager-api/pkg/middleware"
	"github.com/vfg2006/kpis-manager-api/pkg/observability"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: observability.Handler(),
		},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advisers/:id/weekly-total",
			Method:      http.MethodGet,
			Handler:     GetWeeklyTotal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Goals(service goalsetting.GoalSetter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals/:adviserId",
			Method:      http.MethodPut,
			Handler:     UpdateGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/goals",
			Method:      http.MethodPut,
			Handler:     UpdateGoalsForAllActive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Metrics(service measuring.Measurer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/advisers/:id",
			Method:      http.MethodGet,
			Handler:     GetAdviserMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func MonthlySummaries(service summarizing.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/monthly-summaries/:adviserId",
			Method:      http.MethodPut,
			Handler:     OverrideMonthlyTotal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func StoreMetrics(service budgeting.Budgeter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/store-metrics",
			Method:      http.MethodPost,
			Handler:     UpsertStoreMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/store-metrics",
			Method:      http.MethodPut,
			Handler:     UpsertStoreMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/store-metrics",
			Method:      http.MethodGet,
			Handler:     GetStoreMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/store-metrics/recalculate",
			Method:      http.MethodPost,
			Handler:     RecalculateStoreMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func WeeklyComparisons(service comparing.Comparer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/weekly-comparisons/advisers/:id",
			Method:      http.MethodGet,
			Handler:     ListMonthComparisons(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/weekly-comparisons/generate",
			Method:      http.MethodPost,
			Handler:     GenerateWeeklyComparisons(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/weekly-comparisons/generate/advisers/:id",
			Method:      http.MethodPost,
			Handler:     GenerateAdviserWeeklyComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/weekly-comparisons/advisers/:id/current-week",
			Method:      http.MethodGet,
			Handler:     GetWeek(service.UpdateCurrentWeekSales),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/weekly-comparisons/advisers/:id/current-week",
			Method:      http.MethodPut,
			Handler:     ForceWeek(service.UpdateCurrentWeekSales),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/weekly-comparisons/advisers/:id/previous-week",
			Method:      http.MethodGet,
			Handler:     GetWeek(service.UpdatePreviousWeekSales),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/weekly-comparisons/advisers/:id/previous-week",
			Method:      http.MethodPut,
			Handler:     ForceWeek(service.UpdatePreviousWeekSales),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Advisers(service advising.AdviserService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/advisers",
			Method:      http.MethodGet,
			Handler:     ListAdvisers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advisers",
			Method:      http.MethodPost,
			Handler:     CreateAdviser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/advisers/:id",
			Method:      http.MethodGet,
			Handler:     GetAdviser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advisers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdviser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/advisers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAdviser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
