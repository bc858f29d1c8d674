// Package observability expõe as métricas Prometheus da API
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kpis"

var (
	salesRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sales",
		Name:      "recorded_total",
		Help:      "Número de vendas registradas.",
	})

	weekAdjustments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "weekly_comparison",
		Name:      "adjustments_total",
		Help:      "Ajustes de total semanal por posição e ação executada.",
	}, []string{"placement", "action"})

	summaryConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "monthly_summary",
		Name:      "version_conflicts_total",
		Help:      "Conflitos de versão ao gravar o resumo mensal.",
	})

	storeMetricsRecalculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store_metrics",
		Name:      "recalculations_total",
		Help:      "Recálculos dos percentuais da loja por origem.",
	}, []string{"trigger"})

	undefinedAchievements = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "metrics",
		Name:      "undefined_achievement_total",
		Help:      "Atingimentos indefinidos (venda positiva com meta zero).",
	})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duração das requisições HTTP por método e status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(
		salesRecorded,
		weekAdjustments,
		summaryConflicts,
		storeMetricsRecalculations,
		undefinedAchievements,
		httpRequestDuration,
	)
}

func RecordSale() {
	salesRecorded.Inc()
}

func RecordWeekAdjustment(placement, action string) {
	weekAdjustments.WithLabelValues(placement, action).Inc()
}

func RecordSummaryConflict() {
	summaryConflicts.Inc()
}

func RecordStoreMetricsRecalculation(trigger string) {
	storeMetricsRecalculations.WithLabelValues(trigger).Inc()
}

func RecordUndefinedAchievement() {
	undefinedAchievements.Inc()
}

func ObserveRequest(method string, status int, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler expõe o registro padrão no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
