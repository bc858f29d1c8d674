package handler

import (
	"net/http"

	"github.com/vfg2006/kpis-manager-api/internal/usecases/measuring"
)

// GetDashboardMetrics retorna os indicadores consolidados da loja no período
func GetDashboardMetrics(service measuring.Measurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		metrics, err := service.DashboardMetrics(r.Context(), year, month)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular métricas do painel")
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}

func GetAdviserMetrics(service measuring.Measurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		year, month, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		metrics, err := service.AdviserMetrics(r.Context(), adviserID, year, month)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular métricas do assessor")
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}
