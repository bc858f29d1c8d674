package handler

import (
	"net/http"

	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/budgeting"
)

// UpsertStoreMetrics grava o PAF do período e recalcula os percentuais da loja
func UpsertStoreMetrics(service budgeting.Budgeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.StoreMetricsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		metrics, err := service.Upsert(r.Context(), req.Year, req.Month, *req.Paf)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gravar métricas da loja")
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}

// GetStoreMetrics devolve as métricas do período, sempre recalculadas
func GetStoreMetrics(service budgeting.Budgeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, ok := parseOptionalInt(w, r, "year")
		if !ok {
			return
		}
		month, ok := parseOptionalInt(w, r, "month")
		if !ok {
			return
		}

		metrics, err := service.Get(r.Context(), year, month)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar métricas da loja")
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}

type recalculateStoreMetricsRequest struct {
	Year  *int `json:"year" validate:"required"`
	Month *int `json:"month" validate:"required"`
}

func RecalculateStoreMetrics(service budgeting.Budgeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recalculateStoreMetricsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		metrics, err := service.Recalculate(r.Context(), req.Year, req.Month, budgeting.TriggerExplicit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao recalcular métricas da loja")
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}
