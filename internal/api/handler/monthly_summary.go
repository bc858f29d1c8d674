package handler

import (
	"net/http"

	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/summarizing"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
)

// OverrideMonthlyTotal substitui o total vendido do resumo mensal do assessor
func OverrideMonthlyTotal(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "adviserId")
		if !ok {
			return
		}

		var req domain.OverrideTotalRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		summary, err := service.OverrideTotal(r.Context(), adviserID, req.Year, req.Month, *req.TotalSales)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar total mensal")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"adviser_id":  adviserID,
			"total_sales": summary.TotalSales,
		}).Info("monthly-summaries: total sobrescrito")

		writeJSON(w, r, http.StatusOK, summary)
	}
}
