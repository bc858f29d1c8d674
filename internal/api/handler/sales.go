package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/selling"
	"github.com/vfg2006/kpis-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
	"github.com/vfg2006/kpis-manager-api/pkg/utils"
)

// CreateSale registra uma venda e devolve o total da semana
func CreateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaleRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		weekSale, err := service.RecordSale(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar venda")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"adviser_id": req.AdviserID,
			"week":       weekSale.Week,
		}).Info("sales: venda registrada")

		writeJSON(w, r, http.StatusCreated, weekSale)
	}
}

// GetWeeklyTotal retorna o total vendido pelo assessor na semana da data informada
func GetWeeklyTotal(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		anchor, err := utils.ParseDateOr(r.URL.Query().Get("date"), now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato 2006-01-02", nil)
			return
		}

		total, err := service.WeeklyTotal(r.Context(), adviserID, anchor)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular total da semana")
			return
		}

		window := domain.WeekOf(anchor)
		writeJSON(w, r, http.StatusOK, map[string]any{
			"adviser_id": adviserID,
			"week":       window.ISOWeek(),
			"week_start": window.Start.Format(time.DateOnly),
			"week_end":   window.End.Format(time.DateOnly),
			"total":      total,
		})
	}
}
