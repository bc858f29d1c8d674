package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/comparing"
)

type weekUpdater func(ctx context.Context, adviserID int64, target *float64) (*domain.WeeklyComparison, error)

// ListMonthComparisons retorna as comparações semana a semana do assessor no mês
func ListMonthComparisons(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		year, month, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		comparisons, err := service.ListMonthComparisons(r.Context(), adviserID, year, month)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular comparações semanais")
			return
		}

		writeJSON(w, r, http.StatusOK, comparisons)
	}
}

func GenerateWeeklyComparisons(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comparisons, err := service.GenerateWeeklyComparisons(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar comparações semanais")
			return
		}

		writeJSON(w, r, http.StatusOK, comparisons)
	}
}

func GenerateAdviserWeeklyComparison(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		comparison, err := service.GenerateAdviserWeeklyComparison(r.Context(), adviserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar comparação semanal")
			return
		}

		writeJSON(w, r, http.StatusOK, comparison)
	}
}

// GetWeek consulta a comparação da semana sem alterar vendas
func GetWeek(update weekUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		comparison, err := update(r.Context(), adviserID, nil)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar semana")
			return
		}

		writeJSON(w, r, http.StatusOK, comparison)
	}
}

// ForceWeek ajusta as vendas da semana para o total informado.
// Total ausente ou não positivo apenas consulta a semana.
func ForceWeek(update weekUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		var req domain.WeekTotalRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		comparison, err := update(r.Context(), adviserID, req.Total)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ajustar vendas da semana")
			return
		}

		writeJSON(w, r, http.StatusOK, comparison)
	}
}
