package handler

import (
	"net/http"

	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/goalsetting"
)

// UpdateGoal grava a meta de um assessor no período
func UpdateGoal(service goalsetting.GoalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adviserID, ok := parseID(w, r, "adviserId")
		if !ok {
			return
		}

		var req domain.GoalRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		goal, err := service.UpdateGoal(r.Context(), adviserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, goal)
	}
}

// UpdateGoalsForAllActive aplica a mesma meta a todos os assessores ativos
func UpdateGoalsForAllActive(service goalsetting.GoalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.GoalRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		goals, err := service.UpdateGoalsForAllActive(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar metas")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"updated": len(goals),
			"goals":   goals,
		})
	}
}
