package handler

import (
	"net/http"

	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/advising"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
)

func ListAdvisers(service advising.AdviserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advisers, err := service.ListAdvisers(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar assessores")
			return
		}

		writeJSON(w, r, http.StatusOK, advisers)
	}
}

func GetAdviser(service advising.AdviserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		adviser, err := service.GetAdviser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar assessor")
			return
		}

		writeJSON(w, r, http.StatusOK, adviser)
	}
}

// CreateAdviser cadastra um assessor, opcionalmente com a meta do mês corrente
func CreateAdviser(service advising.AdviserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAdviserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		adviser, err := service.CreateAdviser(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar assessor")
			return
		}

		log.ForContext(r.Context()).WithField("adviser_id", adviser.ID).Info("advisers: assessor criado")

		writeJSON(w, r, http.StatusCreated, adviser)
	}
}

func UpdateAdviser(service advising.AdviserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateAdviserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		req.ID = id

		adviser, err := service.UpdateAdviser(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar assessor")
			return
		}

		writeJSON(w, r, http.StatusOK, adviser)
	}
}

func DeleteAdviser(service advising.AdviserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteAdviser(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover assessor")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
