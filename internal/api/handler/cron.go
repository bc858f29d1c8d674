package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/kpis-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStoreMetrics = "store-metrics"
	CronJobTypeAll          = "all"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	StoreMetricsRecalc CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeStoreMetrics, CronJobTypeAll:
			if services.StoreMetricsRecalc == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo das métricas da loja não disponível", nil)
				return
			}
			services.StoreMetricsRecalc.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: store-metrics, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.StoreMetricsRecalc != nil {
			status[CronJobTypeStoreMetrics] = services.StoreMetricsRecalc.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
