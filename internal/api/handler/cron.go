package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/internal/scheduler"
	"github.com/snapix-app/snapix-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCacheCleanup = "cache-cleanup"
)

// CronJobServices contém os serviços agendados disponíveis para disparo manual
type CronJobServices struct {
	CacheCleanupService *scheduler.CacheCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCacheCleanup:
			if services.CacheCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura do cache não disponível", nil)
				return
			}

			// Disparo em goroutine: a varredura pode demorar e o endpoint só
			// confirma o agendamento
			go services.CacheCleanupService.SweepExpiredEntries()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", map[string]any{
				"type": cronType,
			})
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"triggered": true,
			"type":      cronType,
		})
	}
}

// CronStatus retorna o estado das rotinas agendadas
func CronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.CacheCleanupService != nil {
			status["cache_cleanup"] = services.CacheCleanupService.Status()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
