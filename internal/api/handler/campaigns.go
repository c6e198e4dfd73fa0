package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/internal/usecases/campaigning"
	"github.com/snapix-app/snapix-api/pkg/apiErrors"
	"github.com/snapix-app/snapix-api/pkg/middleware"
)

// GetCampaigns lista as campanhas do usuário com os filtros da query string.
// A resposta indica a origem dos dados: live, cache ou database
func GetCampaigns(service campaigning.CampaignSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		opts := parseFetchOptions(r)

		result, err := service.FetchCampaignsWithCache(userClaims.UserEmail, opts)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_email": userClaims.UserEmail,
			"count":      result.Count,
			"source":     result.Source,
		}).Info("Campanhas retornadas")

		writeJSON(w, http.StatusOK, result)
	}
}

// RefreshCampaigns força a re-sincronização, ignorando e invalidando o cache
func RefreshCampaigns(service campaigning.CampaignSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		result, err := service.RefreshCampaigns(userClaims.UserEmail, parseFetchOptions(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// GetCampaignSummary retorna as métricas agregadas das campanhas do usuário
func GetCampaignSummary(service campaigning.CampaignSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		summary, err := service.GetCampaignSummary(userClaims.UserEmail)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// GetCampaignDetail retorna uma campanha específica pelo identificador do
// Facebook
func GetCampaignDetail(service campaigning.CampaignSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da campanha não informado", nil)
			return
		}

		campaign, err := service.GetCampaignDetail(userClaims.UserEmail, campaignID)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

// parseFetchOptions lê os filtros da query string. Valores inválidos caem
// nos defaults da normalização, nunca em erro
func parseFetchOptions(r *http.Request) domain.FetchOptions {
	query := r.URL.Query()

	opts := domain.FetchOptions{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	if limit := query.Get("limit"); limit != "" {
		if value, err := strconv.Atoi(limit); err == nil {
			opts.Limit = value
		}
	}

	if status := query.Get("status"); status != "" {
		opts.Status = strings.Split(status, ",")
	}

	if refresh := query.Get("refresh"); refresh == "true" || refresh == "1" {
		opts.ForceRefresh = true
	}

	return opts
}

// handleCampaignError trata erros do contexto de campanhas
func handleCampaignError(w http.ResponseWriter, err error) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar campanhas", nil)
}
