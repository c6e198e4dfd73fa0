package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/internal/usecases/account"
	"github.com/snapix-app/snapix-api/pkg/apiErrors"
	"github.com/snapix-app/snapix-api/pkg/middleware"
)

type FacebookCallbackRequest struct {
	Code string `json:"code"`
}

// SelectAccountRequest carrega só o id escolhido e o token temporário do
// passo 1. Nome e moeda vêm da Graph API durante a validação da seleção
type SelectAccountRequest struct {
	AccountID   string `json:"account_id"`
	AccessToken string `json:"_tempAccessToken"`
}

// FacebookCallback é o passo 1 da conexão: recebe o código de autorização do
// OAuth e devolve as contas de anúncios disponíveis para seleção
func FacebookCallback(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FacebookCallbackRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.HandleOAuth(req.Code)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// SelectAccount é o passo 2 da conexão: grava a conta escolhida pelo usuário
func SelectAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req SelectAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.SelectAdAccount(userClaims.UserEmail, req.AccountID, req.AccessToken)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// GetConnectedAccount retorna a conta conectada do usuário, se houver
func GetConnectedAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		response, err := service.GetConnectedAccount(userClaims.UserEmail)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		if response == nil {
			writeJSON(w, http.StatusOK, map[string]any{"connected": false})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"connected": true,
			"account":   response,
		})
	}
}

// DisconnectAccount desconecta a conta de anúncios do usuário
func DisconnectAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.Disconnect(userClaims.UserEmail); err != nil {
			handleAccountError(w, err)
			return
		}

		logrus.WithField("user_email", userClaims.UserEmail).Info("Conta de anúncios desconectada")

		writeJSON(w, http.StatusOK, map[string]any{"disconnected": true})
	}
}

// handleAccountError trata erros do contexto de contas de anúncios
func handleAccountError(w http.ResponseWriter, err error) {
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao gerenciar conta de anúncios", nil)
}
