package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusConnected    AdAccountStatus = "connected"
	AdAccountStatusDisconnected AdAccountStatus = "disconnected"
	AdAccountStatusTokenExpired AdAccountStatus = "token_expired"
	AdAccountStatusTemp         AdAccountStatus = "temp"
)

// AdAccount representa a conta de anúncios do Facebook conectada por um usuário.
// No máximo um registro com status "connected" por usuário: a reconexão remove
// os registros anteriores antes de inserir o novo
type AdAccount struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"` // ID da Graph API sem o prefixo act_
	AccountName    string          `json:"account_name"`
	AccessToken    string          `json:"-"` // Nunca serializado para fora
	Currency       string          `json:"currency"`
	Status         AdAccountStatus `json:"status"`
	CreatedBy      string          `json:"created_by"`
	CreatedByEmail *string         `json:"created_by_email,omitempty"` // Campo legado
	OwnerEmail     *string         `json:"owner_email,omitempty"`      // Campo legado
	LastSync       *time.Time      `json:"last_sync,omitempty"`
	LastError      *string         `json:"last_error,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// HasUsableToken indica se a conta pode ser usada para chamadas à Graph API
func (a *AdAccount) HasUsableToken() bool {
	return a != nil && a.Status == AdAccountStatusConnected && a.AccessToken != ""
}

// AdAccountResponse é a visão da conta exposta pela API, sem a credencial
type AdAccountResponse struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	Currency    string          `json:"currency"`
	Status      AdAccountStatus `json:"status"`
	LastSync    *time.Time      `json:"last_sync,omitempty"`
}

// SelectableAdAccount é uma conta retornada pelo passo 1 do OAuth, antes do
// usuário escolher qual conectar
type SelectableAdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"status"`
}

// OAuthResult é a resposta do passo 1 do fluxo de conexão
type OAuthResult struct {
	RequiresAccountSelection bool                   `json:"requiresAccountSelection"`
	AdAccounts               []*SelectableAdAccount `json:"adAccounts"`
	TempAccessToken          string                 `json:"_tempAccessToken"`
}
