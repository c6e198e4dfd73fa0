package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de consulta
	ErrCampaignNotFound = errors.New("campaign not found")

	// Erros de banco de dados
	ErrFetchCampaigns = errors.New("error fetching campaigns from database")
	ErrSaveCampaign   = errors.New("error saving campaign to database")

	// Erros de cache
	ErrCacheDecode = errors.New("error decoding cached campaigns")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	UserEmail string // Usuário envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
