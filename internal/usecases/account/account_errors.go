package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas de anúncios
var (
	// Erros de validação
	ErrCodeRequired         = errors.New("authorization code is required")
	ErrAccountIDRequired    = errors.New("account ID is required")
	ErrAccountNotFound      = errors.New("ad account not found")
	ErrAccountNotSelectable = errors.New("ad account not in user's list")

	// Erros de serviços externos
	ErrFacebookIntegration = errors.New("error communicating with Facebook")
	ErrTokenExchange       = errors.New("error exchanging authorization code for token")
	ErrTokenExpired        = errors.New("facebook token expired")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de identificadores
	ErrGenerateID = errors.New("error generating record ID")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
