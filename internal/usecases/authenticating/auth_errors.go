package authenticating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de autenticação
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("missing required data")

	// Erros de credenciais
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user disabled")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	UserEmail string // Email do usuário envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo AuthError
func NewAuthError(err error, code string, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um novo AuthError com o email do usuário
func NewUserAuthError(err error, code string, userEmail string, details string) *AuthError {
	return &AuthError{
		Err:       err,
		Code:      code,
		UserEmail: userEmail,
		Details:   details,
	}
}
