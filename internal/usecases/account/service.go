package account

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbclient"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	"github.com/snapix-app/snapix-api/infrastructure/repository"
	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/pkg/apiErrors"
	"github.com/snapix-app/snapix-api/pkg/utils"
)

// OAuthIntegrator define as chamadas do fluxo de conexão na Graph API
type OAuthIntegrator interface {
	ExchangeCodeForToken(code string) (string, error)
	ListUserAdAccounts(accessToken string) ([]fbdomain.AdAccount, error)
}

type AccountService interface {
	// HandleOAuth troca o código de autorização por um token e lista as
	// contas de anúncios do usuário para seleção
	HandleOAuth(code string) (*domain.OAuthResult, error)

	// SelectAdAccount conecta a conta escolhida, substituindo qualquer
	// conexão anterior do usuário. A conta precisa estar entre as contas
	// acessíveis pelo próprio token
	SelectAdAccount(userEmail, accountID, accessToken string) (*domain.AdAccountResponse, error)

	// GetConnectedAccount retorna a visão da conta conectada, sem a credencial
	GetConnectedAccount(userEmail string) (*domain.AdAccountResponse, error)

	// Disconnect desconecta a conta do usuário e descarta a credencial
	Disconnect(userEmail string) error
}

type Service struct {
	facebookService     OAuthIntegrator
	adAccountRepository repository.AdAccountRepository
	cacheRepository     repository.CacheEntryRepository
	cfg                 *config.Config
}

func NewService(
	facebookService OAuthIntegrator,
	adAccountRepository repository.AdAccountRepository,
	cacheRepository repository.CacheEntryRepository,
	cfg *config.Config,
) AccountService {
	return &Service{
		facebookService:     facebookService,
		adAccountRepository: adAccountRepository,
		cacheRepository:     cacheRepository,
		cfg:                 cfg,
	}
}

// HandleOAuth é o passo 1 da conexão: troca o código por um token de acesso
// e devolve as contas de anúncios disponíveis. O token volta na resposta
// como temporário, para o passo de seleção
func (s *Service) HandleOAuth(code string) (*domain.OAuthResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, NewAccountError(ErrCodeRequired, apiErrors.ErrMissingRequiredData, "O código de autorização é obrigatório")
	}

	accessToken, err := s.facebookService.ExchangeCodeForToken(code)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("account: erro ao trocar código por token na Graph API")
		return nil, NewAccountError(ErrTokenExchange, apiErrors.ErrExternalService, "Falha ao trocar o código de autorização com o Facebook")
	}

	adAccounts, err := s.facebookService.ListUserAdAccounts(accessToken)
	if err != nil {
		if fbclient.IsTokenExpired(err) {
			return nil, NewAccountError(ErrTokenExpired, apiErrors.ErrFacebookTokenExpired, "Token do Facebook expirado, reconecte a conta")
		}

		logrus.WithField("error", err.Error()).Error("account: erro ao listar contas de anúncios do usuário")
		return nil, NewAccountError(ErrFacebookIntegration, apiErrors.ErrExternalService, "Falha ao listar contas de anúncios no Facebook")
	}

	selectable := make([]*domain.SelectableAdAccount, 0, len(adAccounts))
	for _, acc := range adAccounts {
		selectable = append(selectable, &domain.SelectableAdAccount{
			ID:            acc.ID,
			AccountID:     acc.AccountID,
			Name:          acc.Name,
			Currency:      acc.Currency,
			AccountStatus: int(acc.AccountStatus),
		})
	}

	return &domain.OAuthResult{
		RequiresAccountSelection: true,
		AdAccounts:               selectable,
		TempAccessToken:          accessToken,
	}, nil
}

// SelectAdAccount é o passo 2 da conexão. A conta escolhida é validada
// contra a lista de contas do próprio token; nome e moeda saem da resposta
// da Graph API, nunca do cliente. A troca de conta é delete-then-insert:
// os registros anteriores do usuário são removidos antes do novo,
// garantindo no máximo uma conta conectada por usuário
func (s *Service) SelectAdAccount(userEmail, accountID, accessToken string) (*domain.AdAccountResponse, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta de anúncios é obrigatório")
	}

	adAccounts, err := s.facebookService.ListUserAdAccounts(accessToken)
	if err != nil {
		if fbclient.IsTokenExpired(err) {
			return nil, NewAccountError(ErrTokenExpired, apiErrors.ErrFacebookTokenExpired, "Token do Facebook expirado, reconecte a conta")
		}

		logrus.WithField("error", err.Error()).Error("account: erro ao listar contas de anúncios para validar a seleção")
		return nil, NewAccountError(ErrFacebookIntegration, apiErrors.ErrExternalService, "Falha ao validar a conta de anúncios no Facebook")
	}

	normalizedID := strings.TrimPrefix(accountID, "act_")

	var selected *fbdomain.AdAccount
	for i := range adAccounts {
		if adAccounts[i].AccountID == normalizedID || strings.TrimPrefix(adAccounts[i].ID, "act_") == normalizedID {
			selected = &adAccounts[i]
			break
		}
	}

	if selected == nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"account_id": normalizedID,
		}).Warn("account: tentativa de conectar conta fora da lista do usuário")
		return nil, NewAccountError(ErrAccountNotSelectable, apiErrors.ErrInvalidRequest, "A conta de anúncios não está entre as contas do usuário")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar o identificador do registro")
	}

	if err := s.adAccountRepository.DeleteByCreator(userEmail); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"error":      err.Error(),
		}).Error("account: erro ao remover conexões anteriores do usuário")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao substituir a conexão anterior")
	}

	newAccount := &domain.AdAccount{
		ID:          id,
		AccountID:   normalizedID,
		AccountName: selected.Name,
		AccessToken: accessToken,
		Currency:    selected.Currency,
		Status:      domain.AdAccountStatusConnected,
		CreatedBy:   userEmail,
	}

	if err := s.adAccountRepository.Insert(newAccount); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"account_id": newAccount.AccountID,
			"error":      err.Error(),
		}).Error("account: erro ao gravar a conta conectada")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar a conta conectada")
	}

	// A conta mudou: qualquer cache de campanhas do usuário está obsoleto
	if err := s.cacheRepository.DeleteByUser(userEmail); err != nil {
		logrus.WithField("user_email", userEmail).Warn("account: erro ao invalidar o cache de campanhas do usuário")
	}

	return &domain.AdAccountResponse{
		AccountID:   newAccount.AccountID,
		AccountName: newAccount.AccountName,
		Currency:    newAccount.Currency,
		Status:      newAccount.Status,
	}, nil
}

func (s *Service) GetConnectedAccount(userEmail string) (*domain.AdAccountResponse, error) {
	account, err := s.adAccountRepository.GetConnectedAccount(userEmail)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar a conta conectada")
	}

	if account == nil {
		return nil, nil
	}

	return &domain.AdAccountResponse{
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		Currency:    account.Currency,
		Status:      account.Status,
		LastSync:    account.LastSync,
	}, nil
}

// Disconnect marca a conta como desconectada, descarta a credencial e
// invalida o cache de campanhas do usuário
func (s *Service) Disconnect(userEmail string) error {
	account, err := s.adAccountRepository.GetConnectedAccount(userEmail)
	if err != nil {
		return NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar a conta conectada")
	}

	if account == nil {
		return NewAccountError(ErrAccountNotFound, apiErrors.ErrInvalidRequest, "Nenhuma conta de anúncios conectada")
	}

	if err := s.adAccountRepository.UpdateStatus(account.ID, domain.AdAccountStatusDisconnected, true); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Error("account: erro ao desconectar a conta")
		return NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao desconectar a conta")
	}

	if err := s.cacheRepository.DeleteByUser(userEmail); err != nil {
		logrus.WithField("user_email", userEmail).Warn("account: erro ao invalidar o cache de campanhas do usuário")
	}

	return nil
}
