package account_test

import (
	"errors"
	"testing"

	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbclient"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	repomocks "github.com/snapix-app/snapix-api/infrastructure/repository/mocks"
	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/internal/usecases/account"
	"github.com/snapix-app/snapix-api/internal/usecases/account/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userEmail = "user@snapix.app"

type testMocks struct {
	oauth         *mocks.MockOAuthIntegrator
	adAccountRepo *repomocks.MockAdAccountRepository
	cacheRepo     *repomocks.MockCacheEntryRepository
}

func newService(t *testing.T) (account.AccountService, testMocks) {
	ctrl := gomock.NewController(t)

	tm := testMocks{
		oauth:         mocks.NewMockOAuthIntegrator(ctrl),
		adAccountRepo: repomocks.NewMockAdAccountRepository(ctrl),
		cacheRepo:     repomocks.NewMockCacheEntryRepository(ctrl),
	}

	service := account.NewService(tm.oauth, tm.adAccountRepo, tm.cacheRepo, &config.Config{})

	return service, tm
}

func TestHandleOAuth(t *testing.T) {
	service, tm := newService(t)

	tm.oauth.EXPECT().
		ExchangeCodeForToken("auth-code").
		Return("EAAtoken", nil)

	tm.oauth.EXPECT().
		ListUserAdAccounts("EAAtoken").
		Return([]fbdomain.AdAccount{
			{ID: "act_9090", AccountID: "9090", Name: "Conta A", Currency: "BRL", AccountStatus: 1},
			{ID: "act_9191", AccountID: "9191", Name: "Conta B", Currency: "USD", AccountStatus: 1},
		}, nil)

	result, err := service.HandleOAuth("auth-code")

	require.NoError(t, err)
	assert.True(t, result.RequiresAccountSelection)
	assert.Equal(t, "EAAtoken", result.TempAccessToken)
	require.Len(t, result.AdAccounts, 2)
	assert.Equal(t, "9090", result.AdAccounts[0].AccountID)
	assert.Equal(t, "Conta A", result.AdAccounts[0].Name)
}

func TestHandleOAuth_EmptyCode(t *testing.T) {
	service, _ := newService(t)

	_, err := service.HandleOAuth("  ")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrCodeRequired)
}

func TestHandleOAuth_ExchangeFails(t *testing.T) {
	service, tm := newService(t)

	tm.oauth.EXPECT().
		ExchangeCodeForToken("bad-code").
		Return("", errors.New("invalid code"))

	_, err := service.HandleOAuth("bad-code")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrTokenExchange)
}

// A troca de conta substitui a conexão anterior: primeiro remove os registros
// do usuário, depois insere o novo, e o cache de campanhas é invalidado.
// Nome e moeda persistidos saem da resposta da Graph API, nunca do cliente
func TestSelectAdAccount(t *testing.T) {
	service, tm := newService(t)

	tm.oauth.EXPECT().
		ListUserAdAccounts("EAAtoken").
		Return([]fbdomain.AdAccount{
			{ID: "act_9090", AccountID: "9090", Name: "Conta A", Currency: "BRL", AccountStatus: 1},
			{ID: "act_9191", AccountID: "9191", Name: "Conta B", Currency: "USD", AccountStatus: 1},
		}, nil)

	var inserted *domain.AdAccount

	gomock.InOrder(
		tm.adAccountRepo.EXPECT().DeleteByCreator(userEmail).Return(nil),
		tm.adAccountRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(acc *domain.AdAccount) error {
				inserted = acc
				return nil
			}),
	)
	tm.cacheRepo.EXPECT().DeleteByUser(userEmail).Return(nil)

	response, err := service.SelectAdAccount(userEmail, "act_9090", "EAAtoken")

	require.NoError(t, err)
	require.NotNil(t, inserted)

	// O prefixo act_ é removido antes de persistir
	assert.Equal(t, "9090", inserted.AccountID)
	assert.Equal(t, "Conta A", inserted.AccountName)
	assert.Equal(t, "BRL", inserted.Currency)
	assert.Equal(t, domain.AdAccountStatusConnected, inserted.Status)
	assert.Equal(t, userEmail, inserted.CreatedBy)
	assert.Equal(t, "EAAtoken", inserted.AccessToken)
	assert.NotEmpty(t, inserted.ID)

	assert.Equal(t, "9090", response.AccountID)
	assert.Equal(t, domain.AdAccountStatusConnected, response.Status)
}

// Uma conta fora da lista do token é rejeitada antes de tocar o banco:
// nenhuma expectativa de repositório é registrada de propósito
func TestSelectAdAccount_AccountNotInUserList(t *testing.T) {
	service, tm := newService(t)

	tm.oauth.EXPECT().
		ListUserAdAccounts("EAAtoken").
		Return([]fbdomain.AdAccount{
			{ID: "act_9090", AccountID: "9090", Name: "Conta A", Currency: "BRL", AccountStatus: 1},
		}, nil)

	_, err := service.SelectAdAccount(userEmail, "act_000_never_listed", "EAAtoken")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrAccountNotSelectable)
}

func TestSelectAdAccount_TokenExpired(t *testing.T) {
	service, tm := newService(t)

	tm.oauth.EXPECT().
		ListUserAdAccounts("EAAexpired").
		Return(nil, &fbclient.GraphError{
			StatusCode: 401,
			Response: fbdomain.ErrorResponse{
				Error: fbdomain.ErrorDetails{Message: "Error validating access token", Type: "OAuthException", Code: 190},
			},
		})

	_, err := service.SelectAdAccount(userEmail, "act_9090", "EAAexpired")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrTokenExpired)
}

func TestSelectAdAccount_MissingAccountID(t *testing.T) {
	service, _ := newService(t)

	_, err := service.SelectAdAccount(userEmail, "", "EAAtoken")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrAccountIDRequired)
}

func TestGetConnectedAccount_NoneConnected(t *testing.T) {
	service, tm := newService(t)

	tm.adAccountRepo.EXPECT().
		GetConnectedAccount(userEmail).
		Return(nil, nil)

	response, err := service.GetConnectedAccount(userEmail)

	require.NoError(t, err)
	assert.Nil(t, response)
}

func TestGetConnectedAccount_HidesToken(t *testing.T) {
	service, tm := newService(t)

	tm.adAccountRepo.EXPECT().
		GetConnectedAccount(userEmail).
		Return(&domain.AdAccount{
			ID:          "abc123",
			AccountID:   "9090",
			AccountName: "Conta A",
			AccessToken: "EAAtoken",
			Currency:    "BRL",
			Status:      domain.AdAccountStatusConnected,
		}, nil)

	response, err := service.GetConnectedAccount(userEmail)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "9090", response.AccountID)
	// A visão da API não carrega a credencial em nenhum campo
	assert.Equal(t, domain.AdAccountStatusConnected, response.Status)
}

func TestDisconnect(t *testing.T) {
	service, tm := newService(t)

	tm.adAccountRepo.EXPECT().
		GetConnectedAccount(userEmail).
		Return(&domain.AdAccount{ID: "abc123", Status: domain.AdAccountStatusConnected}, nil)

	// O desconectar limpa a credencial junto com a troca de status
	tm.adAccountRepo.EXPECT().
		UpdateStatus("abc123", domain.AdAccountStatusDisconnected, true).
		Return(nil)

	tm.cacheRepo.EXPECT().DeleteByUser(userEmail).Return(nil)

	err := service.Disconnect(userEmail)

	require.NoError(t, err)
}

func TestDisconnect_NoAccount(t *testing.T) {
	service, tm := newService(t)

	tm.adAccountRepo.EXPECT().
		GetConnectedAccount(userEmail).
		Return(nil, nil)

	err := service.Disconnect(userEmail)

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}
