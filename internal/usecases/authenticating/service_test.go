package authenticating_test

import (
	"testing"
	"time"

	repomocks "github.com/snapix-app/snapix-api/infrastructure/repository/mocks"
	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/internal/usecases/authenticating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (authenticating.Authenticator, *repomocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := repomocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo-de-teste"
	cfg.Auth.TokenDuration = time.Hour

	return authenticating.NewService(userRepo, cfg), userRepo
}

func TestRegisterAndValidateToken(t *testing.T) {
	service, userRepo := newService(t)

	var createdEmail, storedHash string

	userRepo.EXPECT().
		GetUserByEmail("maria@snapix.app").
		Return(nil, nil)

	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			createdEmail = user.Email
			storedHash = user.PasswordHash
			return nil
		})

	response, err := service.Register("Maria", "Maria@Snapix.App ", "senha-forte")

	require.NoError(t, err)

	// Email normalizado e senha nunca guardada em claro
	assert.Equal(t, "maria@snapix.app", createdEmail)
	assert.NotEqual(t, "senha-forte", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("senha-forte")))

	// O hash não vaza na resposta
	assert.Empty(t, response.User.PasswordHash)
	require.NotEmpty(t, response.Token)

	claims, err := service.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "maria@snapix.app", claims.UserEmail)
	assert.Equal(t, "Maria", claims.UserName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().
		GetUserByEmail("maria@snapix.app").
		Return(&domain.User{Email: "maria@snapix.app"}, nil)

	_, err := service.Register("Maria", "maria@snapix.app", "senha")

	require.Error(t, err)
	assert.ErrorIs(t, err, authenticating.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	service, userRepo := newService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "u1",
		Name:         "Maria",
		Email:        "maria@snapix.app",
		PasswordHash: string(hash),
		Provider:     domain.UserProviderLocal,
		Active:       true,
	}

	tests := []struct {
		name        string
		password    string
		user        *domain.User
		expectedErr error
	}{
		{
			name:     "Login com credenciais corretas",
			password: "senha-correta",
			user:     stored,
		},
		{
			name:        "Senha incorreta",
			password:    "senha-errada",
			user:        stored,
			expectedErr: authenticating.ErrInvalidCredentials,
		},
		{
			name:        "Usuário não encontrado",
			password:    "qualquer",
			user:        nil,
			expectedErr: authenticating.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo.EXPECT().
				GetUserByEmail("maria@snapix.app").
				Return(tt.user, nil)

			response, err := service.Login("maria@snapix.app", tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, response.Token)
			assert.Empty(t, response.User.PasswordHash)
		})
	}
}

func TestLogin_DisabledUser(t *testing.T) {
	service, userRepo := newService(t)

	userRepo.EXPECT().
		GetUserByEmail("maria@snapix.app").
		Return(&domain.User{Email: "maria@snapix.app", Active: false}, nil)

	_, err := service.Login("maria@snapix.app", "senha")

	require.Error(t, err)
	assert.ErrorIs(t, err, authenticating.ErrUserDisabled)
}

// Sessões de convidado não tocam o banco e cada uma tem um email próprio,
// então o cache de campanhas de um convidado nunca vaza para outro
func TestGuestLogin(t *testing.T) {
	service, _ := newService(t)

	first, err := service.GuestLogin()
	require.NoError(t, err)

	second, err := service.GuestLogin()
	require.NoError(t, err)

	assert.NotEqual(t, first.User.Email, second.User.Email)
	assert.Contains(t, first.User.Email, "guest_")
	assert.Equal(t, domain.UserProviderGuest, first.User.Provider)

	claims, err := service.ValidateToken(first.Token)
	require.NoError(t, err)
	assert.Equal(t, first.User.Email, claims.UserEmail)
	assert.Equal(t, string(domain.UserProviderGuest), claims.UserProvider)
}

func TestValidateToken_Invalid(t *testing.T) {
	service, _ := newService(t)

	_, err := service.ValidateToken("token-invalido")
	require.Error(t, err)
}
