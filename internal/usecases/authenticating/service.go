package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/repository"
	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/pkg/apiErrors"
	"github.com/snapix-app/snapix-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Register(name, email, password string) (*domain.LoginResponse, error)
	Login(email, password string) (*domain.LoginResponse, error)
	GuestLogin() (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetMe(userID string) (*domain.User, error)
}

type Service struct {
	userRepository repository.UserRepository
	cfg            *config.Config
}

func NewService(userRepository repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepository: userRepository,
		cfg:            cfg,
	}
}

func (s *Service) Register(name, email, password string) (*domain.LoginResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}

	email = handleEmail(email)

	existing, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao processar a senha")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar o identificador do usuário")
	}

	user := &domain.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Provider:     domain.UserProviderLocal,
		Active:       true,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return s.buildLoginResponse(user)
}

func (s *Service) Login(email, password string) (*domain.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.Email, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.Email, "Senha incorreta")
	}

	return s.buildLoginResponse(user)
}

// GuestLogin cria uma sessão de demonstração sem persistir usuário. O email
// de convidado é único por sessão, então o cache e as campanhas de um
// convidado nunca vazam para outro
func (s *Service) GuestLogin() (*domain.LoginResponse, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar o identificador da sessão")
	}

	user := &domain.User{
		ID:       id,
		Name:     "Convidado",
		Email:    fmt.Sprintf("guest_%s@snapix.app", strings.ToLower(id)),
		Provider: domain.UserProviderGuest,
		Active:   true,
	}

	return s.buildLoginResponse(user)
}

func (s *Service) buildLoginResponse(user *domain.User) (*domain.LoginResponse, error) {
	token, err := generateJWT(user, s.cfg.Auth.Secret, s.cfg.Auth.TokenDuration)
	if err != nil {
		logrus.WithField("user_email", user.Email).Error("auth: erro ao gerar token JWT")
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	user.PasswordHash = ""

	return &domain.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

func generateJWT(user *domain.User, secret string, duration time.Duration) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserProvider: string(user.Provider),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GetMe retorna o perfil do usuário autenticado, sem o hash de senha
func (s *Service) GetMe(userID string) (*domain.User, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
