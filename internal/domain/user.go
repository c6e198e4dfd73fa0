package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserProvider string

const (
	UserProviderLocal    UserProvider = "local"
	UserProviderFacebook UserProvider = "facebook"
	UserProviderGoogle   UserProvider = "google"
	UserProviderGuest    UserProvider = "guest"
)

type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Provider     UserProvider `json:"provider"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type Claims struct {
	UserID       string
	UserName     string
	UserEmail    string
	UserProvider string
	jwt.RegisteredClaims
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
