package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService verifies JWT access tokens minted by the identity service.
// This service never issues tokens; it only gates its own endpoints.
type TokenService interface {
	// ValidateAccessToken checks the validity of an access token string.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)
}
