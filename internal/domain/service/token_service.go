package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token bound to the given user id.
	GenerateToken(userID string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
