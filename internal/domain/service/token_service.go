// Package service defines contracts for domain services implemented by the
// infrastructure layer.
package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates bearer tokens presented to the admin API.
type TokenService interface {
	// ValidateToken parses and verifies a signed token string against the given secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
