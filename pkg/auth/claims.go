package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sweetdelights/cakekart-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Phone  string
	Role   enums.UserRole
}

// AccessTokenClaims represents the typed JWT presented by clients. Tokens are
// minted by the hosted auth provider; this service only verifies them.
type AccessTokenClaims struct {
	UserID uuid.UUID      `json:"user_id"`
	Email  string         `json:"email"`
	Name   string         `json:"name,omitempty"`
	Phone  string         `json:"phone,omitempty"`
	Role   enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}
