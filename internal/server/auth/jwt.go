// Package auth resolves the acting identity from a bearer token. Tokens are
// minted by the external auth collaborator; this package only parses and
// validates them (GenerateToken exists so tooling and tests can mint tokens
// with the shared secret).
package auth

import (
	"time"

	"github.com/expenso-app/expenso/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user on whose behalf a request executes.
type Identity struct {
	UserID    string
	Email     string
	CompanyID string
	Role      string
}

// Claims carries the registered claims plus the identity fields the API
// layer needs to scope queries.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	CompanyID string `json:"cid"`
	Role      string `json:"role"`
}

func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:    id.UserID,
		Email:     id.Email,
		CompanyID: id.CompanyID,
		Role:      id.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// IdentityFromToken parses and validates tokenString and returns the identity
// it carries. Any parse or validation failure maps to common.ErrInvalidToken.
func IdentityFromToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return &Identity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
	}, nil
}
