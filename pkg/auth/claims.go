package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the slice of the access token the gateway cares about: a
// subject identifier and an optional role claim.
type TokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the derived view used for UI gating. It is not a security
// boundary; enforcement happens upstream.
type Identity struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// Decode extracts the claims without verifying the signature. The gateway
// only derives display identity from the token; the upstream API is the
// party that validates it.
func Decode(tokenString string) (*TokenClaims, error) {
	trimmed := strings.TrimSpace(tokenString)
	if trimmed == "" {
		return nil, fmt.Errorf("token is empty")
	}

	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(trimmed, claims); err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}
	return claims, nil
}

// DeriveIdentity decodes the token into an Identity. A malformed token yields
// the zero identity rather than an error, matching the silent-clear behavior
// of the token watcher.
func DeriveIdentity(tokenString, adminRole string) Identity {
	claims, err := Decode(tokenString)
	if err != nil {
		return Identity{}
	}
	return Identity{
		UserID:  claims.Subject,
		Role:    claims.Role,
		IsAdmin: claims.Role != "" && claims.Role == adminRole,
	}
}
