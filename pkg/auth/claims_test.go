package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, subject, role string) string {
	t.Helper()
	claims := TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDecodeExtractsClaims(t *testing.T) {
	token := signedToken(t, "user-42", "customer")

	claims, err := Decode(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Fatalf("expected subject user-42, got %q", claims.Subject)
	}
	if claims.Role != "customer" {
		t.Fatalf("expected role customer, got %q", claims.Role)
	}
}

func TestDecodeRejectsEmptyAndGarbage(t *testing.T) {
	if _, err := Decode(""); err == nil {
		t.Fatal("expected error for empty token")
	}
	if _, err := Decode("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestDeriveIdentityAdminRole(t *testing.T) {
	identity := DeriveIdentity(signedToken(t, "user-1", "admin"), "admin")
	if !identity.IsAdmin {
		t.Fatal("admin role claim should set IsAdmin")
	}
	if identity.UserID != "user-1" {
		t.Fatalf("unexpected user id %q", identity.UserID)
	}
}

func TestDeriveIdentityNonAdminRoles(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{name: "customer role", role: "customer"},
		{name: "empty role", role: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := DeriveIdentity(signedToken(t, "user-1", tt.role), "admin")
			if identity.IsAdmin {
				t.Fatalf("role %q must not grant admin", tt.role)
			}
		})
	}
}

func TestDeriveIdentityMalformedTokenIsZero(t *testing.T) {
	identity := DeriveIdentity("garbage", "admin")
	if identity.UserID != "" || identity.IsAdmin {
		t.Fatalf("malformed token should derive zero identity, got %+v", identity)
	}
}
