package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/expenso-app/expenso/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	id := Identity{UserID: "user-123", Email: "a@example.com", CompanyID: "acme", Role: "employee"}

	tok, err := GenerateToken(id, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := IdentityFromToken(tok, secret)
	if err != nil {
		t.Fatalf("IdentityFromToken error: %v", err)
	}
	if *got != id {
		t.Fatalf("identity mismatch: got %+v want %+v", got, id)
	}
}

func TestIdentityFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(Identity{UserID: "u1"}, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = IdentityFromToken(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestIdentityFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(Identity{UserID: "u2"}, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = IdentityFromToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestIdentityFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := IdentityFromToken("not.a.token", []byte("secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestIdentityFromToken_MissingUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken(Identity{}, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = IdentityFromToken(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
