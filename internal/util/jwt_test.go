package util

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	userID := 42

	tok, err := GenerateJWT(userID, secret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	got, err := ParseJWT(tok, secret)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if got != userID {
		t.Fatalf("user ID mismatch: got %d want %d", got, userID)
	}
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := jwt.MapClaims{
		"id":  7,
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	_, err = ParseJWT(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT(1, "right-secret")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ParseJWT(tok, "wrong-secret"); err == nil {
		t.Fatalf("expected error for wrongly-signed token, got nil")
	}
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseJWT("not.a.jwt", "k"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestExtractToken_LiteralHeader(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/emails", nil)
	if got := ExtractToken(r); got != "" {
		t.Fatalf("expected empty token without header, got %q", got)
	}

	// clients send the raw token, not "Bearer <token>"
	r.Header.Set("Authorization", "raw-token-value")
	if got := ExtractToken(r); got != "raw-token-value" {
		t.Fatalf("expected literal header value, got %q", got)
	}
}
