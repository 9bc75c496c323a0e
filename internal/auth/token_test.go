package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken("secret", "user-123", "ada@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}
	claims, err := VerifyToken("secret", token)
	if err != nil {
		t.Fatalf("VerifyToken() unexpected error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Email != "ada@example.com" {
		t.Fatalf("VerifyToken() returned %+v", claims)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret-a", "user-123", "ada@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	if _, err := VerifyToken("secret-b", token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("VerifyToken() = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := IssueToken("secret", "user-123", "ada@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	if _, err := VerifyToken("secret", token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("VerifyToken() = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	if _, err := VerifyToken("secret", "not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("VerifyToken() = %v, want ErrTokenMalformed", err)
	}
}
