package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if !VerifyPassword("hunter2hunter2", hash) {
		t.Fatal("VerifyPassword() rejected the correct password")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Fatal("VerifyPassword() accepted a wrong password")
	}
}

func TestHashSensitiveIsDeterministicDigest(t *testing.T) {
	a := HashSensitive("4242424242424242")
	b := HashSensitive("4242424242424242")
	if a != b {
		t.Fatal("HashSensitive() must be deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("HashSensitive() length = %d, want 64 hex chars", len(a))
	}
	if strings.Contains(a, "4242424242424242") {
		t.Fatal("HashSensitive() leaked the input")
	}
	if a == HashSensitive("4242424242424241") {
		t.Fatal("HashSensitive() collided on different inputs")
	}
}
