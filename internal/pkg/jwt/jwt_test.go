package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	SetSecret("test-secret-with-enough-entropy-123")

	token, err := Sign("admin", "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if token == "" {
		t.Fatal("Sign() returned empty token")
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("Parse() role = %q, want %q", claims.Role, "admin")
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Parse() email = %q, want %q", claims.Email, "admin@example.com")
	}
}

func TestParseExpired(t *testing.T) {
	SetSecret("test-secret-with-enough-entropy-123")

	token, err := Sign("admin", "admin@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Error("Parse() of expired token succeeded, want error")
	}
}

func TestParseWrongSecret(t *testing.T) {
	SetSecret("first-secret-first-secret-first")
	token, err := Sign("admin", "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	SetSecret("second-secret-second-secret-sec")
	if _, err := Parse(token); err == nil {
		t.Error("Parse() with wrong secret succeeded, want error")
	}
}

func TestParseGarbage(t *testing.T) {
	tests := []string{"", "not-a-token", "a.b.c"}
	for _, tok := range tests {
		if _, err := Parse(tok); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", tok)
		}
	}
}
