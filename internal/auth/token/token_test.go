package token

import (
	"testing"
	"time"

	authdomain "konasal-backend/internal/auth/domain"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	signed, expiresAt, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	claims, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "user-123")
	}
	if claims.IssuedAt == nil {
		t.Fatalf("expected issued-at claim")
	}
}

func TestParseExpired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", -1*time.Second)

	signed, _, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := issuer.Parse(signed); err != authdomain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	t.Parallel()

	signed, _, err := NewIssuer("right-secret", time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewIssuer("wrong-secret", time.Hour).Parse(signed); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer("k", time.Hour).Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", time.Hour)
	signed, _, err := issuer.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	remaining := claims.Remaining()
	if remaining <= 0 || remaining > time.Hour {
		t.Fatalf("remaining out of range: %v", remaining)
	}
}
