package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, jti, expires, err := GenerateToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if jti == "" {
		t.Fatal("expected non-empty jti")
	}
	if !expires.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", expires)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", claims.UserID)
	}
	if claims.ID != jti {
		t.Fatalf("jti mismatch: got %q want %q", claims.ID, jti)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, _, _, err := GenerateToken(1, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(tok, secret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, _, err := GenerateToken(2, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestGenerateToken_UniqueJTI(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	_, a, _, err := GenerateToken(1, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	_, b, _, err := GenerateToken(1, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct jtis, both %q", a)
	}
}
