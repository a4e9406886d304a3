package util

import (
	"testing"
	"time"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateJWT(42, "9876543210", "Asha", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ValidateJWT(tok, secret)
	if err != nil {
		t.Fatalf("ValidateJWT error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Phone != "9876543210" {
		t.Fatalf("phone mismatch: got %q", claims.Phone)
	}
	if claims.Name != "Asha" {
		t.Fatalf("name mismatch: got %q", claims.Name)
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT(1, "9876543210", "Asha", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ValidateJWT(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestValidateJWT_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateJWT(1, "9876543210", "Asha", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ValidateJWT(tok, secret); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestValidateJWT_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := ValidateJWT("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
