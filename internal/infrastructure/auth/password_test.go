package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("s3cret")); err != nil {
		t.Fatalf("expected hash to match: %v", err)
	}
	if err := CheckHash(h); err != nil {
		t.Fatalf("expected valid hash: %v", err)
	}
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestCheckHash_PlainText(t *testing.T) {
	if err := CheckHash("hunter2"); err == nil {
		t.Fatalf("expected plain text to be rejected")
	}
}
