package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, exp, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "admin" || claims.Role != RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	t.Run("other secret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)
		token, _, _ := other.Issue("admin")
		if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenManager(testSecret, time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, _ := past.Issue("admin")
		if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := Claims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
