package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := GenerateToken("secret", "acme", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	sub, err := ParseToken("secret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != "acme" {
		t.Fatalf("sub=%q want acme", sub)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	tok, _ := GenerateToken("secret", "acme", time.Hour)
	if _, err := ParseToken("other", tok); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestGenerate_NonPositiveTTLNeverExpires(t *testing.T) {
	tok, _ := GenerateToken("secret", "acme", -time.Minute)
	if _, err := ParseToken("secret", tok); err != nil {
		t.Fatalf("parse: %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "acme",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("secret", tok); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestGenerate_RequiresSecretAndProvider(t *testing.T) {
	if _, err := GenerateToken("", "acme", 0); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := GenerateToken("secret", "", 0); err == nil {
		t.Fatalf("expected error for empty provider")
	}
}
