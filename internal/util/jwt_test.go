package util

import (
	"testing"
	"time"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:      "test-access-secret",
		RefreshSecret:     "test-refresh-secret",
		Issuer:            "test",
		AccessExpireMins:  5,
		RefreshExpireDays: 1,
	}
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())

	token, err := issuer.IssueAccessToken(42)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v, want nil", err)
	}

	claims, err := issuer.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken() error = %v, want nil", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("claims.TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
}

func TestIssueAndVerifyRefreshToken(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())

	token, err := issuer.IssueRefreshToken(7)
	if err != nil {
		t.Fatalf("IssueRefreshToken() error = %v, want nil", err)
	}

	claims, err := issuer.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken() error = %v, want nil", err)
	}
	if claims.UserID != 7 {
		t.Errorf("claims.UserID = %d, want 7", claims.UserID)
	}
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())

	access, err := issuer.IssueAccessToken(1)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}

	// an access token must never pass refresh verification
	if _, err := issuer.VerifyRefreshToken(access); err == nil {
		t.Error("VerifyRefreshToken(access token) error = nil, want error")
	}

	refresh, err := issuer.IssueRefreshToken(1)
	if err != nil {
		t.Fatalf("IssueRefreshToken() error = %v", err)
	}
	if _, err := issuer.VerifyAccessToken(refresh); err == nil {
		t.Error("VerifyAccessToken(refresh token) error = nil, want error")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())

	token, err := issuer.IssueAccessToken(1)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := issuer.VerifyAccessToken(tampered); err == nil {
		t.Error("VerifyAccessToken(tampered) error = nil, want error")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	issuer := NewTokenIssuer(cfg)

	// sign an already-expired token with the real secret
	now := time.Now()
	claims := &Claims{
		UserID:    1,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := issuer.VerifyAccessToken(expired); err == nil {
		t.Error("VerifyAccessToken(expired) error = nil, want error")
	}
}

func TestRefreshTokensAreUniquePerIssue(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())

	a, err := issuer.IssueRefreshToken(1)
	if err != nil {
		t.Fatalf("IssueRefreshToken() error = %v", err)
	}
	b, err := issuer.IssueRefreshToken(1)
	if err != nil {
		t.Fatalf("IssueRefreshToken() error = %v", err)
	}
	if a == b {
		t.Error("two refresh tokens for the same user are identical, want unique jti")
	}
}
