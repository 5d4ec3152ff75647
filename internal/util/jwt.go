package util

import (
	"time"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload for both token kinds.
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies the access/refresh token pair. It is
// constructed once from config; secrets and lifetimes are fixed for
// the process lifetime.
type TokenIssuer struct {
	cfg config.JWTConfig
}

func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

// IssueAccessToken returns a short-lived token proving identity for a
// single request window.
func (t *TokenIssuer) IssueAccessToken(userID uint) (string, error) {
	return t.sign(userID, TokenTypeAccess, t.cfg.AccessSecret, t.cfg.AccessTTL())
}

// IssueRefreshToken returns a long-lived token used to mint new pairs.
func (t *TokenIssuer) IssueRefreshToken(userID uint) (string, error) {
	return t.sign(userID, TokenTypeRefresh, t.cfg.RefreshSecret, t.cfg.RefreshTTL())
}

func (t *TokenIssuer) sign(userID uint, tokenType, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// unique jti so back-to-back rotations never mint the
			// same token string
			ID:        uuid.NewString(),
			Issuer:    t.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken validates an access token and returns its claims.
func (t *TokenIssuer) VerifyAccessToken(tokenStr string) (*Claims, error) {
	return t.verify(tokenStr, TokenTypeAccess, t.cfg.AccessSecret)
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (t *TokenIssuer) VerifyRefreshToken(tokenStr string) (*Claims, error) {
	return t.verify(tokenStr, TokenTypeRefresh, t.cfg.RefreshSecret)
}

func (t *TokenIssuer) verify(tokenStr, wantType, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, apperr.Auth("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != wantType {
		return nil, apperr.Auth("Invalid or expired token")
	}
	return claims, nil
}
