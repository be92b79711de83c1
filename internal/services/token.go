package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mockmate/interview-prep/internal/config"
	"mockmate/interview-prep/internal/models"
)

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the access/refresh token pair. Each kind has
// its own secret and lifetime; a token signed as one kind never verifies as
// the other.
type TokenService interface {
	Issue(kind TokenKind, user *models.User) (string, error)
	Verify(kind TokenKind, token string) (*TokenClaims, error)
}

type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg config.TokenConfig) TokenService {
	return &tokenService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

func (t *tokenService) params(kind TokenKind) ([]byte, time.Duration) {
	if kind == RefreshToken {
		return t.refreshSecret, t.refreshTTL
	}
	return t.accessSecret, t.accessTTL
}

// Issue implements TokenService.
func (t *tokenService) Issue(kind TokenKind, user *models.User) (string, error) {
	secret, ttl := t.params(kind)
	now := time.Now()

	claims := TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Verify implements TokenService. Malformed, tampered and expired tokens all
// come back as ErrInvalidToken; the cause is not surfaced to the client.
func (t *tokenService) Verify(kind TokenKind, tokenStr string) (*TokenClaims, error) {
	secret, _ := t.params(kind)

	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
