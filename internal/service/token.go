package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medicore-health/hms/config"
	apperrors "github.com/medicore-health/hms/internal/errors"
)

// Claims is the session payload carried by both token kinds, so a refresh
// can re-mint an access token with the same identity fields as the login.
type Claims struct {
	UserID   uint   `json:"id"`
	UserType string `json:"type"`
	Role     string `json:"role,omitempty"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the two token kinds with independent
// secrets. A refresh token can never pass access-token verification and
// vice versa.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	ledgerTTL     time.Duration
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessExpiry:  cfg.AccessExpiry,
		refreshExpiry: cfg.RefreshExpiry,
		ledgerTTL:     cfg.LedgerTTL,
	}
}

func (s *TokenService) GenerateAccessToken(userID uint, userType, role, name string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		Role:     role,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return signed, nil
}

// GenerateRefreshToken returns the signed token together with the ledger
// expiry the caller persists. The ledger expiry comes from its own TTL, not
// from the exp claim, so the ledger caps the token's lifetime even if the
// claim expiry is configured longer.
func (s *TokenService) GenerateRefreshToken(userID uint, userType, role, name string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ledgerTTL)
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		Role:     role,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.refreshSecret)
	if err != nil {
		return "", time.Time{}, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return signed, expiresAt, nil
}

func (s *TokenService) VerifyAccessToken(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.accessSecret)
}

func (s *TokenService) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.refreshSecret)
}

func (s *TokenService) verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.WrapError(apperrors.ErrInvalidOrExpiredToken, err)
	}
	return claims, nil
}
