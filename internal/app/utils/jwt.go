package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"maritime_registry/internal/app/ds"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer signs and verifies the HS256 tokens handed out at login.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokenIssuer(key string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{key: []byte(key), ttl: ttl, now: time.Now}
}

// GenerateJWT creates a token carrying user id, role and issue time.
func (i *TokenIssuer) GenerateJWT(userID int, role string) (string, error) {
	now := i.now()
	claims := &ds.JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  strconv.Itoa(userID),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if i.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenStr, nil
}

// ParseJWT verifies the signature and expiry and returns the claims.
func (i *TokenIssuer) ParseJWT(tokenStr string) (*ds.JWTClaims, error) {
	claims := &ds.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return i.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
