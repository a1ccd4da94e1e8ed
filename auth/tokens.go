package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"mixie/rdx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func secret() []byte { return []byte(os.Getenv("JWT_SECRET")) }

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewToken issues a signed session token for email. The uuid JTI lets a
// single session be revoked on logout without touching others.
func NewToken(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseToken verifies a raw token and rejects revoked sessions.
func ParseToken(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	if revoked, err := isRevoked(ctx, claims.ID); err == nil && revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RevokeToken denylists a session's JTI in Redis until the token would have
// expired anyway.
func RevokeToken(ctx context.Context, claims *Claims) error {
	if rdx.Client == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return rdx.Client.Set(ctx, "revoked:"+claims.ID, "1", ttl).Err()
}

func isRevoked(ctx context.Context, jti string) (bool, error) {
	if rdx.Client == nil {
		return false, nil
	}
	n, err := rdx.Client.Exists(ctx, "revoked:"+jti).Result()
	return n > 0, err
}
