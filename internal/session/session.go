package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gordonhealth/staff-portal/internal"
	"github.com/gordonhealth/staff-portal/internal/roster"
)

// Claims carried by an access token. The token is only the wire form of a
// session; validity additionally requires the session to still be registered,
// so logout genuinely revokes.
type Claims struct {
	EmployeeID string `json:"employee_id"`
	jwt.RegisteredClaims
}

// TokenGenerator signs and validates HS256 access tokens.
type TokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewTokenGenerator(secret string, ttl time.Duration) *TokenGenerator {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// GenerateToken creates a signed access token for the employee id.
func (g *TokenGenerator) GenerateToken(employeeID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(g.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   employeeID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.Secret)
}

// ValidateToken checks the signature and expiry and returns the claims.
func (g *TokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, internal.ErrInvalidToken
}

type ctxKey string

const userContextKey ctxKey = "sessionUser"

// ContextWithUser stores the authenticated identity on the request context.
func ContextWithUser(ctx context.Context, user *roster.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated identity, if any.
func UserFromContext(ctx context.Context) (*roster.User, bool) {
	user, ok := ctx.Value(userContextKey).(*roster.User)
	return user, ok
}
