package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the admin session token.
// The token is a signed JWT verified on every protected request; a bare
// flag cookie would be forgeable by the client.
const SessionCookieName = "admin_session"

var ErrInvalidToken = errors.New("invalid or expired session token")

// SessionClaims are the claims embedded in an admin session token.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a signed session token for an admin.
func GenerateSessionToken(username, secret string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
