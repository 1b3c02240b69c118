package token

import (
	"time"

	authdomain "konasal-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims embedded in a session token: subject (user id), issued-at, expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// Remaining reports how long the token stays valid. Used as the blacklist
// TTL when the session is revoked early.
func (c *Claims) Remaining() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return time.Until(c.ExpiresAt.Time)
}

// Issuer creates and validates signed session tokens. The secret is shared
// process-wide via config.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL exposes the configured session lifetime for cookie max-age.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a session token for the given user id.
func (i *Issuer) Issue(userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates signature and expiry and returns the embedded claims.
// Every failure collapses to ErrUnauthorized; the caller never learns
// whether the token was forged, malformed or merely expired.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authdomain.ErrUnauthorized
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, authdomain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, authdomain.ErrUnauthorized
	}

	return claims, nil
}
