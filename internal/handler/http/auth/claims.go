// Package auth resolves the request principal from a bearer JWT.
//
// Tokens are issued elsewhere; this package only verifies them. The token
// names the user, but roles are reloaded from the user store on every
// request so a revoked role stops working immediately.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"articlehub/internal/domain/entity"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the JWT claims the API understands. Subject carries the user id.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// ParseToken verifies an HS256 token and returns its claims. exp is required.
func ParseToken(tokenString string, secret []byte, now time.Time) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !tok.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingToken
	}
	tok := strings.TrimSpace(header[len(prefix):])
	if tok == "" {
		return "", ErrMissingToken
	}
	return tok, nil
}

// principalFromClaims builds a principal from token data alone.
// Unknown role names are ignored.
func principalFromClaims(c *Claims) (entity.Principal, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return entity.Principal{}, fmt.Errorf("%w: invalid sub claim", ErrInvalidToken)
	}
	p := entity.Principal{UserID: id}
	for _, name := range c.Roles {
		if r, err := entity.ParseRole(name); err == nil {
			p.Roles = append(p.Roles, r)
		}
	}
	return p, nil
}
