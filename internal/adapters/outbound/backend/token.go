package backend

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// JWTInspector implements domain.TokenInspector.
// Signatures are not checked; the backend remains the authority on validity.
type JWTInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector creates a JWTInspector.
func NewJWTInspector() JWTInspector {
	return JWTInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the exp claim of token.
func (i JWTInspector) ExpiresAt(token string) (time.Time, error) {
	parsed, _, err := i.parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
