package domain

import (
	"context"
	"time"
)

// AuthSession holds the reader's backend credential and is passed explicitly to every remote call.
type AuthSession interface {
	// Token returns the current access token, or an AuthRequired error when there is none.
	Token(ctx context.Context) (string, error)
	// Refresh exchanges the refresh token for a new access token.
	// Callers pass the token that was rejected so a refresh already done by a concurrent caller is reused.
	Refresh(ctx context.Context, staleToken string) (string, error)
	// RefreshToken identifies the session.
	RefreshToken() string
}

// AuthSessionStore shares sessions between concurrent requests of the same reader.
type AuthSessionStore interface {
	// Open returns the session keyed by refreshToken, creating it when absent.
	Open(accessToken, refreshToken string) AuthSession
	// Sessions returns a snapshot of every open session.
	Sessions() []AuthSession
	// Drop forgets the session.
	Drop(session AuthSession)
}

// TokenInspector reads claims from an access token without verifying it.
type TokenInspector interface {
	ExpiresAt(token string) (time.Time, error)
}

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}
