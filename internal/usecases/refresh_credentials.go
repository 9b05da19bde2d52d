package usecases

import (
	"context"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// RefreshReport counts the sessions touched by one refresh pass.
type RefreshReport struct {
	Inspected int
	Refreshed int
	Dropped   int
}

// RefreshCredentials defines the interface for the proactive credential refresh use case.
type RefreshCredentials interface {
	// Execute refreshes every open session whose access token expires within the warning window.
	Execute(ctx context.Context) (RefreshReport, error)
}

// RefreshCredentialsImpl is the implementation of RefreshCredentials.
type RefreshCredentialsImpl struct {
	store        domain.AuthSessionStore
	inspector    domain.TokenInspector
	timeProvider domain.CurrentTimeProvider
	window       time.Duration
}

// NewRefreshCredentialsImpl creates a new instance of RefreshCredentialsImpl.
func NewRefreshCredentialsImpl(
	store domain.AuthSessionStore,
	inspector domain.TokenInspector,
	timeProvider domain.CurrentTimeProvider,
	window time.Duration,
) RefreshCredentialsImpl {
	return RefreshCredentialsImpl{
		store:        store,
		inspector:    inspector,
		timeProvider: timeProvider,
		window:       window,
	}
}

// Execute implements RefreshCredentials.
// Sessions without a token, or whose refresh is rejected, are dropped from the store.
// Tokens without a readable expiry are left alone.
func (rc RefreshCredentialsImpl) Execute(ctx context.Context) (RefreshReport, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var report RefreshReport
	deadline := rc.timeProvider.Now().Add(rc.window)

	for _, session := range rc.store.Sessions() {
		if err := spanCtx.Err(); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return report, err
		}
		report.Inspected++

		token, err := session.Token(spanCtx)
		if err != nil {
			rc.store.Drop(session)
			report.Dropped++
			continue
		}

		expiresAt, err := rc.inspector.ExpiresAt(token)
		if err != nil {
			span.RecordError(err)
			continue
		}
		if expiresAt.After(deadline) {
			continue
		}

		if _, err := session.Refresh(spanCtx, token); err != nil {
			span.RecordError(err)
			rc.store.Drop(session)
			report.Dropped++
			continue
		}
		report.Refreshed++
	}

	span.SetAttributes(
		attribute.Int("sessions.inspected", report.Inspected),
		attribute.Int("sessions.refreshed", report.Refreshed),
		attribute.Int("sessions.dropped", report.Dropped),
	)
	telemetry.RecordErrorAndStatus(span, nil)
	return report, nil
}

// InitRefreshCredentials initializes the RefreshCredentials use case.
type InitRefreshCredentials struct {
	Store        domain.AuthSessionStore    `resolve:""`
	Inspector    domain.TokenInspector      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Window       time.Duration              `config:"TOKEN_REFRESH_WINDOW" default:"5m"`
}

// Initialize registers RefreshCredentials in the dependency container.
func (i InitRefreshCredentials) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshCredentials](NewRefreshCredentialsImpl(i.Store, i.Inspector, i.TimeProvider, i.Window))
	return ctx, nil
}
