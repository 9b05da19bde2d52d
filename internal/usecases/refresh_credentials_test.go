package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshCredentials_Execute(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 5 * time.Minute

	tests := map[string]struct {
		setup      func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession)
		wantReport RefreshReport
	}{
		"refreshes-token-expiring-within-window": {
			setup: func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession) {
				store.EXPECT().Sessions().Return([]domain.AuthSession{session}).Once()
				session.EXPECT().Token(mock.Anything).Return("old", nil).Once()
				inspector.EXPECT().ExpiresAt("old").Return(now.Add(2*time.Minute), nil).Once()
				session.EXPECT().Refresh(mock.Anything, "old").Return("new", nil).Once()
			},
			wantReport: RefreshReport{Inspected: 1, Refreshed: 1},
		},
		"leaves-fresh-token-alone": {
			setup: func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession) {
				store.EXPECT().Sessions().Return([]domain.AuthSession{session}).Once()
				session.EXPECT().Token(mock.Anything).Return("fresh", nil).Once()
				inspector.EXPECT().ExpiresAt("fresh").Return(now.Add(time.Hour), nil).Once()
			},
			wantReport: RefreshReport{Inspected: 1},
		},
		"refreshes-already-expired-token": {
			setup: func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession) {
				store.EXPECT().Sessions().Return([]domain.AuthSession{session}).Once()
				session.EXPECT().Token(mock.Anything).Return("expired", nil).Once()
				inspector.EXPECT().ExpiresAt("expired").Return(now.Add(-time.Minute), nil).Once()
				session.EXPECT().Refresh(mock.Anything, "expired").Return("new", nil).Once()
			},
			wantReport: RefreshReport{Inspected: 1, Refreshed: 1},
		},
		"drops-session-whose-refresh-fails": {
			setup: func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession) {
				store.EXPECT().Sessions().Return([]domain.AuthSession{session}).Once()
				session.EXPECT().Token(mock.Anything).Return("old", nil).Once()
				inspector.EXPECT().ExpiresAt("old").Return(now, nil).Once()
				session.EXPECT().Refresh(mock.Anything, "old").Return("", errors.New("refresh rejected")).Once()
				store.EXPECT().Drop(session).Once()
			},
			wantReport: RefreshReport{Inspected: 1, Dropped: 1},
		},
		"drops-session-without-token": {
			setup: func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession) {
				store.EXPECT().Sessions().Return([]domain.AuthSession{session}).Once()
				session.EXPECT().Token(mock.Anything).Return("", domain.NewAuthRequiredErr(domain.ProviderKind_Remote)).Once()
				store.EXPECT().Drop(session).Once()
			},
			wantReport: RefreshReport{Inspected: 1, Dropped: 1},
		},
		"skips-token-without-expiry": {
			setup: func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession) {
				store.EXPECT().Sessions().Return([]domain.AuthSession{session}).Once()
				session.EXPECT().Token(mock.Anything).Return("opaque", nil).Once()
				inspector.EXPECT().ExpiresAt("opaque").Return(time.Time{}, errors.New("malformed token")).Once()
			},
			wantReport: RefreshReport{Inspected: 1},
		},
		"no-sessions": {
			setup: func(store *domain.MockAuthSessionStore, inspector *domain.MockTokenInspector, session *domain.MockAuthSession) {
				store.EXPECT().Sessions().Return(nil).Once()
			},
			wantReport: RefreshReport{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain.NewMockAuthSessionStore(t)
			inspector := domain.NewMockTokenInspector(t)
			session := domain.NewMockAuthSession(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(now).Maybe()
			tt.setup(store, inspector, session)

			rc := NewRefreshCredentialsImpl(store, inspector, timeProvider, window)
			report, err := rc.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantReport, report)
		})
	}
}
