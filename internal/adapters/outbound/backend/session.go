package backend

import (
	"context"
	"sync"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
)

// tokenRefresher exchanges a refresh token for a new credential pair.
type tokenRefresher interface {
	refresh(ctx context.Context, refreshToken string) (refreshResponse, error)
}

// Session is the reader's backend credential.
// Refreshes are serialized: callers rejected with the same token share one refresh.
type Session struct {
	refresher tokenRefresher
	store     *SessionStore

	refreshMu sync.Mutex

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// NewSession creates a Session that refreshes through refresher.
func NewSession(accessToken, refreshToken string, refresher tokenRefresher) *Session {
	return &Session{
		refresher:    refresher,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}

// Token implements domain.AuthSession.
func (s *Session) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.accessToken == "" {
		return "", domain.NewAuthRequiredErr(domain.ProviderKind_Remote)
	}
	return s.accessToken, nil
}

// RefreshToken implements domain.AuthSession.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Credentials returns the current access and refresh tokens.
func (s *Session) Credentials() (accessToken, refreshToken string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

// Refresh implements domain.AuthSession.
// When staleToken is no longer current another caller already refreshed and its token is returned.
// A failed refresh clears the session so later calls require authentication.
func (s *Session) Refresh(ctx context.Context, staleToken string) (string, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.Credentials()
	if access != "" && access != staleToken {
		return access, nil
	}
	if refresh == "" {
		s.clear()
		return "", domain.NewAuthRequiredErr(domain.ProviderKind_Remote)
	}

	resp, err := s.refresher.refresh(ctx, refresh)
	if err != nil || resp.AccessToken == "" {
		s.clear()
		authErr := domain.NewAuthRequiredErr(domain.ProviderKind_Remote)
		if err != nil {
			authErr = authErr.WithCause(err)
		}
		return "", authErr
	}

	newRefresh := resp.RefreshToken
	if newRefresh == "" {
		newRefresh = refresh
	}
	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = newRefresh
	s.mu.Unlock()

	if s.store != nil && newRefresh != refresh {
		s.store.alias(newRefresh, s)
	}
	return resp.AccessToken, nil
}

func (s *Session) clear() {
	s.mu.Lock()
	s.accessToken = ""
	s.mu.Unlock()
}

// SessionStore implements domain.AuthSessionStore.
// Sessions are keyed by every refresh token they have held so that callers
// still presenting a rotated token join the refreshed session.
type SessionStore struct {
	refresher tokenRefresher

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore(refresher tokenRefresher) *SessionStore {
	return &SessionStore{
		refresher: refresher,
		sessions:  map[string]*Session{},
	}
}

// Open implements domain.AuthSessionStore.
// Without a refresh token the session is not shared.
func (s *SessionStore) Open(accessToken, refreshToken string) domain.AuthSession {
	if refreshToken == "" {
		return NewSession(accessToken, "", s.refresher)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[refreshToken]; ok {
		existing.adopt(accessToken)
		return existing
	}
	session := NewSession(accessToken, refreshToken, s.refresher)
	session.store = s
	s.sessions[refreshToken] = session
	return session
}

// adopt fills a cleared session with a token presented by a new request.
func (s *Session) adopt(accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accessToken == "" {
		s.accessToken = accessToken
	}
}

// Sessions implements domain.AuthSessionStore.
func (s *SessionStore) Sessions() []domain.AuthSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[*Session]struct{}{}
	out := make([]domain.AuthSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		if _, ok := seen[session]; ok {
			continue
		}
		seen[session] = struct{}{}
		out = append(out, session)
	}
	return out
}

// Drop implements domain.AuthSessionStore.
func (s *SessionStore) Drop(session domain.AuthSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, existing := range s.sessions {
		if domain.AuthSession(existing) == session {
			delete(s.sessions, key)
		}
	}
}

func (s *SessionStore) alias(refreshToken string, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[refreshToken] = session
}
