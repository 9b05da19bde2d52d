package backend

import (
	"context"
	"log"
	"net/http"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitBackend registers the backend client, the session store and the token inspector.
type InitBackend struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	BackendURL string       `config:"DUOREAD_BACKEND_URL" default:"https://zainattiq-duoread.hf.space"`
}

// Initialize registers the backend dependencies in the dependency container.
func (i InitBackend) Initialize(ctx context.Context) (context.Context, error) {
	client := NewClient(i.BackendURL, i.HttpClient, i.Logger)
	depend.Register[domain.RemoteBackend](client)
	depend.Register[domain.AuthSessionStore](NewSessionStore(client))
	depend.Register[domain.TokenInspector](NewJWTInspector())
	return ctx, nil
}
