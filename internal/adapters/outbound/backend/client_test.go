package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, server.Client(), log.New(io.Discard, "", 0))
}

func TestClient_Synonyms(t *testing.T) {
	tests := map[string]struct {
		status   int
		body     string
		want     []string
		wantKind domain.ProviderErrKind
	}{
		"success": {
			status: http.StatusOK,
			body:   `{"success":true,"synonyms":["glad","joyful"]}`,
			want:   []string{"glad", "joyful"},
		},
		"success-false": {
			status:   http.StatusOK,
			body:     `{"success":false,"synonyms":["glad"]}`,
			wantKind: domain.ProviderErrKind_InvalidResponse,
		},
		"empty-list": {
			status:   http.StatusOK,
			body:     `{"success":true,"synonyms":[]}`,
			wantKind: domain.ProviderErrKind_InvalidResponse,
		},
		"malformed": {
			status:   http.StatusOK,
			body:     `not json`,
			wantKind: domain.ProviderErrKind_InvalidResponse,
		},
		"server-error": {
			status:   http.StatusInternalServerError,
			body:     `boom`,
			wantKind: domain.ProviderErrKind_HttpError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/books/synonyms", r.URL.Path)
				assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
				var body wordRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, wordRequest{Word: "happy", Language: "English"}, body)
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			})

			got, err := client.Synonyms(context.Background(), NewSession("access", "refresh", client), "happy")
			if tt.wantKind != "" {
				assert.True(t, domain.IsProviderErrKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_HttpErrorCarriesStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.TranslateWord(context.Background(), NewSession("access", "", client), "hola", "English")
	var pe *domain.ProviderErr
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, domain.ProviderErrKind_HttpError, pe.Kind)
	assert.Equal(t, http.StatusBadGateway, pe.Status)
}

func TestClient_Definition(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/definition", r.URL.Path)
		_, _ = fmt.Fprint(w, `{"success":true,"word":"run","definition":"(verb) To move fast."}`)
	})

	got, err := client.Definition(context.Background(), NewSession("access", "", client), "run")
	require.NoError(t, err)
	assert.Equal(t, domain.BackendDefinition{Word: "run", Definition: "(verb) To move fast."}, got)
}

func TestClient_TranslateWord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/translate-word", r.URL.Path)
		var body translateWordRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, translateWordRequest{Word: "hola", CurrentLanguage: "auto", ToLanguage: "English"}, body)
		_, _ = fmt.Fprint(w, `{"translated_word":"hello"}`)
	})

	got, err := client.TranslateWord(context.Background(), NewSession("access", "", client), "hola", "English")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestClient_MissingCredentialMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.Synonyms(context.Background(), nil, "happy")
	assert.True(t, domain.IsAuthRequired(err))

	_, err = client.StreamTransform(context.Background(), NewSession("", "refresh", client),
		domain.TransformRequest{Capability: domain.Capability_Simplify, Text: "x"}, func(string) error { return nil })
	assert.True(t, domain.IsAuthRequired(err))
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_RefreshesOnUnauthorizedAndReplays(t *testing.T) {
	var refreshes atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshes.Add(1)
			var body refreshRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "r1", body.RefreshToken)
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = fmt.Fprint(w, `{"access_token":"fresh","refresh_token":"r2","user":{"id":1}}`)
		case "/books/simplify/stream":
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			var body textRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Hard text.", body.Text)
			_, _ = fmt.Fprint(w, "data: Easy \ndata: text.\ndata: [DONE]\n")
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	store := NewSessionStore(client)
	session := store.Open("stale", "r1")

	var chunks []string
	text, err := client.StreamTransform(context.Background(), session,
		domain.TransformRequest{Capability: domain.Capability_Simplify, Text: "Hard text."},
		func(c string) error {
			chunks = append(chunks, c)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, "Easy text.", text)
	assert.Equal(t, []string{"Easy ", "text."}, chunks)
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, "r2", session.RefreshToken())
	assert.Same(t, session, store.Open("fresh", "r2"))
}

func TestClient_RefreshFailureRequiresAuth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	session := NewSession("stale", "r1", client)

	_, err := client.Synonyms(context.Background(), session, "happy")
	assert.True(t, domain.IsAuthRequired(err))

	_, err = session.Token(context.Background())
	assert.True(t, domain.IsAuthRequired(err))
}

func TestClient_StreamTransform(t *testing.T) {
	tests := map[string]struct {
		req      domain.TransformRequest
		path     string
		wantBody string
		stream   string
		wantText string
		wantKind domain.ProviderErrKind
	}{
		"translate": {
			req:      domain.TransformRequest{Capability: domain.Capability_Translate, Text: "Hola mundo", TargetLanguage: "English"},
			path:     "/books/translate/stream",
			wantBody: `{"text":"Hola mundo","current_language":"auto","to_language":"English"}`,
			stream:   "data: Hello\ndata:  world\ndata: [DONE]\n",
			wantText: "Hello world",
		},
		"explain": {
			req:      domain.TransformRequest{Capability: domain.Capability_Explain, Text: "x"},
			path:     "/books/explain/stream",
			wantBody: `{"text":"x"}`,
			stream:   "data: because\ndata: [DONE]\n",
			wantText: "because",
		},
		"summarize-error-event": {
			req:      domain.TransformRequest{Capability: domain.Capability_Summarize, Text: "x"},
			path:     "/books/summarize/stream",
			wantBody: `{"text":"x"}`,
			stream:   "data: par\ndata: Error: quota exceeded\n",
			wantKind: domain.ProviderErrKind_InvocationError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, tt.wantBody, string(body))
				_, _ = fmt.Fprint(w, tt.stream)
			})

			text, err := client.StreamTransform(context.Background(), NewSession("access", "", client), tt.req,
				func(string) error { return nil })
			if tt.wantKind != "" {
				assert.True(t, domain.IsProviderErrKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestClient_StreamTransform_RejectsUnstreamedCapability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no call expected")
	})
	_, err := client.StreamTransform(context.Background(), NewSession("access", "", client),
		domain.TransformRequest{Capability: domain.Capability_Synonym, Text: "x"}, func(string) error { return nil })
	var ve *domain.ValidationErr
	assert.ErrorAs(t, err, &ve)
}

func TestClient_StreamChat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/chat/stream", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"message":"Who is Ahab?","context":"ctx","book_id":"b1"}`, string(body))
		flusher := w.(http.Flusher)
		_, _ = fmt.Fprint(w, "data: The capt")
		flusher.Flush()
		_, _ = fmt.Fprint(w, "ain.\ndata: [DONE]\n")
	})

	var chunks []string
	text, err := client.StreamChat(context.Background(), NewSession("access", "", client),
		domain.BookChatRequest{Message: "Who is Ahab?", Context: "ctx", BookID: "b1"},
		func(c string) error {
			chunks = append(chunks, c)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, "The captain.", text)
	assert.Equal(t, []string{"The captain."}, chunks)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := NewClient(server.URL, server.Client(), log.New(io.Discard, "", 0))
	server.Close()

	_, err := client.Synonyms(context.Background(), NewSession("access", "", client), "happy")
	assert.True(t, domain.IsProviderErrKind(err, domain.ProviderErrKind_NetworkError), "got %v", err)
}

func TestInitBackend_Initialize(t *testing.T) {
	i := InitBackend{
		HttpClient: http.DefaultClient,
		Logger:     log.New(io.Discard, "", 0),
		BackendURL: "http://localhost:8000",
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	_, err = depend.Resolve[domain.RemoteBackend]()
	assert.NoError(t, err)
	_, err = depend.Resolve[domain.AuthSessionStore]()
	assert.NoError(t, err)
	_, err = depend.Resolve[domain.TokenInspector]()
	assert.NoError(t, err)
}
