package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordsAPI_Definitions(t *testing.T) {
	tests := map[string]struct {
		word     string
		apiKey   string
		status   int
		body     string
		want     domain.DefinitionPayload
		wantKind domain.ProviderErrKind
		noCall   bool
	}{
		"definitions-found": {
			word:   "run",
			apiKey: "key",
			status: http.StatusOK,
			body:   `{"word":"run","definitions":[{"definition":"move fast","partOfSpeech":"verb"},{"definition":"a race","partOfSpeech":"noun"}]}`,
			want: domain.DefinitionPayload{
				Word: "run",
				Definitions: []domain.Definition{
					{Definition: "move fast", PartOfSpeech: "verb"},
					{Definition: "a race", PartOfSpeech: "noun"},
				},
			},
		},
		"empty-definitions": {
			word:     "zzz",
			apiKey:   "key",
			status:   http.StatusOK,
			body:     `{"word":"zzz","definitions":[]}`,
			wantKind: domain.ProviderErrKind_InvalidResponse,
		},
		"not-found": {
			word:     "qwerty",
			apiKey:   "key",
			status:   http.StatusNotFound,
			body:     `{"success":false,"message":"word not found"}`,
			wantKind: domain.ProviderErrKind_HttpError,
		},
		"rate-limited": {
			word:     "run",
			apiKey:   "key",
			status:   http.StatusTooManyRequests,
			wantKind: domain.ProviderErrKind_HttpError,
		},
		"no-api-key": {
			word:     "run",
			wantKind: domain.ProviderErrKind_Unavailable,
			noCall:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.noCall {
					t.Error("no call expected")
				}
				assert.Equal(t, "/words/"+tt.word+"/definitions", r.URL.Path)
				assert.Equal(t, tt.apiKey, r.Header.Get("x-rapidapi-key"))
				assert.Equal(t, "wordsapiv1.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			d := NewWordsAPI(server.URL, tt.apiKey, "wordsapiv1.p.rapidapi.com", server.Client())
			got, err := d.Definitions(context.Background(), tt.word)
			if tt.wantKind != "" {
				assert.True(t, domain.IsProviderErrKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordsAPI_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	d := NewWordsAPI(server.URL, "key", "host", server.Client())
	server.Close()

	_, err := d.Definitions(context.Background(), "run")
	assert.True(t, domain.IsProviderErrKind(err, domain.ProviderErrKind_NetworkError))
}

func TestInitDictionary_Initialize(t *testing.T) {
	ctx, err := InitDictionary{HttpClient: http.DefaultClient, URL: "http://localhost", APIHost: "host"}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	d, err := depend.Resolve[domain.Dictionary]()
	assert.NoError(t, err)
	assert.NotNil(t, d)
}
