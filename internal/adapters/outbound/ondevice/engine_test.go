package ondevice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime is an in-memory local runtime.
type fakeRuntime struct {
	mu        sync.Mutex
	installed []string
	pullLines []string
	answer    string
	chunks    []string
	chats     []ChatRequest
	unloads   int
	down      bool
	// streamGate holds streamed answers open after the first chunk until closed.
	streamGate    chan struct{}
	streamStarted chan struct{}
}

func (f *fakeRuntime) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tags", func(w http.ResponseWriter, r *http.Request) {
		if f.down {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		resp := TagsResponse{}
		for _, m := range f.installed {
			resp.Models = append(resp.Models, Model{Name: m, Model: m})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("POST /api/pull", func(w http.ResponseWriter, r *http.Request) {
		var req PullRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		for _, l := range f.pullLines {
			_, _ = fmt.Fprintln(w, l)
		}
		f.mu.Lock()
		f.installed = append(f.installed, req.Model)
		f.mu.Unlock()
	})
	mux.HandleFunc("POST /api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.chats = append(f.chats, req)
		f.mu.Unlock()
		if !req.Stream {
			_ = json.NewEncoder(w).Encode(ChatResponse{Message: ChatMessage{Role: "assistant", Content: f.answer}, Done: true})
			return
		}
		for i, c := range f.chunks {
			_ = json.NewEncoder(w).Encode(ChatResponse{Message: ChatMessage{Role: "assistant", Content: c}})
			if i == 0 && f.streamGate != nil {
				w.(http.Flusher).Flush()
				close(f.streamStarted)
				<-f.streamGate
			}
		}
		_ = json.NewEncoder(w).Encode(ChatResponse{Done: true})
	})
	mux.HandleFunc("POST /api/generate", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.unloads++
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func newTestEngine(t *testing.T, f *fakeRuntime, allowDownload bool) *Engine {
	t.Helper()
	server := httptest.NewServer(f.handler(t))
	t.Cleanup(server.Close)
	return NewEngine(NewRuntimeClient(server.URL, server.Client()), log.New(io.Discard, "", 0), "gemma3:1b", "", allowDownload)
}

func TestEngine_Availability(t *testing.T) {
	tests := map[string]struct {
		runtime       *fakeRuntime
		allowDownload bool
		req           domain.EngineRequest
		want          domain.Availability
	}{
		"installed": {
			runtime: &fakeRuntime{installed: []string{"gemma3:1b"}},
			req:     domain.EngineRequest{Family: domain.EngineFamily_Writer},
			want:    domain.Availability_Available,
		},
		"other-tag-installed": {
			runtime: &fakeRuntime{installed: []string{"gemma3:latest"}},
			req:     domain.EngineRequest{Family: domain.EngineFamily_Rewriter},
			want:    domain.Availability_Unavailable,
		},
		"missing-with-downloads-allowed": {
			runtime:       &fakeRuntime{},
			allowDownload: true,
			req:           domain.EngineRequest{Family: domain.EngineFamily_Summarizer},
			want:          domain.Availability_Downloadable,
		},
		"missing-with-downloads-disabled": {
			runtime: &fakeRuntime{},
			req:     domain.EngineRequest{Family: domain.EngineFamily_Prompt},
			want:    domain.Availability_Unavailable,
		},
		"runtime-down": {
			runtime:       &fakeRuntime{down: true},
			allowDownload: true,
			req:           domain.EngineRequest{Family: domain.EngineFamily_Prompt},
			want:          domain.Availability_Unavailable,
		},
		"translation-without-languages": {
			runtime: &fakeRuntime{installed: []string{"gemma3:1b"}},
			req:     domain.EngineRequest{Family: domain.EngineFamily_Translation},
			want:    domain.Availability_Unavailable,
		},
		"translation-with-languages": {
			runtime: &fakeRuntime{installed: []string{"gemma3:1b"}},
			req:     domain.EngineRequest{Family: domain.EngineFamily_Translation, SourceLanguage: "en", TargetLanguage: "es"},
			want:    domain.Availability_Available,
		},
		"unknown-family": {
			runtime: &fakeRuntime{installed: []string{"gemma3:1b"}},
			req:     domain.EngineRequest{Family: domain.EngineFamily_None},
			want:    domain.Availability_Unavailable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			engine := newTestEngine(t, tt.runtime, tt.allowDownload)
			got, err := engine.Availability(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Availability_DownloadingWhilePullInFlight(t *testing.T) {
	engine := newTestEngine(t, &fakeRuntime{}, true)
	engine.pulling["gemma3:1b"] = struct{}{}

	got, err := engine.Availability(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Writer})
	require.NoError(t, err)
	assert.Equal(t, domain.Availability_Downloading, got)
}

func TestEngine_Create(t *testing.T) {
	t.Run("pulls-missing-model-and-reports-progress", func(t *testing.T) {
		runtime := &fakeRuntime{pullLines: []string{
			`{"status":"pulling manifest"}`,
			`{"status":"pulling","digest":"sha256:a","total":300,"completed":0}`,
			`{"status":"pulling","digest":"sha256:b","total":100,"completed":100}`,
			`{"status":"pulling","digest":"sha256:a","total":300,"completed":150}`,
			`{"status":"success"}`,
		}}
		engine := newTestEngine(t, runtime, true)

		var percents []int
		session, err := engine.Create(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Summarizer},
			domain.SessionOptions{SummaryType: "tldr"}, func(p domain.DownloadProgress) {
				percents = append(percents, p.Percent())
			})
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, []int{0, 25, 62, 100}, percents)
		assert.Empty(t, engine.pulling)
	})

	t.Run("pull-error-is-download-failed", func(t *testing.T) {
		engine := newTestEngine(t, &fakeRuntime{pullLines: []string{`{"error":"no space left"}`}}, true)
		_, err := engine.Create(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Writer}, domain.SessionOptions{}, nil)
		assert.True(t, domain.IsProviderErrKind(err, domain.ProviderErrKind_DownloadFailed))
	})

	t.Run("downloads-disabled", func(t *testing.T) {
		engine := newTestEngine(t, &fakeRuntime{}, false)
		_, err := engine.Create(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Writer}, domain.SessionOptions{}, nil)
		assert.True(t, domain.IsProviderErrKind(err, domain.ProviderErrKind_Unavailable))
	})
}

func TestSession_PromptStreamDestroy(t *testing.T) {
	runtime := &fakeRuntime{
		installed: []string{"gemma3:1b"},
		answer:    `["glad","joyful"]`,
		chunks:    []string{"Simple ", "", "text."},
	}
	engine := newTestEngine(t, runtime, false)

	session, err := engine.Create(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Rewriter},
		domain.SessionOptions{Tone: "as-is", Format: "plain-text", SharedContext: "Use simple words."}, nil)
	require.NoError(t, err)

	answer, err := session.Prompt(context.Background(), domain.PromptInput{
		Text:           "happy",
		ResponseSchema: map[string]any{"type": "array"},
	})
	require.NoError(t, err)
	assert.Equal(t, `["glad","joyful"]`, answer)

	var chunks []string
	err = session.Stream(context.Background(), domain.PromptInput{Text: "Hard text.", Context: "Simplify this text."},
		func(c string) error {
			chunks = append(chunks, c)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"Simple ", "text."}, chunks)

	require.Len(t, runtime.chats, 2)
	prompt := runtime.chats[0]
	assert.JSONEq(t, `{"type":"array"}`, string(prompt.Format))
	assert.Equal(t, "system", prompt.Messages[0].Role)
	assert.Contains(t, prompt.Messages[0].Content, "Use simple words.")
	assert.NotContains(t, prompt.Messages[0].Content, "tone")
	stream := runtime.chats[1]
	assert.Equal(t, "Simplify this text.\n\nHard text.", stream.Messages[1].Content)

	require.NoError(t, session.Destroy(context.Background()))
	require.NoError(t, session.Destroy(context.Background()))
	assert.Equal(t, 1, runtime.unloads)

	_, err = session.Prompt(context.Background(), domain.PromptInput{Text: "again"})
	assert.ErrorIs(t, err, ErrSessionDestroyed)
}

func TestSession_DestroyKeepsModelForLiveSessions(t *testing.T) {
	runtime := &fakeRuntime{
		installed:     []string{"gemma3:1b"},
		chunks:        []string{"Once ", "upon a time."},
		streamGate:    make(chan struct{}),
		streamStarted: make(chan struct{}),
	}
	engine := newTestEngine(t, runtime, false)

	writer, err := engine.Create(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Writer}, domain.SessionOptions{}, nil)
	require.NoError(t, err)
	prompt, err := engine.Create(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Prompt}, domain.SessionOptions{}, nil)
	require.NoError(t, err)

	streamDone := make(chan error, 1)
	go func() {
		streamDone <- writer.Stream(context.Background(), domain.PromptInput{Text: "Tell a story."}, func(string) error { return nil })
	}()
	<-runtime.streamStarted

	require.NoError(t, prompt.Destroy(context.Background()))
	require.NoError(t, prompt.Destroy(context.Background()))
	runtime.mu.Lock()
	assert.Equal(t, 0, runtime.unloads, "model unloaded while another session was streaming")
	runtime.mu.Unlock()

	close(runtime.streamGate)
	require.NoError(t, <-streamDone)

	require.NoError(t, writer.Destroy(context.Background()))
	runtime.mu.Lock()
	assert.Equal(t, 1, runtime.unloads)
	runtime.mu.Unlock()
}

func TestSession_DestroyConcurrentSessions(t *testing.T) {
	runtime := &fakeRuntime{installed: []string{"gemma3:1b"}}
	engine := newTestEngine(t, runtime, false)

	const sessions = 20
	created := make([]domain.ProviderSession, 0, sessions)
	for range sessions {
		s, err := engine.Create(context.Background(), domain.EngineRequest{Family: domain.EngineFamily_Rewriter}, domain.SessionOptions{}, nil)
		require.NoError(t, err)
		created = append(created, s)
	}

	var wg sync.WaitGroup
	for _, s := range created {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Destroy(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, runtime.unloads)
}

func TestSystemPrompt(t *testing.T) {
	got := systemPrompt(domain.EngineRequest{Family: domain.EngineFamily_Translation, SourceLanguage: "en", TargetLanguage: "fr"},
		domain.SessionOptions{Format: "plain-text"})
	assert.Equal(t, "Translate the user's text from en to fr. Answer with the translation only.\nAnswer in plain text without markdown.", got)

	got = systemPrompt(domain.EngineRequest{Family: domain.EngineFamily_Writer}, domain.SessionOptions{Tone: "formal", Length: "short"})
	assert.Equal(t, "Write the requested text.\nUse a formal tone.\nKeep the answer short.", got)
}

func TestInitOnDeviceEngine_Initialize(t *testing.T) {
	i := InitOnDeviceEngine{
		HttpClient: http.DefaultClient,
		Logger:     log.New(io.Discard, "", 0),
		EngineURL:  "http://localhost:11434",
		Model:      "gemma3:1b",
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	engine, err := depend.Resolve[domain.OnDeviceEngine]()
	assert.NoError(t, err)
	assert.NotNil(t, engine)
}
