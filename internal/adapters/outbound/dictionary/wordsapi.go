// Package dictionary looks up word definitions in WordsAPI over RapidAPI.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type definitionsResponse struct {
	Word        string              `json:"word"`
	Definitions []domain.Definition `json:"definitions"`
}

// WordsAPI implements domain.Dictionary.
type WordsAPI struct {
	baseURL string
	apiKey  string
	apiHost string
	http    *http.Client
}

// NewWordsAPI creates a WordsAPI client.
func NewWordsAPI(baseURL, apiKey, apiHost string, httpClient *http.Client) WordsAPI {
	return WordsAPI{
		baseURL: baseURL,
		apiKey:  apiKey,
		apiHost: apiHost,
		http:    httpClient,
	}
}

// Definitions implements domain.Dictionary.
// Every failure, including an empty definition list, is an error.
func (d WordsAPI) Definitions(ctx context.Context, word string) (domain.DefinitionPayload, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("word", word),
	))
	defer span.End()

	payload, err := d.lookup(spanCtx, strings.TrimSpace(word))
	telemetry.RecordErrorAndStatus(span, err)
	return payload, err
}

func (d WordsAPI) lookup(ctx context.Context, word string) (domain.DefinitionPayload, error) {
	if d.apiKey == "" {
		return domain.DefinitionPayload{}, domain.NewProviderErr(domain.ProviderErrKind_Unavailable, domain.ProviderKind_Dictionary, "no API key configured")
	}
	if word == "" {
		return domain.DefinitionPayload{}, domain.NewValidationErr("word cannot be empty")
	}

	u, err := url.JoinPath(d.baseURL, "words", url.PathEscape(word), "definitions")
	if err != nil {
		return domain.DefinitionPayload{}, fmt.Errorf("failed to build URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.DefinitionPayload{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", d.apiKey)
	req.Header.Set("x-rapidapi-host", d.apiHost)

	resp, err := d.http.Do(req)
	if err != nil {
		return domain.DefinitionPayload{}, domain.NewProviderErr(domain.ProviderErrKind_NetworkError, domain.ProviderKind_Dictionary, "dictionary unreachable").WithCause(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.DefinitionPayload{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.DefinitionPayload{}, domain.NewHttpErr(domain.ProviderKind_Dictionary, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out definitionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.DefinitionPayload{}, domain.NewProviderErr(domain.ProviderErrKind_InvalidResponse, domain.ProviderKind_Dictionary, "malformed response").WithCause(err)
	}
	if len(out.Definitions) == 0 {
		return domain.DefinitionPayload{}, domain.NewProviderErr(domain.ProviderErrKind_InvalidResponse, domain.ProviderKind_Dictionary, "no definitions found")
	}
	if out.Word == "" {
		out.Word = word
	}
	return domain.DefinitionPayload{Word: out.Word, Definitions: out.Definitions}, nil
}

// InitDictionary registers the WordsAPI dictionary.
type InitDictionary struct {
	HttpClient *http.Client `resolve:""`
	URL        string       `config:"WORDSAPI_URL" default:"https://wordsapiv1.p.rapidapi.com"`
	APIKey     string       `config:"WORDSAPI_KEY" default:""`
	APIHost    string       `config:"WORDSAPI_HOST" default:"wordsapiv1.p.rapidapi.com"`
}

// Initialize registers domain.Dictionary in the dependency container.
func (i InitDictionary) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.Dictionary](NewWordsAPI(i.URL, i.APIKey, i.APIHost, i.HttpClient))
	return ctx, nil
}
