// Package backend calls the DuoRead backend on behalf of the reader.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// streamPaths maps the streamed capabilities to their endpoints.
var streamPaths = map[domain.Capability]string{
	domain.Capability_Translate: "/books/translate/stream",
	domain.Capability_Simplify:  "/books/simplify/stream",
	domain.Capability_Explain:   "/books/explain/stream",
	domain.Capability_Summarize: "/books/summarize/stream",
}

// Client implements domain.RemoteBackend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewClient creates a new backend client.
func NewClient(baseURL string, httpClient *http.Client, logger *log.Logger) Client {
	return Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}
}

// Synonyms implements domain.RemoteBackend.
func (c Client) Synonyms(ctx context.Context, auth domain.AuthSession, word string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var out synonymsResponse
	err := c.postJSON(spanCtx, auth, "/books/synonyms", wordRequest{Word: word, Language: lookupLanguage}, &out)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !out.Success || len(out.Synonyms) == 0 {
		return nil, domain.NewProviderErr(domain.ProviderErrKind_InvalidResponse, domain.ProviderKind_Remote, "no synonyms received from backend")
	}
	return out.Synonyms, nil
}

// Definition implements domain.RemoteBackend.
func (c Client) Definition(ctx context.Context, auth domain.AuthSession, word string) (domain.BackendDefinition, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var out definitionResponse
	err := c.postJSON(spanCtx, auth, "/books/definition", wordRequest{Word: word, Language: lookupLanguage}, &out)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.BackendDefinition{}, err
	}
	if !out.Success || strings.TrimSpace(out.Definition) == "" {
		return domain.BackendDefinition{}, domain.NewProviderErr(domain.ProviderErrKind_InvalidResponse, domain.ProviderKind_Remote, "no definition received from backend")
	}
	return domain.BackendDefinition{Word: out.Word, Definition: out.Definition}, nil
}

// TranslateWord implements domain.RemoteBackend.
func (c Client) TranslateWord(ctx context.Context, auth domain.AuthSession, word, targetLanguage string) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("target_language", targetLanguage),
	))
	defer span.End()

	var out translateWordResponse
	err := c.postJSON(spanCtx, auth, "/books/translate-word", translateWordRequest{
		Word:            word,
		CurrentLanguage: autoLanguage,
		ToLanguage:      targetLanguage,
	}, &out)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	if strings.TrimSpace(out.TranslatedWord) == "" {
		return "", domain.NewProviderErr(domain.ProviderErrKind_InvalidResponse, domain.ProviderKind_Remote, "no translation received from backend")
	}
	return out.TranslatedWord, nil
}

// StreamTransform implements domain.RemoteBackend.
func (c Client) StreamTransform(ctx context.Context, auth domain.AuthSession, req domain.TransformRequest, onChunk domain.ChunkFunc) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("capability", string(req.Capability)),
	))
	defer span.End()

	path, ok := streamPaths[req.Capability]
	if !ok {
		err := domain.NewValidationErr(fmt.Sprintf("capability %s has no backend stream", req.Capability))
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	var body any = textRequest{Text: req.Text}
	if req.Capability == domain.Capability_Translate {
		body = translateTextRequest{
			Text:            req.Text,
			CurrentLanguage: autoLanguage,
			ToLanguage:      req.TargetLanguage,
		}
	}

	text, err := c.stream(spanCtx, auth, path, body, onChunk)
	telemetry.RecordErrorAndStatus(span, err)
	return text, err
}

// StreamChat implements domain.RemoteBackend.
func (c Client) StreamChat(ctx context.Context, auth domain.AuthSession, req domain.BookChatRequest, onChunk domain.ChunkFunc) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("book_id", req.BookID),
	))
	defer span.End()

	text, err := c.stream(spanCtx, auth, "/books/chat/stream", chatRequest{
		Message: req.Message,
		Context: req.Context,
		BookID:  req.BookID,
	}, onChunk)
	telemetry.RecordErrorAndStatus(span, err)
	return text, err
}

func (c Client) postJSON(ctx context.Context, auth domain.AuthSession, path string, body, out any) error {
	resp, err := c.authorizedPost(ctx, auth, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkErr(err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewProviderErr(domain.ProviderErrKind_InvalidResponse, domain.ProviderKind_Remote, "malformed response").WithCause(err)
	}
	return nil
}

func (c Client) stream(ctx context.Context, auth domain.AuthSession, path string, body any, onChunk domain.ChunkFunc) (string, error) {
	resp, err := c.authorizedPost(ctx, auth, path, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck

	var chunkErr error
	text, err := decodeStream(resp.Body, func(chunk string) error {
		if err := onChunk(chunk); err != nil {
			chunkErr = err
			return err
		}
		return nil
	})
	switch {
	case chunkErr != nil:
		return text, chunkErr
	case err != nil:
		var streamErr *StreamErr
		if errors.As(err, &streamErr) {
			return text, domain.NewProviderErr(domain.ProviderErrKind_InvocationError, domain.ProviderKind_Remote, streamErr.Message)
		}
		return text, networkErr(err)
	}
	return text, nil
}

// authorizedPost sends body with the session's token.
// A 401 triggers one refresh and a replay with the new token.
func (c Client) authorizedPost(ctx context.Context, auth domain.AuthSession, path string, body any) (*http.Response, error) {
	if auth == nil {
		return nil, domain.NewAuthRequiredErr(domain.ProviderKind_Remote)
	}
	token, err := auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.post(ctx, path, token, payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close() //nolint:errcheck
		c.logger.Printf("BackendClient: %s rejected the access token, refreshing", path)

		token, err = auth.Refresh(ctx, token)
		if err != nil {
			return nil, err
		}
		resp, err = c.post(ctx, path, token, payload)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close() //nolint:errcheck
			return nil, domain.NewAuthRequiredErr(domain.ProviderKind_Remote)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close() //nolint:errcheck
		respBody, _ := io.ReadAll(resp.Body)
		return nil, domain.NewHttpErr(domain.ProviderKind_Remote, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return resp, nil
}

func (c Client) post(ctx context.Context, path, token string, payload []byte) (*http.Response, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, networkErr(err)
	}
	return resp, nil
}

// refresh implements tokenRefresher over POST /auth/refresh.
func (c Client) refresh(ctx context.Context, refreshToken string) (refreshResponse, error) {
	payload, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return refreshResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}
	resp, err := c.post(ctx, "/auth/refresh", "", payload)
	if err != nil {
		return refreshResponse{}, err
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return refreshResponse{}, networkErr(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return refreshResponse{}, domain.NewHttpErr(domain.ProviderKind_Remote, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out refreshResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return refreshResponse{}, fmt.Errorf("failed to unmarshal refresh response: %w", err)
	}
	c.logger.Print("BackendClient: access token refreshed")
	return out, nil
}

func networkErr(err error) error {
	return domain.NewProviderErr(domain.ProviderErrKind_NetworkError, domain.ProviderKind_Remote, "backend unreachable").WithCause(err)
}
