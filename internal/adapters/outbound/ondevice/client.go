// Package ondevice serves the on-device capabilities from a local model runtime
// speaking the Ollama HTTP API on the reader's machine.
package ondevice

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxLineSize bounds one NDJSON line of a streamed response.
const maxLineSize = 1024 * 1024

// RuntimeClient is a thin client for the local model runtime API.
type RuntimeClient struct {
	baseURL string
	http    *http.Client
}

// NewRuntimeClient creates a new client.
func NewRuntimeClient(baseURL string, httpClient *http.Client) RuntimeClient {
	return RuntimeClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Tags lists the installed models.
func (c RuntimeClient) Tags(ctx context.Context) ([]Model, error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, "/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	var out TagsResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out.Models, nil
}

// Chat sends a non-streaming chat request.
func (c RuntimeClient) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if req.Model == "" {
		return ChatResponse{}, errors.New("model is required")
	}
	req.Stream = false

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/chat", req)
	if err != nil {
		return ChatResponse{}, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return ChatResponse{}, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return ChatResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if out.Error != "" {
		return ChatResponse{}, errors.New(out.Error)
	}
	return out, nil
}

// ChatStream streams a chat request, calling onChunk for each NDJSON line until done.
func (c RuntimeClient) ChatStream(ctx context.Context, req ChatRequest, onChunk func(ChatResponse) error) error {
	if req.Model == "" {
		return errors.New("model is required")
	}
	req.Stream = true

	return c.streamNDJSON(ctx, "/api/chat", req, func(line []byte) (bool, error) {
		var chunk ChatResponse
		if err := json.Unmarshal(line, &chunk); err != nil {
			return false, fmt.Errorf("decode chunk: %w", err)
		}
		if chunk.Error != "" {
			return false, errors.New(chunk.Error)
		}
		if err := onChunk(chunk); err != nil {
			return false, err
		}
		return chunk.Done, nil
	})
}

// Pull downloads a model, calling onStatus for each progress line.
// An error line ends the pull with that error.
func (c RuntimeClient) Pull(ctx context.Context, model string, onStatus func(PullStatus) error) error {
	return c.streamNDJSON(ctx, "/api/pull", PullRequest{Model: model, Stream: true}, func(line []byte) (bool, error) {
		var status PullStatus
		if err := json.Unmarshal(line, &status); err != nil {
			return false, fmt.Errorf("decode status: %w", err)
		}
		if status.Error != "" {
			return false, errors.New(status.Error)
		}
		if err := onStatus(status); err != nil {
			return false, err
		}
		return status.Status == "success", nil
	})
}

// Unload evicts the model from runtime memory.
func (c RuntimeClient) Unload(ctx context.Context, model string) error {
	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/generate", GenerateRequest{Model: model, KeepAlive: 0})
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(b))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// streamNDJSON posts body and feeds every non-empty response line to onLine until it reports done.
func (c RuntimeClient) streamNDJSON(ctx context.Context, path string, body any, onLine func([]byte) (bool, error)) error {
	httpReq, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/x-ndjson")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(b))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		done, err := onLine(line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}

func (c RuntimeClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
