package ondevice

import "encoding/json"

// ChatMessage is one message of a local runtime chat.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a /api/chat request.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	// Format holds a JSON schema the output must satisfy.
	Format  json.RawMessage `json:"format,omitempty"`
	Options *Options        `json:"options,omitempty"`
}

// Options are sampling options of a chat request.
type Options struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

// ChatResponse is a /api/chat response, or one NDJSON line of a streamed one.
type ChatResponse struct {
	Model   string      `json:"model"`
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error,omitempty"`
}

// TagsResponse is the /api/tags response.
type TagsResponse struct {
	Models []Model `json:"models"`
}

// Model is an installed model.
type Model struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Size  int64  `json:"size"`
}

// PullRequest is a /api/pull request.
type PullRequest struct {
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}

// PullStatus is one NDJSON line of a model pull.
type PullStatus struct {
	Status    string `json:"status"`
	Digest    string `json:"digest,omitempty"`
	Total     int64  `json:"total,omitempty"`
	Completed int64  `json:"completed,omitempty"`
	Error     string `json:"error,omitempty"`
}

// GenerateRequest is a /api/generate request. It is only used to unload a model.
type GenerateRequest struct {
	Model     string `json:"model"`
	KeepAlive int    `json:"keep_alive"`
}
