package ondevice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
)

// ErrSessionDestroyed is returned by calls on a destroyed session.
var ErrSessionDestroyed = errors.New("session destroyed")

// Session is one on-device handle bound to a model and a system prompt.
type Session struct {
	runtime      Runtime
	logger       *log.Logger
	model        string
	systemPrompt string
	// release returns true when the model has no other live session.
	release func(model string) bool

	mu        sync.Mutex
	destroyed bool
}

func newSession(runtime Runtime, logger *log.Logger, model, systemPrompt string, release func(model string) bool) *Session {
	return &Session{
		runtime:      runtime,
		logger:       logger,
		model:        model,
		systemPrompt: systemPrompt,
		release:      release,
	}
}

// Prompt implements domain.ProviderSession.
func (s *Session) Prompt(ctx context.Context, in domain.PromptInput) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req, err := s.chatRequest(in)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	resp, err := s.runtime.Chat(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return resp.Message.Content, nil
}

// Stream implements domain.ProviderSession.
func (s *Session) Stream(ctx context.Context, in domain.PromptInput, onChunk domain.ChunkFunc) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req, err := s.chatRequest(in)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	err = s.runtime.ChatStream(spanCtx, req, func(chunk ChatResponse) error {
		if chunk.Message.Content == "" {
			return nil
		}
		return onChunk(chunk.Message.Content)
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Destroy implements domain.ProviderSession. Only the first call releases the session,
// and the model is unloaded once its last live session is destroyed.
func (s *Session) Destroy(ctx context.Context) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.destroyed = true
	s.mu.Unlock()

	if s.release != nil && !s.release(s.model) {
		return nil
	}
	if err := s.runtime.Unload(ctx, s.model); err != nil {
		s.logger.Printf("OnDeviceSession: failed to unload %s: %v", s.model, err)
		return err
	}
	return nil
}

func (s *Session) chatRequest(in domain.PromptInput) (ChatRequest, error) {
	s.mu.Lock()
	destroyed := s.destroyed
	s.mu.Unlock()
	if destroyed {
		return ChatRequest{}, ErrSessionDestroyed
	}

	content := in.Text
	if in.Context != "" {
		content = in.Context + "\n\n" + in.Text
	}

	req := ChatRequest{Model: s.model}
	if s.systemPrompt != "" {
		req.Messages = append(req.Messages, ChatMessage{Role: "system", Content: s.systemPrompt})
	}
	req.Messages = append(req.Messages, ChatMessage{Role: "user", Content: content})

	if in.ResponseSchema != nil {
		schema, err := json.Marshal(in.ResponseSchema)
		if err != nil {
			return ChatRequest{}, fmt.Errorf("marshal response schema: %w", err)
		}
		req.Format = schema
	}
	return req, nil
}

// systemPrompt renders the session options of a family into a system message.
func systemPrompt(req domain.EngineRequest, opts domain.SessionOptions) string {
	var parts []string
	if opts.SystemPrompt != "" {
		parts = append(parts, opts.SystemPrompt)
	}

	switch req.Family {
	case domain.EngineFamily_Translation:
		parts = append(parts, fmt.Sprintf(
			"Translate the user's text from %s to %s. Answer with the translation only.",
			req.SourceLanguage, req.TargetLanguage))
	case domain.EngineFamily_Writer:
		parts = append(parts, "Write the requested text.")
	case domain.EngineFamily_Rewriter:
		parts = append(parts, "Rewrite the user's text. Answer with the rewritten text only.")
	case domain.EngineFamily_Summarizer:
		summary := opts.SummaryType
		if summary == "" {
			summary = "tldr"
		}
		parts = append(parts, fmt.Sprintf("Summarize the user's text as a %s summary. Answer with the summary only.", summary))
	}

	if opts.SharedContext != "" {
		parts = append(parts, opts.SharedContext)
	}
	if opts.Tone != "" && opts.Tone != "as-is" {
		parts = append(parts, fmt.Sprintf("Use a %s tone.", opts.Tone))
	}
	if opts.Length != "" && opts.Length != "as-is" {
		parts = append(parts, fmt.Sprintf("Keep the answer %s.", opts.Length))
	}
	if opts.Format == "plain-text" {
		parts = append(parts, "Answer in plain text without markdown.")
	}
	return strings.Join(parts, "\n")
}
