package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BookChatInput is one chat message about the open book.
type BookChatInput struct {
	Message string
	// AdditionalContext holds text selections attached to the message.
	AdditionalContext []string
	BookID            string
	SlotID            string
	Auth              domain.AuthSession
}

// StreamBookChat defines the interface for the book chat use case.
type StreamBookChat interface {
	// Execute streams the backend's answer through onEvent.
	Execute(ctx context.Context, in BookChatInput, onEvent domain.ToolEventCallback) error
}

// StreamBookChatImpl is the implementation of StreamBookChat.
type StreamBookChatImpl struct {
	backend domain.RemoteBackend
	slots   *domain.SlotRegistry
}

// NewStreamBookChatImpl creates a new instance of StreamBookChatImpl.
func NewStreamBookChatImpl(backend domain.RemoteBackend, slots *domain.SlotRegistry) StreamBookChatImpl {
	return StreamBookChatImpl{
		backend: backend,
		slots:   slots,
	}
}

// Execute implements StreamBookChat.
func (sc StreamBookChatImpl) Execute(ctx context.Context, in BookChatInput, onEvent domain.ToolEventCallback) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("book_id", in.BookID),
	))
	defer span.End()

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return domain.NewValidationErr("message cannot be empty")
	}

	started := time.Now()
	inv := newToolInvocation(domain.Capability_Chat, message, in.SlotID, sc.slots, onEvent)
	req := domain.BookChatRequest{
		Message: message,
		Context: JoinChatContext(in.AdditionalContext),
		BookID:  in.BookID,
	}

	result, err := inv.runChain(spanCtx, []providerTier{{
		provider: domain.ProviderKind_Remote,
		run: func(ctx context.Context) (domain.ToolResult, error) {
			return inv.stream(ctx, domain.ProviderKind_Remote, func(ctx context.Context, onChunk domain.ChunkFunc) error {
				_, err := sc.backend.StreamChat(ctx, in.Auth, req, onChunk)
				return err
			})
		},
	}})
	outcome, err := inv.finish(spanCtx, result, err)
	RecordToolInvocation(spanCtx, domain.Capability_Chat, domain.ProcessingMode_Hybrid, outcome, time.Since(started))
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// JoinChatContext joins the non-empty context items with blank lines.
func JoinChatContext(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, "\n\n")
}

// InitStreamBookChat initializes the StreamBookChat use case.
type InitStreamBookChat struct {
	Backend domain.RemoteBackend `resolve:""`
	Slots   *domain.SlotRegistry `resolve:""`
}

// Initialize registers StreamBookChat in the dependency container.
func (i InitStreamBookChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamBookChat](NewStreamBookChatImpl(i.Backend, i.Slots))
	return ctx, nil
}
