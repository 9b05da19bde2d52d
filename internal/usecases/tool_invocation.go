package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Invocation outcomes used as metric labels.
const (
	outcomeSucceeded    = "succeeded"
	outcomeNotFound     = "not_found"
	outcomeFailed       = "failed"
	outcomeAuthRequired = "auth_required"
	outcomeNoop         = "noop"
	outcomeStale        = "stale"
	outcomeCanceled     = "canceled"
)

// callbackErr marks a failure of the event sink. It stops the chain instead of advancing it.
type callbackErr struct {
	err error
}

func (e *callbackErr) Error() string { return fmt.Sprintf("event callback: %v", e.err) }
func (e *callbackErr) Unwrap() error { return e.err }

// chainExhaustedErr is returned once every tier of a fallback chain has failed.
type chainExhaustedErr struct {
	last error
}

func (e *chainExhaustedErr) Error() string {
	if e.last == nil {
		return "no provider could serve the request"
	}
	return fmt.Sprintf("all providers failed: %v", e.last)
}

func (e *chainExhaustedErr) Unwrap() error { return e.last }

// providerTier is one step of a fallback chain.
type providerTier struct {
	provider domain.ProviderKind
	run      func(ctx context.Context) (domain.ToolResult, error)
}

// toolInvocation carries the state of one invocation from its first event to its commit.
type toolInvocation struct {
	id         uuid.UUID
	capability domain.Capability
	text       string
	onEvent    domain.ToolEventCallback
	slots      *domain.SlotRegistry
	ticket     domain.SlotTicket
	streams    *domain.StreamAggregator
}

func newToolInvocation(capability domain.Capability, text, slotID string, slots *domain.SlotRegistry, onEvent domain.ToolEventCallback) *toolInvocation {
	return &toolInvocation{
		id:         uuid.New(),
		capability: capability,
		text:       text,
		onEvent:    onEvent,
		slots:      slots,
		ticket:     slots.Issue(slotID),
		streams:    domain.NewStreamAggregator(nil),
	}
}

func (inv *toolInvocation) emit(eventType domain.ToolEventType, data any) error {
	if err := inv.onEvent(eventType, data); err != nil {
		return &callbackErr{err: err}
	}
	return nil
}

func (inv *toolInvocation) loading(message string, provider domain.ProviderKind) error {
	return inv.emit(domain.ToolEventType_Loading, domain.ToolEventLoading{
		InvocationID: inv.id,
		Message:      message,
		Provider:     provider,
	})
}

func (inv *toolInvocation) notice(level domain.NoticeLevel, message string) error {
	return inv.emit(domain.ToolEventType_Notice, domain.ToolEventNotice{
		InvocationID: inv.id,
		Level:        level,
		Message:      message,
	})
}

// runChain executes the tiers strictly in order and returns the first success.
func (inv *toolInvocation) runChain(ctx context.Context, tiers []providerTier) (domain.ToolResult, error) {
	span := trace.SpanFromContext(ctx)

	var last error
	for _, tier := range tiers {
		result, err := tier.run(ctx)
		if err == nil {
			span.SetAttributes(attribute.String("provider", string(tier.provider)))
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.ToolResult{}, ctxErr
		}
		var cbErr *callbackErr
		if errors.As(err, &cbErr) || domain.IsAuthRequired(err) {
			return domain.ToolResult{}, err
		}

		outcome := domain.FallbackOutcomeOf(err)
		span.AddEvent("provider fallback", trace.WithAttributes(
			attribute.String("provider", string(tier.provider)),
			attribute.String("outcome", string(outcome)),
			attribute.String("error", err.Error()),
		))
		RecordProviderFallback(ctx, inv.capability, tier.provider, outcome)
		last = err
	}
	return domain.ToolResult{}, &chainExhaustedErr{last: last}
}

// stream runs one streamed provider call through a fresh task of the invocation's aggregator.
// Every non-empty chunk is forwarded as a delta carrying the accumulated text.
func (inv *toolInvocation) stream(ctx context.Context, provider domain.ProviderKind, call func(ctx context.Context, onChunk domain.ChunkFunc) error) (domain.ToolResult, error) {
	task := inv.streams.Start(inv.capability, inv.text)

	onChunk := func(chunk string) error {
		if chunk == "" {
			return nil
		}
		if err := task.Append(chunk); err != nil {
			return err
		}
		return inv.emit(domain.ToolEventType_Delta, domain.ToolEventDelta{
			InvocationID: inv.id,
			Chunk:        chunk,
			Text:         task.Text(),
			Provider:     provider,
		})
	}

	if err := call(ctx, onChunk); err != nil {
		task.Fail(err)
		return domain.ToolResult{}, err
	}

	text, err := task.Complete()
	if err != nil {
		return domain.ToolResult{}, err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("stream.chunks", task.ChunkCount()))
	return inv.textResult(strings.TrimSpace(text), provider)
}

// textResult wraps a trimmed provider output, rejecting empty text.
func (inv *toolInvocation) textResult(text string, provider domain.ProviderKind) (domain.ToolResult, error) {
	if text == "" {
		return domain.ToolResult{}, domain.NewProviderErr(domain.ProviderErrKind_InvalidResponse, provider, "empty response")
	}
	return domain.NewTextResult(inv.capability, text, provider, inv.text)
}

// commit publishes the result unless a newer invocation has already filled the slot.
func (inv *toolInvocation) commit(result domain.ToolResult) (string, error) {
	if !inv.slots.Commit(inv.ticket) {
		return outcomeStale, inv.emit(domain.ToolEventType_Stale, domain.ToolEventStale{
			InvocationID: inv.id,
			SlotID:       inv.ticket.SlotID,
			Generation:   inv.ticket.Generation,
		})
	}
	return outcomeSucceeded, inv.emit(domain.ToolEventType_Result, domain.ToolEventResult{
		InvocationID: inv.id,
		Result:       result,
		Text:         result.PlainText(),
		StickyNote:   result.StickyNoteDraft(),
	})
}

// finish turns the chain outcome into the terminal events.
// Only event sink and context errors are returned; provider failures end as events.
func (inv *toolInvocation) finish(ctx context.Context, result domain.ToolResult, err error) (string, error) {
	defer inv.slots.Release(inv.ticket)

	outcome, err := inv.terminate(ctx, result, err)
	var cbErr *callbackErr
	if errors.As(err, &cbErr) {
		return outcome, cbErr.err
	}
	return outcome, err
}

func (inv *toolInvocation) terminate(ctx context.Context, result domain.ToolResult, err error) (string, error) {
	if err == nil {
		return inv.commit(result)
	}

	var cbErr *callbackErr
	if errors.As(err, &cbErr) {
		return outcomeFailed, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return outcomeCanceled, ctxErr
	}

	var same *domain.SameLanguageErr
	if errors.As(err, &same) {
		return outcomeNoop, inv.notice(domain.NoticeLevel_Info, same.Error())
	}

	if domain.IsAuthRequired(err) {
		return outcomeAuthRequired, inv.emit(domain.ToolEventType_Failed, domain.ToolEventFailed{
			InvocationID: inv.id,
			Message:      inv.capability.AuthRequiredMessage(),
		})
	}

	if sentinel, ok := domain.SentinelFor(inv.capability, inv.text); ok {
		if err := inv.notice(domain.NoticeLevel_Error, inv.capability.FailureMessage()); err != nil {
			return outcomeFailed, err
		}
		outcome, err := inv.commit(sentinel)
		if outcome == outcomeSucceeded {
			outcome = outcomeNotFound
		}
		return outcome, err
	}

	return outcomeFailed, inv.emit(domain.ToolEventType_Failed, domain.ToolEventFailed{
		InvocationID: inv.id,
		Message:      inv.capability.FailureMessage(),
		Outcome:      domain.FallbackOutcomeOf(err),
	})
}
