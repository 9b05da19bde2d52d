package usecases

import (
	"context"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("usecases")
	ToolInvocations        metric.Int64Counter
	ProviderFallbacks      metric.Int64Counter
	ToolInvocationDuration metric.Float64Histogram
)

func init() {
	var err error
	// Tool invocations by terminal outcome
	ToolInvocations, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total AI tool invocations"),
	)
	if err != nil {
		panic(err)
	}

	// Providers abandoned while walking a fallback chain
	ProviderFallbacks, err = meter.Int64Counter(
		"provider_fallbacks_total",
		metric.WithDescription("Total providers abandoned in favour of the next tier"),
	)
	if err != nil {
		panic(err)
	}

	ToolInvocationDuration, err = meter.Float64Histogram(
		"tool_invocation_duration_seconds",
		metric.WithDescription("Wall time of AI tool invocations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolInvocation records one finished tool invocation.
func RecordToolInvocation(ctx context.Context, capability domain.Capability, mode domain.ProcessingMode, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("capability", string(capability)),
		attribute.String("mode", string(mode)),
		attribute.String("outcome", outcome),
	)
	ToolInvocations.Add(ctx, 1, attrs)
	ToolInvocationDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordProviderFallback records a provider abandoned by a fallback chain.
func RecordProviderFallback(ctx context.Context, capability domain.Capability, provider domain.ProviderKind, outcome domain.FallbackOutcome) {
	ProviderFallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("capability", string(capability)),
		attribute.String("provider", string(provider)),
		attribute.String("outcome", string(outcome)),
	))
}
