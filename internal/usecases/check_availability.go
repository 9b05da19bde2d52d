package usecases

import (
	"context"
	"strings"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultSourceLanguage is assumed when the book language is unknown.
const DefaultSourceLanguage = "English"

// AvailabilityQuery asks for the on-device state of one capability.
type AvailabilityQuery struct {
	Capability     domain.Capability
	SourceLanguage string
	TargetLanguage string
}

// CheckAvailability defines the interface for the capability availability checker.
type CheckAvailability interface {
	// Query returns the on-device availability of the capability.
	// For translate it returns UnsupportedLanguageErr or SameLanguageErr when the pair cannot be served.
	Query(ctx context.Context, q AvailabilityQuery) (domain.Availability, error)
}

// CheckAvailabilityImpl is the implementation of CheckAvailability.
type CheckAvailabilityImpl struct {
	registry  domain.CapabilityRegistry
	languages domain.LanguageResolver
}

// NewCheckAvailabilityImpl creates a new instance of CheckAvailabilityImpl.
func NewCheckAvailabilityImpl(registry domain.CapabilityRegistry, languages domain.LanguageResolver) CheckAvailabilityImpl {
	return CheckAvailabilityImpl{
		registry:  registry,
		languages: languages,
	}
}

// Query implements CheckAvailability. The engine is asked on every call.
func (p CheckAvailabilityImpl) Query(ctx context.Context, q AvailabilityQuery) (domain.Availability, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("capability", string(q.Capability)),
	))
	defer span.End()

	if err := q.Capability.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Availability_Unavailable, err
	}

	req := domain.EngineRequest{Family: q.Capability.Family()}
	if q.Capability == domain.Capability_Translate {
		source, target, err := resolveTranslationPair(p.languages, q.SourceLanguage, q.TargetLanguage)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.Availability_Unavailable, err
		}
		req.SourceLanguage, req.TargetLanguage = source, target
	}

	capability, ok := p.registry.Lookup(q.Capability)
	if !ok {
		span.AddEvent("no on-device provider registered")
		return domain.Availability_Unavailable, nil
	}

	availability, err := capability.Availability(spanCtx, req)
	if err != nil {
		// An engine that cannot answer is treated as absent.
		span.RecordError(err)
		return domain.Availability_Unavailable, nil
	}
	span.SetAttributes(attribute.String("availability", string(availability)))
	return availability, nil
}

// resolveTranslationPair maps both languages to supported codes.
// An empty source is read as DefaultSourceLanguage.
func resolveTranslationPair(languages domain.LanguageResolver, source, target string) (string, string, error) {
	if strings.TrimSpace(source) == "" {
		source = DefaultSourceLanguage
	}
	if strings.TrimSpace(target) == "" {
		return "", "", domain.NewValidationErr("target language is required")
	}

	sourceCode, ok := languages.Resolve(source)
	if !ok {
		return "", "", domain.NewUnsupportedLanguageErr(source, domain.LanguageRole_Source)
	}
	targetCode, ok := languages.Resolve(target)
	if !ok {
		return "", "", domain.NewUnsupportedLanguageErr(target, domain.LanguageRole_Target)
	}
	if sourceCode == targetCode {
		return "", "", domain.NewSameLanguageErr(sourceCode)
	}
	return sourceCode, targetCode, nil
}

// InitCheckAvailability initializes the CheckAvailability use case.
type InitCheckAvailability struct {
	Registry  domain.CapabilityRegistry `resolve:""`
	Languages domain.LanguageResolver   `resolve:""`
}

// Initialize registers CheckAvailability in the dependency container.
func (i InitCheckAvailability) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CheckAvailability](NewCheckAvailabilityImpl(i.Registry, i.Languages))
	return ctx, nil
}
