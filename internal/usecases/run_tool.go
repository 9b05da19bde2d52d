package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// synonymSchema constrains on-device synonym output to a JSON array of strings.
var synonymSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// ToolRequest is one toolbar action on a text selection.
type ToolRequest struct {
	Capability domain.Capability
	Text       string
	Mode       domain.ProcessingMode
	// SlotID names the UI surface the result is rendered in. Empty disables stale detection.
	SlotID         string
	SourceLanguage string
	TargetLanguage string
	// Auth may be nil; remote tiers then fail with AuthRequired.
	Auth domain.AuthSession
}

// RunTool defines the interface for the tool orchestrator.
type RunTool interface {
	// Execute runs the capability's fallback chain and reports progress through onEvent.
	// Invalid requests are returned as errors before any event. Provider failures end as
	// failed or notice events and Execute returns nil; only callback and context errors are returned.
	Execute(ctx context.Context, req ToolRequest, onEvent domain.ToolEventCallback) error
}

// RunToolImpl is the implementation of RunTool.
type RunToolImpl struct {
	registry   domain.CapabilityRegistry
	prompts    OnDevicePrompts
	backend    domain.RemoteBackend
	dictionary domain.Dictionary
	languages  domain.LanguageResolver
	slots      *domain.SlotRegistry
	pos        domain.PartOfSpeechExtractor
}

// NewRunToolImpl creates a new instance of RunToolImpl.
func NewRunToolImpl(
	registry domain.CapabilityRegistry,
	prompts OnDevicePrompts,
	backend domain.RemoteBackend,
	dictionary domain.Dictionary,
	languages domain.LanguageResolver,
	slots *domain.SlotRegistry,
	pos domain.PartOfSpeechExtractor,
) RunToolImpl {
	return RunToolImpl{
		registry:   registry,
		prompts:    prompts,
		backend:    backend,
		dictionary: dictionary,
		languages:  languages,
		slots:      slots,
		pos:        pos,
	}
}

// Execute implements RunTool.
func (rt RunToolImpl) Execute(ctx context.Context, req ToolRequest, onEvent domain.ToolEventCallback) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("capability", string(req.Capability)),
		attribute.String("mode", string(req.Mode)),
	))
	defer span.End()

	req, err := rt.validate(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	started := time.Now()
	inv := newToolInvocation(req.Capability, req.Text, req.SlotID, rt.slots, onEvent)
	span.SetAttributes(attribute.String("invocation_id", inv.id.String()))

	outcome, err := rt.run(spanCtx, inv, req)
	RecordToolInvocation(spanCtx, req.Capability, req.Mode, outcome, time.Since(started))
	span.SetAttributes(attribute.String("outcome", outcome))
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (rt RunToolImpl) validate(req ToolRequest) (ToolRequest, error) {
	if err := req.Capability.Validate(); err != nil {
		return req, err
	}
	if req.Capability == domain.Capability_Chat {
		return req, domain.NewValidationErr("chat is not a selection tool")
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return req, domain.NewValidationErr("text cannot be empty")
	}
	mode, err := domain.ParseProcessingMode(string(req.Mode))
	if err != nil {
		return req, err
	}
	req.Mode = mode
	if req.Capability == domain.Capability_Translate && strings.TrimSpace(req.TargetLanguage) == "" {
		return req, domain.NewValidationErr("target language is required")
	}
	if strings.TrimSpace(req.SourceLanguage) == "" {
		req.SourceLanguage = DefaultSourceLanguage
	}
	return req, nil
}

func (rt RunToolImpl) run(ctx context.Context, inv *toolInvocation, req ToolRequest) (string, error) {
	if req.Capability == domain.Capability_Translate {
		_, _, err := resolveTranslationPair(rt.languages, req.SourceLanguage, req.TargetLanguage)
		var same *domain.SameLanguageErr
		if errors.As(err, &same) {
			return inv.finish(ctx, domain.ToolResult{}, err)
		}
	}

	readingMessage := "Reading text..."
	if req.Capability == domain.Capability_Translate {
		readingMessage = "Reading Text..."
	}
	if err := inv.loading(readingMessage, ""); err != nil {
		return inv.finish(ctx, domain.ToolResult{}, err)
	}

	result, err := inv.runChain(ctx, rt.tiers(inv, req))
	return inv.finish(ctx, result, err)
}

// tiers builds the fallback chain of the request.
func (rt RunToolImpl) tiers(inv *toolInvocation, req ToolRequest) []providerTier {
	onDevice := providerTier{
		provider: domain.ProviderKind_OnDevice,
		run: func(ctx context.Context) (domain.ToolResult, error) {
			return rt.runOnDevice(ctx, inv, req)
		},
	}
	remote := providerTier{
		provider: domain.ProviderKind_Remote,
		run: func(ctx context.Context) (domain.ToolResult, error) {
			return rt.runRemote(ctx, inv, req)
		},
	}
	deviceOnly := req.Mode == domain.ProcessingMode_DeviceOnly

	switch req.Capability {
	case domain.Capability_Synonym, domain.Capability_Translate:
		if deviceOnly {
			return []providerTier{onDevice, remote}
		}
		return []providerTier{remote, onDevice}
	case domain.Capability_Define:
		dictionary := providerTier{
			provider: domain.ProviderKind_Dictionary,
			run: func(ctx context.Context) (domain.ToolResult, error) {
				return rt.runDictionary(ctx, inv)
			},
		}
		if deviceOnly {
			return []providerTier{dictionary, onDevice, remote}
		}
		return []providerTier{dictionary, remote}
	}

	if deviceOnly {
		return []providerTier{onDevice, remote}
	}
	return []providerTier{remote}
}

func (rt RunToolImpl) runDictionary(ctx context.Context, inv *toolInvocation) (domain.ToolResult, error) {
	if err := inv.loading("Getting definition...", domain.ProviderKind_Dictionary); err != nil {
		return domain.ToolResult{}, err
	}
	payload, err := rt.dictionary.Definitions(ctx, inv.text)
	if err != nil {
		return domain.ToolResult{}, err
	}
	return domain.NewDefinitionResult(payload, domain.ProviderKind_Dictionary, inv.text)
}

func (rt RunToolImpl) runOnDevice(ctx context.Context, inv *toolInvocation, req ToolRequest) (domain.ToolResult, error) {
	capability, ok := rt.registry.Lookup(req.Capability)
	if !ok {
		return domain.ToolResult{}, domain.NewProviderErr(domain.ProviderErrKind_Unavailable, domain.ProviderKind_OnDevice,
			fmt.Sprintf("no on-device provider for %s", req.Capability))
	}

	engineReq := domain.EngineRequest{Family: req.Capability.Family()}
	if req.Capability == domain.Capability_Translate {
		source, target, err := resolveTranslationPair(rt.languages, req.SourceLanguage, req.TargetLanguage)
		if err != nil {
			return domain.ToolResult{}, err
		}
		engineReq.SourceLanguage, engineReq.TargetLanguage = source, target
	}

	availability, err := capability.Availability(ctx, engineReq)
	if err != nil {
		return domain.ToolResult{}, err
	}
	if availability == domain.Availability_Unavailable {
		return domain.ToolResult{}, domain.NewProviderErr(domain.ProviderErrKind_Unavailable, domain.ProviderKind_OnDevice,
			fmt.Sprintf("%s engine is unavailable", engineReq.Family))
	}

	var progressErr error
	onProgress := func(p domain.DownloadProgress) {
		if progressErr != nil {
			return
		}
		progressErr = inv.emit(domain.ToolEventType_DownloadProgress, domain.ToolEventDownloadProgress{
			InvocationID: inv.id,
			Percent:      p.Percent(),
			Message:      downloadProgressMessage(req.Capability, p.Percent()),
		})
	}
	if availability.RequiresDownload() {
		if err := inv.loading(downloadMessage(req.Capability, availability), domain.ProviderKind_OnDevice); err != nil {
			return domain.ToolResult{}, err
		}
	}

	session, err := capability.Acquire(ctx, engineReq, availability, onProgress)
	if progressErr != nil {
		if session != nil {
			_ = session.Destroy(context.WithoutCancel(ctx))
		}
		return domain.ToolResult{}, progressErr
	}
	if err != nil {
		return domain.ToolResult{}, err
	}
	defer session.Destroy(context.WithoutCancel(ctx)) //nolint:errcheck

	if err := inv.loading(stageMessage(req.Capability, domain.ProviderKind_OnDevice, req.Text), domain.ProviderKind_OnDevice); err != nil {
		return domain.ToolResult{}, err
	}

	prompt := rt.prompts[req.Capability]
	switch req.Capability {
	case domain.Capability_Synonym:
		in := prompt.Input(req.Text)
		in.ResponseSchema = synonymSchema
		raw, err := session.Prompt(ctx, in)
		if err != nil {
			return domain.ToolResult{}, invocationErr(err, "synonym prompt failed")
		}
		synonyms, err := domain.ParseSynonymList(raw, domain.ProviderKind_OnDevice)
		if err != nil {
			return domain.ToolResult{}, err
		}
		return domain.NewSynonymResult(synonyms, domain.DefaultPartOfSpeech, domain.ProviderKind_OnDevice, req.Text)
	case domain.Capability_Define:
		body, err := session.Prompt(ctx, prompt.Input(req.Text))
		if err != nil {
			return domain.ToolResult{}, invocationErr(err, "definition prompt failed")
		}
		return domain.NewLLMDefinitionResult(req.Text, body, rt.pos, domain.ProviderKind_OnDevice)
	case domain.Capability_Translate:
		if domain.IsSingleWord(req.Text) {
			translated, err := session.Prompt(ctx, prompt.Input(req.Text))
			if err != nil {
				return domain.ToolResult{}, invocationErr(err, "translation failed")
			}
			return inv.textResult(strings.TrimSpace(translated), domain.ProviderKind_OnDevice)
		}
	}

	return inv.stream(ctx, domain.ProviderKind_OnDevice, func(ctx context.Context, onChunk domain.ChunkFunc) error {
		if err := session.Stream(ctx, prompt.Input(req.Text), onChunk); err != nil {
			return invocationErr(err, fmt.Sprintf("%s stream failed", req.Capability))
		}
		return nil
	})
}

func (rt RunToolImpl) runRemote(ctx context.Context, inv *toolInvocation, req ToolRequest) (domain.ToolResult, error) {
	if err := inv.loading(stageMessage(req.Capability, domain.ProviderKind_Remote, req.Text), domain.ProviderKind_Remote); err != nil {
		return domain.ToolResult{}, err
	}

	switch req.Capability {
	case domain.Capability_Synonym:
		synonyms, err := rt.backend.Synonyms(ctx, req.Auth, req.Text)
		if err != nil {
			return domain.ToolResult{}, err
		}
		return domain.NewSynonymResult(synonyms, domain.DefaultPartOfSpeech, domain.ProviderKind_Remote, req.Text)
	case domain.Capability_Define:
		def, err := rt.backend.Definition(ctx, req.Auth, req.Text)
		if err != nil {
			return domain.ToolResult{}, err
		}
		word := def.Word
		if strings.TrimSpace(word) == "" {
			word = req.Text
		}
		return domain.NewLLMDefinitionResult(word, def.Definition, rt.pos, domain.ProviderKind_Remote)
	case domain.Capability_Translate:
		if domain.IsSingleWord(req.Text) {
			translated, err := rt.backend.TranslateWord(ctx, req.Auth, req.Text, req.TargetLanguage)
			if err != nil {
				return domain.ToolResult{}, err
			}
			return inv.textResult(strings.TrimSpace(translated), domain.ProviderKind_Remote)
		}
	}

	transform := domain.TransformRequest{Capability: req.Capability, Text: req.Text}
	if req.Capability == domain.Capability_Translate {
		transform.TargetLanguage = req.TargetLanguage
	}
	return inv.stream(ctx, domain.ProviderKind_Remote, func(ctx context.Context, onChunk domain.ChunkFunc) error {
		_, err := rt.backend.StreamTransform(ctx, req.Auth, transform, onChunk)
		return err
	})
}

// invocationErr classifies a session failure, keeping provider and callback errors intact.
func invocationErr(err error, message string) error {
	var pe *domain.ProviderErr
	var cbErr *callbackErr
	if errors.As(err, &pe) || errors.As(err, &cbErr) {
		return err
	}
	return domain.NewProviderErr(domain.ProviderErrKind_InvocationError, domain.ProviderKind_OnDevice, message).WithCause(err)
}

func downloadMessage(c domain.Capability, availability domain.Availability) string {
	if c == domain.Capability_Translate {
		return "Downloading translation model..."
	}
	if availability == domain.Availability_Downloading {
		return "Model download in progress..."
	}
	return "Downloading AI model (first time only)..."
}

func downloadProgressMessage(c domain.Capability, percent int) string {
	if c == domain.Capability_Translate {
		return fmt.Sprintf("Downloading translation model: %d%%", percent)
	}
	return fmt.Sprintf("Downloading AI model: %d%%", percent)
}

func stageMessage(c domain.Capability, provider domain.ProviderKind, text string) string {
	switch c {
	case domain.Capability_Synonym:
		if provider == domain.ProviderKind_Remote {
			return "Getting synonyms from AI..."
		}
		return "Getting synonyms..."
	case domain.Capability_Define:
		return "Getting definition..."
	case domain.Capability_Translate:
		if domain.IsSingleWord(text) {
			return "Translating word..."
		}
		return "Translating..."
	case domain.Capability_Simplify:
		return "Simplifying text..."
	case domain.Capability_Explain:
		return "Explaining text..."
	case domain.Capability_Summarize:
		return "Summarizing text..."
	}
	return "Working..."
}

// InitRunTool initializes the RunTool use case.
type InitRunTool struct {
	Registry   domain.CapabilityRegistry `resolve:""`
	Prompts    OnDevicePrompts           `resolve:""`
	Backend    domain.RemoteBackend      `resolve:""`
	Dictionary domain.Dictionary         `resolve:""`
	Languages  domain.LanguageResolver   `resolve:""`
	Slots      *domain.SlotRegistry      `resolve:""`
}

// Initialize registers RunTool in the dependency container.
func (i InitRunTool) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RunTool](NewRunToolImpl(
		i.Registry,
		i.Prompts,
		i.Backend,
		i.Dictionary,
		i.Languages,
		i.Slots,
		domain.DefaultPartOfSpeechExtractor(),
	))
	return ctx, nil
}

// InitSlotRegistry registers the process-wide SlotRegistry shared by the tool use cases.
type InitSlotRegistry struct{}

// Initialize registers the SlotRegistry in the dependency container.
func (InitSlotRegistry) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(domain.NewSlotRegistry())
	return ctx, nil
}
