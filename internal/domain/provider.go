package domain

import "context"

// ProviderKind identifies where a result was produced.
type ProviderKind string

const (
	ProviderKind_OnDevice   ProviderKind = "on-device"
	ProviderKind_Remote     ProviderKind = "remote"
	ProviderKind_Dictionary ProviderKind = "dictionary"
)

// EngineRequest addresses one on-device engine family, optionally for a language pair.
type EngineRequest struct {
	Family         EngineFamily
	SourceLanguage string
	TargetLanguage string
}

// SessionOptions configures an on-device session at creation.
type SessionOptions struct {
	SystemPrompt  string `yaml:"system_prompt"`
	SharedContext string `yaml:"shared_context"`
	Tone          string `yaml:"tone"`
	Format        string `yaml:"format"`
	Length        string `yaml:"length"`
	SummaryType   string `yaml:"summary_type"`
}

// PromptInput is one call on a provider session.
type PromptInput struct {
	Text string
	// Context is per-call guidance layered over the session's shared context.
	Context string
	// ResponseSchema constrains the output to a JSON schema when set.
	ResponseSchema map[string]any
}

// ChunkFunc receives stream chunks in arrival order.
type ChunkFunc func(chunk string) error

// OnDeviceEngine is the local engine runtime that hosts every on-device capability family.
type OnDeviceEngine interface {
	// Availability reports the install state for the request. It must not be cached by callers.
	Availability(ctx context.Context, req EngineRequest) (Availability, error)
	// Create opens a session, downloading the model first when needed and reporting progress.
	Create(ctx context.Context, req EngineRequest, opts SessionOptions, onProgress ProgressFunc) (ProviderSession, error)
}

// ProviderSession is an acquired on-device handle owned by exactly one invocation.
type ProviderSession interface {
	// Prompt runs a non-streamed call and returns the full output.
	Prompt(ctx context.Context, in PromptInput) (string, error)
	// Stream runs a streamed call, yielding each chunk as it arrives.
	Stream(ctx context.Context, in PromptInput, onChunk ChunkFunc) error
	// Destroy releases the session. It is safe to call more than once.
	Destroy(ctx context.Context) error
}

// OnDeviceCapability is the availability/acquire pair registered for one capability.
type OnDeviceCapability interface {
	Availability(ctx context.Context, req EngineRequest) (Availability, error)
	// Acquire opens a session for a previously checked availability.
	Acquire(ctx context.Context, req EngineRequest, availability Availability, onProgress ProgressFunc) (ProviderSession, error)
}

// BackendDefinition is the backend's LLM definition of a word.
type BackendDefinition struct {
	Word       string
	Definition string
}

// TransformRequest is a streamed text transformation on the backend.
type TransformRequest struct {
	Capability     Capability
	Text           string
	TargetLanguage string
}

// BookChatRequest is one chat message about a book.
type BookChatRequest struct {
	Message string
	Context string
	BookID  string
}

// RemoteBackend is the authenticated DuoRead backend.
type RemoteBackend interface {
	Synonyms(ctx context.Context, auth AuthSession, word string) ([]string, error)
	Definition(ctx context.Context, auth AuthSession, word string) (BackendDefinition, error)
	TranslateWord(ctx context.Context, auth AuthSession, word, targetLanguage string) (string, error)
	// StreamTransform streams translate, simplify, explain or summarize output and returns the accumulated text.
	StreamTransform(ctx context.Context, auth AuthSession, req TransformRequest, onChunk ChunkFunc) (string, error)
	// StreamChat streams a book chat answer and returns the accumulated text.
	StreamChat(ctx context.Context, auth AuthSession, req BookChatRequest, onChunk ChunkFunc) (string, error)
}

// Dictionary is the best-effort, non-AI word definition lookup.
type Dictionary interface {
	Definitions(ctx context.Context, word string) (DefinitionPayload, error)
}

// LanguageResolver maps a language code or English name to a supported BCP 47 code.
type LanguageResolver interface {
	Resolve(language string) (code string, ok bool)
}

// LanguageResolverFunc adapts a function to LanguageResolver.
type LanguageResolverFunc func(language string) (string, bool)

// Resolve calls f.
func (f LanguageResolverFunc) Resolve(language string) (string, bool) {
	return f(language)
}
