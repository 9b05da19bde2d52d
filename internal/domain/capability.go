package domain

import (
	"fmt"
	"strings"
)

// Capability identifies one AI text operation offered on a text selection.
type Capability string

const (
	Capability_Translate Capability = "translate"
	Capability_Define    Capability = "define"
	Capability_Synonym   Capability = "synonym"
	Capability_Simplify  Capability = "simplify"
	Capability_Explain   Capability = "explain"
	Capability_Summarize Capability = "summarize"
	Capability_Chat      Capability = "chat"
)

// ToolCapabilities lists the capabilities reachable from the selection toolbar, in toolbar order.
func ToolCapabilities() []Capability {
	return []Capability{
		Capability_Translate,
		Capability_Define,
		Capability_Synonym,
		Capability_Simplify,
		Capability_Explain,
		Capability_Summarize,
	}
}

// ParseCapability converts a raw string into a Capability.
func ParseCapability(raw string) (Capability, error) {
	c := Capability(strings.ToLower(strings.TrimSpace(raw)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks that the capability is a known value.
func (c Capability) Validate() error {
	switch c {
	case Capability_Translate, Capability_Define, Capability_Synonym,
		Capability_Simplify, Capability_Explain, Capability_Summarize, Capability_Chat:
		return nil
	}
	return NewValidationErr(fmt.Sprintf("unknown capability %q", string(c)))
}

// HasSentinel reports whether an exhausted chain yields a "not found" result instead of a failure.
func (c Capability) HasSentinel() bool {
	return c == Capability_Define || c == Capability_Synonym
}

// Family returns the on-device engine family serving the capability.
func (c Capability) Family() EngineFamily {
	switch c {
	case Capability_Translate:
		return EngineFamily_Translation
	case Capability_Define, Capability_Synonym:
		return EngineFamily_Prompt
	case Capability_Explain:
		return EngineFamily_Writer
	case Capability_Simplify:
		return EngineFamily_Rewriter
	case Capability_Summarize:
		return EngineFamily_Summarizer
	}
	return EngineFamily_None
}

// FailureMessage is the user-visible notice shown when every provider for the capability has failed.
func (c Capability) FailureMessage() string {
	switch c {
	case Capability_Translate:
		return "Translation failed"
	case Capability_Define:
		return "Unable to get definition from AI"
	case Capability_Synonym:
		return "Unable to get synonyms"
	case Capability_Simplify:
		return "Simplification failed"
	case Capability_Explain:
		return "Explanation failed"
	case Capability_Summarize:
		return "Summarization failed"
	case Capability_Chat:
		return "Failed to send message"
	}
	return "Request failed"
}

// AuthRequiredMessage is the notice shown when the capability is invoked without a credential.
func (c Capability) AuthRequiredMessage() string {
	switch c {
	case Capability_Translate:
		return "Authentication required for translation"
	case Capability_Synonym:
		return "Authentication required for synonyms"
	case Capability_Simplify:
		return "Authentication required for simplification"
	case Capability_Explain:
		return "Authentication required for explanation"
	case Capability_Summarize:
		return "Authentication required for summarization"
	}
	return "Authentication required"
}

// EngineFamily groups on-device engines by the API surface they expose.
type EngineFamily string

const (
	EngineFamily_None        EngineFamily = ""
	EngineFamily_Translation EngineFamily = "translation"
	EngineFamily_Prompt      EngineFamily = "prompt"
	EngineFamily_Writer      EngineFamily = "writer"
	EngineFamily_Rewriter    EngineFamily = "rewriter"
	EngineFamily_Summarizer  EngineFamily = "summarizer"
)

// ProcessingMode is the reader's preference between on-device and backend-assisted operation.
type ProcessingMode string

const (
	ProcessingMode_DeviceOnly ProcessingMode = "device-only"
	ProcessingMode_Hybrid     ProcessingMode = "hybrid"
)

// ParseProcessingMode converts a raw string into a ProcessingMode.
// An empty value selects hybrid; "client" is accepted as device-only.
func ParseProcessingMode(raw string) (ProcessingMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ProcessingMode_Hybrid):
		return ProcessingMode_Hybrid, nil
	case string(ProcessingMode_DeviceOnly), "client", "device_only":
		return ProcessingMode_DeviceOnly, nil
	}
	return "", NewValidationErr(fmt.Sprintf("unknown processing mode %q", raw))
}

// IsSingleWord reports whether the selection is a single word.
func IsSingleWord(text string) bool {
	return len(strings.Fields(text)) == 1
}
