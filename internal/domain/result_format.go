package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultPartOfSpeech is used when a provider does not tag its output.
const DefaultPartOfSpeech = "noun"

// NewTextResult wraps the string output of translate, simplify, explain, summarize or chat.
func NewTextResult(capability Capability, text string, source ProviderKind, sourceText string) (ToolResult, error) {
	switch capability {
	case Capability_Translate, Capability_Simplify, Capability_Explain, Capability_Summarize, Capability_Chat:
	default:
		return ToolResult{}, NewValidationErr(fmt.Sprintf("capability %s does not produce text results", capability))
	}
	return ToolResult{
		kind:       ResultKind(capability),
		text:       text,
		source:     source,
		sourceText: sourceText,
	}, nil
}

// NewSynonymResult wraps a synonym list under a part-of-speech key.
func NewSynonymResult(synonyms []string, partOfSpeech string, source ProviderKind, sourceText string) (ToolResult, error) {
	cleaned := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return ToolResult{}, NewProviderErr(ProviderErrKind_InvalidResponse, source, "no synonyms received")
	}
	if strings.TrimSpace(partOfSpeech) == "" {
		partOfSpeech = DefaultPartOfSpeech
	}
	return ToolResult{
		kind: ResultKind_Synonym,
		synonyms: SynonymPayload{
			Groups:  []SynonymGroup{{PartOfSpeech: partOfSpeech, Syn: cleaned}},
			FromLLM: source != ProviderKind_Dictionary,
		},
		source:     source,
		sourceText: sourceText,
	}, nil
}

// ParseSynonymList decodes a provider answer that must be a non-empty JSON array of strings.
func ParseSynonymList(raw string, source ProviderKind) ([]string, error) {
	var synonyms []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &synonyms); err != nil {
		return nil, NewProviderErr(ProviderErrKind_InvalidResponse, source, "synonyms are not a JSON array of strings").WithCause(err)
	}
	if len(synonyms) == 0 {
		return nil, NewProviderErr(ProviderErrKind_InvalidResponse, source, "no synonyms received")
	}
	return synonyms, nil
}

// NewDefinitionResult wraps a definition list.
func NewDefinitionResult(payload DefinitionPayload, source ProviderKind, sourceText string) (ToolResult, error) {
	defs := make([]Definition, 0, len(payload.Definitions))
	for _, d := range payload.Definitions {
		if strings.TrimSpace(d.Definition) == "" {
			continue
		}
		if strings.TrimSpace(d.PartOfSpeech) == "" {
			d.PartOfSpeech = DefaultPartOfSpeech
		}
		defs = append(defs, d)
	}
	if len(defs) == 0 {
		return ToolResult{}, NewProviderErr(ProviderErrKind_InvalidResponse, source, "no definitions received")
	}
	word := payload.Word
	if word == "" {
		word = sourceText
	}
	return ToolResult{
		kind: ResultKind_Definition,
		definition: DefinitionPayload{
			Word:        word,
			Definitions: defs,
			FromLLM:     source != ProviderKind_Dictionary,
		},
		source:     source,
		sourceText: sourceText,
	}, nil
}

// NewLLMDefinitionResult wraps a free-text model definition, tagging it with the extracted part of speech.
func NewLLMDefinitionResult(word, body string, extractor PartOfSpeechExtractor, source ProviderKind) (ToolResult, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return ToolResult{}, NewProviderErr(ProviderErrKind_InvalidResponse, source, "no definition received")
	}
	pos, cleaned := extractor.Extract(body)
	return NewDefinitionResult(DefinitionPayload{
		Word:        word,
		Definitions: []Definition{{Definition: cleaned, PartOfSpeech: pos}},
	}, source, word)
}

// NoSynonymsFound is the terminal synonym result once every provider has failed.
func NoSynonymsFound(sourceText string) ToolResult {
	return ToolResult{kind: ResultKind_NoSynonymsFound, sourceText: sourceText}
}

// NoDefinitionFound is the terminal definition result once every tier has failed.
func NoDefinitionFound(sourceText string) ToolResult {
	return ToolResult{kind: ResultKind_NoDefinitionFound, sourceText: sourceText}
}

// SentinelFor returns the terminal result of a capability with a "not found" sentinel.
func SentinelFor(capability Capability, sourceText string) (ToolResult, bool) {
	if !capability.HasSentinel() {
		return ToolResult{}, false
	}
	switch capability {
	case Capability_Define:
		return NoDefinitionFound(sourceText), true
	case Capability_Synonym:
		return NoSynonymsFound(sourceText), true
	}
	return ToolResult{}, false
}
