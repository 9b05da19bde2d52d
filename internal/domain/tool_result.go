package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResultKind is the kind of a ToolResult: a capability or a "not found" sentinel.
type ResultKind string

const (
	ResultKind_Translate         ResultKind = "translate"
	ResultKind_Definition        ResultKind = "definition"
	ResultKind_Synonym           ResultKind = "synonym"
	ResultKind_Simplify          ResultKind = "simplify"
	ResultKind_Explain           ResultKind = "explain"
	ResultKind_Summarize         ResultKind = "summarize"
	ResultKind_Chat              ResultKind = "chat"
	ResultKind_NoDefinitionFound ResultKind = "noDefinitionFound"
	ResultKind_NoSynonymsFound   ResultKind = "noSynonymsFound"
)

// IsSentinel reports whether the kind is a terminal "not found" result.
func (k ResultKind) IsSentinel() bool {
	return k == ResultKind_NoDefinitionFound || k == ResultKind_NoSynonymsFound
}

// SynonymGroup holds the synonyms and antonyms for one part of speech.
type SynonymGroup struct {
	PartOfSpeech string   `json:"-"`
	Syn          []string `json:"syn,omitempty"`
	Ant          []string `json:"ant,omitempty"`
}

// SynonymPayload is the synonym result, grouped by part of speech in display order.
type SynonymPayload struct {
	Groups  []SynonymGroup
	FromLLM bool
}

// MarshalJSON renders the groups keyed by part of speech next to the fromLLM flag.
func (p SynonymPayload) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Groups)+1)
	for _, g := range p.Groups {
		out[g.PartOfSpeech] = g
	}
	if p.FromLLM {
		out["fromLLM"] = true
	}
	return json.Marshal(out)
}

// Definition is one part-of-speech tagged meaning.
type Definition struct {
	Definition   string `json:"definition"`
	PartOfSpeech string `json:"partOfSpeech"`
}

// DefinitionPayload is the definition result.
type DefinitionPayload struct {
	Word        string       `json:"word,omitempty"`
	Definitions []Definition `json:"definitions"`
	FromLLM     bool         `json:"fromLLM,omitempty"`
}

// ToolResult is the normalized, immutable outcome of one tool invocation.
type ToolResult struct {
	kind       ResultKind
	text       string
	synonyms   SynonymPayload
	definition DefinitionPayload
	source     ProviderKind
	sourceText string
}

// Kind returns the result kind.
func (r ToolResult) Kind() ResultKind { return r.kind }

// Text returns the string payload of translate, simplify, explain, summarize and chat results.
func (r ToolResult) Text() string { return r.text }

// Synonyms returns a copy of the synonym payload.
func (r ToolResult) Synonyms() SynonymPayload {
	groups := make([]SynonymGroup, len(r.synonyms.Groups))
	for i, g := range r.synonyms.Groups {
		groups[i] = SynonymGroup{
			PartOfSpeech: g.PartOfSpeech,
			Syn:          append([]string(nil), g.Syn...),
			Ant:          append([]string(nil), g.Ant...),
		}
	}
	return SynonymPayload{Groups: groups, FromLLM: r.synonyms.FromLLM}
}

// Definition returns a copy of the definition payload.
func (r ToolResult) Definition() DefinitionPayload {
	return DefinitionPayload{
		Word:        r.definition.Word,
		Definitions: append([]Definition(nil), r.definition.Definitions...),
		FromLLM:     r.definition.FromLLM,
	}
}

// SourceProvider returns the provider that produced the result. Empty for sentinels.
func (r ToolResult) SourceProvider() ProviderKind { return r.source }

// SourceText returns the selection the result was computed for.
func (r ToolResult) SourceText() string { return r.sourceText }

// AIGenerated reports whether the UI should badge the result as AI generated.
func (r ToolResult) AIGenerated() bool {
	return r.source == ProviderKind_OnDevice || r.source == ProviderKind_Remote
}

// Capability returns the capability the result answers, sentinels included.
func (r ToolResult) Capability() Capability {
	switch r.kind {
	case ResultKind_Definition, ResultKind_NoDefinitionFound:
		return Capability_Define
	case ResultKind_Synonym, ResultKind_NoSynonymsFound:
		return Capability_Synonym
	}
	return Capability(r.kind)
}

// Payload returns the provider-specific payload in its wire shape.
func (r ToolResult) Payload() any {
	switch r.kind {
	case ResultKind_Synonym:
		return r.synonyms
	case ResultKind_Definition:
		return r.definition
	case ResultKind_NoSynonymsFound:
		return map[string]any{"noSynonymsFound": true}
	case ResultKind_NoDefinitionFound:
		return map[string]any{"definitions": []Definition{}, "noDefinitionFound": true}
	}
	return r.text
}

// MarshalJSON renders the result envelope.
func (r ToolResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind           ResultKind   `json:"kind"`
		Payload        any          `json:"payload"`
		SourceProvider ProviderKind `json:"source_provider,omitempty"`
		SourceText     string       `json:"source_text"`
	}{
		Kind:           r.kind,
		Payload:        r.Payload(),
		SourceProvider: r.source,
		SourceText:     r.sourceText,
	})
}

// PlainText serializes the result for the clipboard and the sticky-note body.
func (r ToolResult) PlainText() string {
	switch r.kind {
	case ResultKind_NoSynonymsFound:
		return fmt.Sprintf("No Synonyms Found\n\nThe word \"%s\" synonyms were not found in the dictionary or AI.", r.sourceText)
	case ResultKind_NoDefinitionFound:
		return fmt.Sprintf("No Definition Found\n\nThe word \"%s\" was not found in the dictionary or AI.", r.sourceText)
	case ResultKind_Synonym:
		var b strings.Builder
		b.WriteString("Synonyms & Related Words")
		if r.synonyms.FromLLM {
			b.WriteString(" (AI Generated)")
		}
		b.WriteString("\n\n")
		for _, g := range r.synonyms.Groups {
			b.WriteString(strings.ToUpper(g.PartOfSpeech))
			b.WriteString("\n")
			if len(g.Syn) > 0 {
				fmt.Fprintf(&b, "Synonyms: %s\n", strings.Join(g.Syn, ", "))
			}
			if len(g.Ant) > 0 {
				fmt.Fprintf(&b, "Antonyms: %s\n", strings.Join(g.Ant, ", "))
			}
			b.WriteString("\n")
		}
		return b.String()
	case ResultKind_Definition:
		var b strings.Builder
		b.WriteString("Definition")
		if r.definition.FromLLM {
			b.WriteString(" (AI Generated)")
		}
		b.WriteString("\n\n")
		for _, d := range r.definition.Definitions {
			fmt.Fprintf(&b, "%s: %s\n", d.PartOfSpeech, d.Definition)
		}
		return b.String()
	}
	return r.text
}

// StickyNoteToolType is the tool tag stored with a sticky note.
type StickyNoteToolType string

const (
	StickyNoteToolType_Translation    StickyNoteToolType = "translation"
	StickyNoteToolType_Definition     StickyNoteToolType = "definition"
	StickyNoteToolType_Simplification StickyNoteToolType = "simplification"
	StickyNoteToolType_Explanation    StickyNoteToolType = "explanation"
	StickyNoteToolType_Summary        StickyNoteToolType = "summary"
	StickyNoteToolType_Synonym        StickyNoteToolType = "synonym"
	StickyNoteToolType_Chat           StickyNoteToolType = "chat"
)

// StickyNoteDraft seeds the sticky-note save form from a result.
type StickyNoteDraft struct {
	SelectedText string             `json:"selected_text"`
	ToolOutput   string             `json:"tool_output"`
	ToolType     StickyNoteToolType `json:"tool_type"`
}

// StickyNoteDraft builds the sticky-note payload for the result.
func (r ToolResult) StickyNoteDraft() StickyNoteDraft {
	toolType := StickyNoteToolType_Chat
	switch r.Capability() {
	case Capability_Translate:
		toolType = StickyNoteToolType_Translation
	case Capability_Define:
		toolType = StickyNoteToolType_Definition
	case Capability_Simplify:
		toolType = StickyNoteToolType_Simplification
	case Capability_Explain:
		toolType = StickyNoteToolType_Explanation
	case Capability_Summarize:
		toolType = StickyNoteToolType_Summary
	case Capability_Synonym:
		toolType = StickyNoteToolType_Synonym
	}
	return StickyNoteDraft{
		SelectedText: r.sourceText,
		ToolOutput:   r.PlainText(),
		ToolType:     toolType,
	}
}
