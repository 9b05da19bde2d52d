package domain

import (
	"regexp"
	"strings"
)

// PartOfSpeechExtractor tags a free-text definition with a part of speech.
type PartOfSpeechExtractor interface {
	// Extract returns the part of speech and the body with the tag removed.
	Extract(body string) (partOfSpeech, cleaned string)
}

// KeywordPartOfSpeechExtractor prefers a "(keyword)" tag and otherwise takes the first keyword
// that appears as a whole word.
type KeywordPartOfSpeechExtractor struct {
	tag      *regexp.Regexp
	word     *regexp.Regexp
	fallback string
}

// NewKeywordPartOfSpeechExtractor creates an extractor over the given keywords.
func NewKeywordPartOfSpeechExtractor(fallback string, keywords ...string) KeywordPartOfSpeechExtractor {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	alternation := strings.Join(quoted, "|")
	return KeywordPartOfSpeechExtractor{
		tag:      regexp.MustCompile(`(?i)\((` + alternation + `)\)`),
		word:     regexp.MustCompile(`(?i)\b(` + alternation + `)\b`),
		fallback: fallback,
	}
}

// DefaultPartOfSpeechExtractor matches the eight classic parts of speech and falls back to noun.
func DefaultPartOfSpeechExtractor() KeywordPartOfSpeechExtractor {
	return NewKeywordPartOfSpeechExtractor(DefaultPartOfSpeech,
		"noun", "verb", "adjective", "adverb", "pronoun", "preposition", "conjunction", "interjection",
	)
}

// Extract implements PartOfSpeechExtractor. Only the first tag is stripped; a keyword in prose is kept.
func (e KeywordPartOfSpeechExtractor) Extract(body string) (string, string) {
	body = strings.TrimSpace(body)
	if e.tag == nil {
		return e.fallback, body
	}
	if m := e.tag.FindStringSubmatchIndex(body); m != nil {
		pos := strings.ToLower(body[m[2]:m[3]])
		before, after := strings.TrimSpace(body[:m[0]]), strings.TrimSpace(body[m[1]:])
		if before == "" || after == "" {
			return pos, before + after
		}
		return pos, before + " " + after
	}
	if m := e.word.FindString(body); m != "" {
		return strings.ToLower(m), body
	}
	return e.fallback, body
}
