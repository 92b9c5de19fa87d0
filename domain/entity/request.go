package entity

import "strings"

// Kind identifies the operation a client request asks for.
type Kind string

const (
	// KindTranslate requests a translation of the selected text.
	KindTranslate Kind = "TRANSLATE_TEXT"
	// KindAnalyze requests a linguistic analysis of the selected text.
	KindAnalyze Kind = "ANALYZE_TEXT"
	// KindSynthesize requests synthesized speech for the selected text.
	KindSynthesize Kind = "GET_TTS"
)

// IsValid reports whether the kind is one of the three known operations.
func (k Kind) IsValid() bool {
	switch k {
	case KindTranslate, KindAnalyze, KindSynthesize:
		return true
	}
	return false
}

const (
	// MaxTextLength is the upper bound, in characters, on request text
	// after trimming.
	MaxTextLength = 10000
	// DefaultTarget is the target language used when the request omits one.
	DefaultTarget = "it"
)

// Request is a single client request. It is constructed per user action and
// discarded after producing a ProxyResponse.
type Request struct {
	Kind   Kind
	Text   string
	Target string // target language code, translate only
	Voice  string // voice identifier, synthesize only
}

// TrimmedText returns the request text with surrounding whitespace removed.
// Validation and fingerprinting both operate on the trimmed form.
func (r Request) TrimmedText() string {
	return strings.TrimSpace(r.Text)
}

// TargetOrDefault returns the target language, falling back to DefaultTarget.
func (r Request) TargetOrDefault() string {
	if r.Target == "" {
		return DefaultTarget
	}
	return r.Target
}
