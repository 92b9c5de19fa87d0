package service

import (
	"fmt"

	"lingua-proxy/domain/entity"
)

// PromptBuilder assembles the provider message pairs for each action. Each
// action gets its own system/user pair; the analysis prompts pin the exact
// JSON shape the output parser expects to recover.
type PromptBuilder struct{}

// NewPromptBuilder creates a prompt builder.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const translateSystem = "You are a translation engine. Translate the user's text literally into the requested language. " +
	"Output only the translated text, with no comments, quotes or explanations."

// Translation builds the message pair for a literal translation into target.
func (b *PromptBuilder) Translation(text, target string) []entity.PromptMessage {
	return []entity.PromptMessage{
		entity.NewPromptMessage("system", translateSystem),
		entity.NewPromptMessage("user", fmt.Sprintf("Translate into %q:\n\n%s", target, text)),
	}
}

const wordSystem = "You are a linguistic assistant. Analyze the given word and respond with a single JSON object, " +
	"no prose and no code fences, in exactly this shape: " +
	`{"type":"word","word":"...","definition":"...","synonyms":["..."],"antonyms":["..."],"examples":["..."]}`

// WordAnalysis builds the message pair for a single-word analysis.
func (b *PromptBuilder) WordAnalysis(word string) []entity.PromptMessage {
	return []entity.PromptMessage{
		entity.NewPromptMessage("system", wordSystem),
		entity.NewPromptMessage("user", fmt.Sprintf("Analyze the word: %s", word)),
	}
}

const sentenceSystem = "You are a linguistic assistant. Analyze the given sentence and respond with a single JSON object, " +
	"no prose and no code fences, in exactly this shape: " +
	`{"type":"sentence","sentence":"...","words":[{"word":"...","index":0,"role":"...","explanation":"..."}],` +
	`"meaning":"...","examples":["..."]}`

// SentenceAnalysis builds the message pair for a sentence analysis with a
// per-word role breakdown.
func (b *PromptBuilder) SentenceAnalysis(sentence string) []entity.PromptMessage {
	return []entity.PromptMessage{
		entity.NewPromptMessage("system", sentenceSystem),
		entity.NewPromptMessage("user", fmt.Sprintf("Analyze the sentence: %s", sentence)),
	}
}
