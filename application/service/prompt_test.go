package service

import (
	"strings"
	"testing"
)

func TestTranslationPrompt(t *testing.T) {
	b := NewPromptBuilder()

	messages := b.Translation("hello world", "it")
	if len(messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(messages))
	}
	if messages[0].Role != "system" || messages[1].Role != "user" {
		t.Errorf("roles = %s/%s", messages[0].Role, messages[1].Role)
	}
	if !strings.Contains(messages[1].Content, `"it"`) {
		t.Errorf("user message %q does not name the target language", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "hello world") {
		t.Errorf("user message %q does not carry the text", messages[1].Content)
	}
}

func TestWordAnalysisPrompt(t *testing.T) {
	b := NewPromptBuilder()

	messages := b.WordAnalysis("serendipity")
	if len(messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(messages))
	}
	system := messages[0].Content
	for _, field := range []string{`"type":"word"`, `"definition"`, `"synonyms"`, `"antonyms"`, `"examples"`} {
		if !strings.Contains(system, field) {
			t.Errorf("word system prompt missing %s", field)
		}
	}
	if !strings.Contains(messages[1].Content, "serendipity") {
		t.Errorf("user message %q does not carry the word", messages[1].Content)
	}
}

func TestSentenceAnalysisPrompt(t *testing.T) {
	b := NewPromptBuilder()

	messages := b.SentenceAnalysis("The cat sat.")
	system := messages[0].Content
	for _, field := range []string{`"type":"sentence"`, `"words"`, `"index"`, `"role"`, `"meaning"`} {
		if !strings.Contains(system, field) {
			t.Errorf("sentence system prompt missing %s", field)
		}
	}
	if !strings.Contains(messages[1].Content, "The cat sat.") {
		t.Errorf("user message %q does not carry the sentence", messages[1].Content)
	}
}
