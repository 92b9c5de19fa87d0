// Package classify decides which analysis shape an input gets. The heuristic
// is deliberately explicit and testable on its own, separate from request
// handling.
package classify

import "strings"

// Class is the analysis shape selected for an input.
type Class int

const (
	// Word means the input is analyzed as a single word.
	Word Class = iota
	// Sentence means the input is analyzed as a sentence.
	Sentence
)

// sentence-terminal punctuation; any occurrence forces the sentence shape
const terminalPunctuation = ".!?;"

// IsSingleWord reports whether the trimmed input has exactly one
// whitespace-delimited token and no sentence-terminal punctuation.
func IsSingleWord(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.ContainsAny(trimmed, terminalPunctuation) {
		return false
	}
	return len(strings.Fields(trimmed)) == 1
}

// Classify returns the analysis shape for the input.
func Classify(text string) Class {
	if IsSingleWord(text) {
		return Word
	}
	return Sentence
}
