// Package modelout recovers structured objects from free-form model output.
// Providers are asked for JSON but do not reliably comply: they wrap output
// in prose or code fences. The recovery layers maximize successful parses
// without ever fabricating fields.
package modelout

import (
	"encoding/json"
	"strings"
)

// ParseFailure is returned when no recovery layer produced an object. It
// carries the cleaned raw text so callers can surface it for diagnostics.
type ParseFailure struct {
	Raw string
}

// Error implements the error interface.
func (e *ParseFailure) Error() string {
	return "model output is not parseable as JSON"
}

// Parse recovers a JSON object from raw model output. The layers run in
// order, stopping at the first success:
//
//  1. strip a surrounding code fence, then trim
//  2. parse the cleaned text directly
//  3. parse the first balanced-looking object substring (first '{' through
//     last '}')
//
// When all layers fail, the returned error is a *ParseFailure carrying the
// cleaned text.
func Parse(raw string) (map[string]any, error) {
	cleaned := StripFence(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj, nil
	}

	if sub, ok := extractObject(cleaned); ok {
		if err := json.Unmarshal([]byte(sub), &obj); err == nil {
			return obj, nil
		}
	}

	return nil, &ParseFailure{Raw: cleaned}
}

// StripFence removes a leading fenced code block marker (language-tagged or
// bare) and a trailing fence, then trims whitespace. Text without fences is
// only trimmed.
func StripFence(s string) string {
	trimmed := strings.TrimSpace(s)

	start := strings.Index(trimmed, "```")
	if start < 0 {
		return trimmed
	}

	rest := trimmed[start+3:]
	// drop the language tag on the fence line, if any
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if isFenceTag(firstLine) {
			rest = rest[nl+1:]
		}
	} else {
		rest = strings.TrimPrefix(rest, "json")
	}

	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// isFenceTag reports whether a fence's first line is a bare language tag
// rather than content.
func isFenceTag(line string) bool {
	if line == "" {
		return true
	}
	for _, r := range line {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// extractObject returns the substring from the first '{' through the last
// '}', when both exist in order.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(s, '}')
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// Normalize defaults missing optional array fields to empty arrays so
// downstream consumers never observe a missing value.
func Normalize(obj map[string]any, arrayFields ...string) map[string]any {
	for _, field := range arrayFields {
		if _, ok := obj[field]; !ok {
			obj[field] = []any{}
		}
	}
	return obj
}
